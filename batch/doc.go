// Package batch defines the unit of work shared by ingest, store,
// chart, and report: a named series together with the stats and
// ruleengine output computed for it.
package batch

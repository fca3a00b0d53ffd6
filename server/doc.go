// Package server exposes ingest, analysis, and reporting over HTTP,
// replacing the original's gui/main.py desktop front-end. No web
// framework is present anywhere in the retrieved corpus (see
// DESIGN.md), so routing uses the stdlib net/http.ServeMux's
// method-and-path patterns directly.
//
// ⚙️ Usage
//
//	srv := server.New(st, ruleengine.DefaultCatalog())
//	log.Fatal(http.ListenAndServe(":8080", srv))
package server

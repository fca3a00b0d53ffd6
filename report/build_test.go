package report_test

import (
	"strings"
	"testing"

	"github.com/moottier/ccrev/batch"
	"github.com/moottier/ccrev/report"
	"github.com/moottier/ccrev/ruleengine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_EmbedsChartAndNarrative(t *testing.T) {
	b := batch.Batch{
		Name:    "batch-1",
		Index:   []string{"1", "2", "3"},
		Signals: []ruleengine.Signal{{RuleId: 1, Start: 1, End: 2}},
	}

	html, err := report.Build([]report.Section{
		{Batch: b, ChartPNG: []byte{0x89, 'P', 'N', 'G'}, Narrative: report.Narrate(b)},
	})
	require.NoError(t, err)

	out := string(html)
	assert.Contains(t, out, "batch-1")
	assert.Contains(t, out, "Rule 1")
	assert.Contains(t, out, "data:image/png;base64,")
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
}

func TestBuild_NoSignalsRendersPlaceholder(t *testing.T) {
	html, err := report.Build([]report.Section{
		{Batch: batch.Batch{Name: "clean"}, ChartPNG: []byte{0x89}},
	})
	require.NoError(t, err)
	assert.Contains(t, string(html), "No signals found.")
}

func TestBuild_NoSections(t *testing.T) {
	_, err := report.Build(nil)
	assert.ErrorIs(t, err, report.ErrNoSections)
}

func TestBuild_MultipleSections(t *testing.T) {
	html, err := report.Build([]report.Section{
		{Batch: batch.Batch{Name: "a"}},
		{Batch: batch.Batch{Name: "b"}},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(html), "<section>"))
}

package report_test

import (
	"fmt"
	"strings"

	"github.com/moottier/ccrev/batch"
	"github.com/moottier/ccrev/report"
	"github.com/moottier/ccrev/ruleengine"
)

// ExampleBuild demonstrates composing a single batch's chart and
// signal narrative into an HTML report.
func ExampleBuild() {
	b := batch.Batch{
		Name:    "widget-run-14",
		Index:   []string{"1", "2", "3", "4", "5"},
		Signals: []ruleengine.Signal{{RuleId: 1, Start: 1, End: 3}},
	}

	html, err := report.Build([]report.Section{
		{Batch: b, ChartPNG: []byte{0x89, 'P', 'N', 'G'}, Narrative: report.Narrate(b)},
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Println(strings.Contains(string(html), "widget-run-14"))
	fmt.Println(strings.Contains(string(html), "Rule 1: 2 - 3"))
	// Output:
	// true
	// true
}

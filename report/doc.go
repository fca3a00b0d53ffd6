// Package report composes one or more analyzed batches into a single
// HTML document: a chart image, and a run-length narrative of each
// rule's hits, one section per batch. Grounded on ccrev/reporting.py's
// Report, which accumulated Paragraph/Image/PageBreak flowables into a
// reportlab SimpleDocTemplate PDF. No PDF library exists anywhere in
// the retrieved corpus (see DESIGN.md), so this package renders HTML
// via the stdlib html/template instead, embedding each chart's PNG as
// a data URI so the report is a single self-contained file.
//
// ⚙️ Usage
//
//	html, err := report.Build([]report.Section{{Batch: b, ChartPNG: png}})
//	if err != nil {
//		log.Fatal(err)
//	}
//	os.WriteFile("report.html", html, 0o644)
package report

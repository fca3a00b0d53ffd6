package report

import (
	"bytes"
	"encoding/base64"
	"html/template"
)

const documentTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Control chart report</title>
<style>
  body { font-family: sans-serif; margin: 2em; }
  section { page-break-after: always; margin-bottom: 3em; }
  h2 { margin-bottom: 0.2em; }
  img { max-width: 100%; }
  .rule { margin: 0.2em 0; }
  .none { color: #666; font-style: italic; }
</style>
</head>
<body>
{{range .}}
<section>
  <h2>{{.Batch.Name}}</h2>
  <img src="data:image/png;base64,{{.PNGBase64}}" alt="{{.Batch.Name}} control chart">
  {{if .Narrative}}
    {{range .Narrative}}
    <p class="rule">Rule {{.RuleID}}: {{join .Ranges}}</p>
    {{end}}
  {{else}}
    <p class="none">No signals found.</p>
  {{end}}
</section>
{{end}}
</body>
</html>
`

type renderedSection struct {
	Section
	PNGBase64 string
}

var tmpl = template.Must(template.New("report").Funcs(template.FuncMap{
	"join": joinRanges,
}).Parse(documentTemplate))

// Build renders sections into a single self-contained HTML document, one
// section per batch, each embedding its chart as a base64 data URI.
func Build(sections []Section) ([]byte, error) {
	if len(sections) == 0 {
		return nil, ErrNoSections
	}

	rendered := make([]renderedSection, len(sections))
	for i, s := range sections {
		rendered[i] = renderedSection{
			Section:   s,
			PNGBase64: base64.StdEncoding.EncodeToString(s.ChartPNG),
		}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, rendered); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func joinRanges(ranges []string) string {
	var buf bytes.Buffer
	for i, r := range ranges {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(r)
	}

	return buf.String()
}

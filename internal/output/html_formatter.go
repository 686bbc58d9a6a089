package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/shopspring/decimal"
)

// HTMLFormatter produces a standalone HTML page with one table per entry.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string      { return "html" }
func (h HTMLFormatter) Extension() string { return "html" }

//go:embed templates/breakdown.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("breakdown").Funcs(template.FuncMap{
	"curr": FormatCurrency,
	"fixed": func(d decimal.Decimal) string {
		return d.StringFixed(2)
	},
	"label": func(e Entry, i int) string { return e.label(i) },
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(report *Report) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		*Report
		Invalid int
	}{report, report.InvalidCount()}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

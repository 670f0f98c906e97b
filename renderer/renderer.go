// Package renderer renders tracker reports as markdown.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/tracker"
)

//go:embed *.md
var templates embed.FS

var funcs = template.FuncMap{"cell": cell}

// cell formats v for a markdown table cell: pipes are escaped and line breaks
// collapsed.
func cell(v any) string {
	s := strings.Join(strings.Fields(fmt.Sprint(v)), " ")
	return strings.ReplaceAll(s, "|", `\|`)
}

// PortfolioView is the data rendered by RenderPortfolio.
type PortfolioView struct {
	Name     string
	Currency string
	Rows     []tracker.AssetRow
	Summary  tracker.Summary
}

// NewPortfolioView captures the current state of p.
func NewPortfolioView(p *tracker.Portfolio) *PortfolioView {
	return &PortfolioView{
		Name:     p.Name(),
		Currency: p.Currency(),
		Rows:     p.Rows(),
		Summary:  p.Summary(),
	}
}

// RenderPortfolio renders the asset table followed by the portfolio summary.
func RenderPortfolio(v *PortfolioView) string {
	partials := map[string]string{
		"portfolio_assets":  "portfolio_assets.md",
		"portfolio_summary": "portfolio_summary.md",
	}
	return renderTemplate("portfolio", "portfolio.md", partials, v)
}

// RenderSummary renders only the portfolio totals.
func RenderSummary(v *PortfolioView) string {
	return renderTemplate("portfolio_summary", "portfolio_summary.md", nil, v)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}

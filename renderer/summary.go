package renderer

import "github.com/etavares/estoque"

// summaryView bundles the aggregate figures with the low-stock alerts, so one
// report answers both "how much do I have" and "what needs attention".
type summaryView struct {
	Summary estoque.Summary
	Low     []string
}

// Summary renders the dashboard summary to markdown.
func Summary(sum estoque.Summary, low []string) string {
	partials := map[string]string{
		"low_stock": "low_stock.md",
	}
	return renderTemplate("summary", "summary.md", partials, summaryView{Summary: sum, Low: low})
}

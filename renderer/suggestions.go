package renderer

import "github.com/etavares/estoque"

// Suggestions renders the purchase-suggestion report to markdown.
func Suggestions(r estoque.Restock) string {
	return renderTemplate("suggestions", "suggestions.md", nil, r)
}

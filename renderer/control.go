package renderer

import "github.com/etavares/estoque"

// Control renders the stock-control report to markdown.
func Control(c estoque.Control) string {
	return renderTemplate("control", "control.md", nil, c)
}

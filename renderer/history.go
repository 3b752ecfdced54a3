package renderer

import (
	"slices"

	"github.com/etavares/estoque"
)

type inboundHistoryView struct {
	Name    string
	Entries []estoque.Inbound
}

type outboundHistoryView struct {
	Name    string
	Entries []estoque.Outbound
}

// InboundHistory renders a product's inbound movements, in insertion order.
func InboundHistory(name string, p *estoque.Product) string {
	v := inboundHistoryView{Name: name, Entries: slices.Collect(p.Inbounds())}
	return renderTemplate("inboundHistory", "history_in.md", nil, v)
}

// OutboundHistory renders a product's outbound movements, in insertion order.
func OutboundHistory(name string, p *estoque.Product) string {
	v := outboundHistoryView{Name: name, Entries: slices.Collect(p.Outbounds())}
	return renderTemplate("outboundHistory", "history_out.md", nil, v)
}

package renderer

import (
	"strings"
	"testing"

	"github.com/etavares/estoque"
)

func TestControl(t *testing.T) {
	s := estoque.SeedStock("BRL")
	got := Control(s.Control())

	for _, want := range []string{
		"# Controle de Estoque",
		"| Xícara Grande | 15 | 15 | 15 | 22.5 | 0 | ⚠️ ALERTA | R$14,50 | R$38,00 |",
		"| Xícara Mágica | 50 | 0 | 50 | 75 | 50 | ✅ OK | R$16,49 | R$45,00 |",
		"| **Total** | 135 | 30 | 265 | 397.5 | 105 |",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
}

func TestSummary(t *testing.T) {
	s := estoque.SeedStock("BRL")
	got := Summary(s.Summarize(), s.LowStock())

	for _, want := range []string{
		"# Resumo do Estoque",
		"Total de Produtos: **6**",
		"Valor em Estoque (preço de venda): **R$4.175,00**",
		"Total de Unidades: **105**",
		"Custo Total Investido: **R$1.975,10**",
		"Nível Desejável Atingido: **26.42%**",
		"## ⚠️ Produtos com Baixo Estoque",
		"- 🔴 Xícara Grande",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
}

func TestSummaryNoAlerts(t *testing.T) {
	s := estoque.NewStock()
	s.Register("Caneca Teste", estoque.Q(0), estoque.Q(0), estoque.M(5, "BRL"), estoque.M(12, "BRL"))

	got := Summary(s.Summarize(), s.LowStock())
	if !strings.Contains(got, "✅ Todos os produtos estão acima do nível mínimo.") {
		t.Errorf("missing the all-clear line in:\n%s", got)
	}
	if strings.Contains(got, "🔴") {
		t.Errorf("unexpected alert line in:\n%s", got)
	}
}

func TestSuggestions(t *testing.T) {
	s := estoque.SeedStock("BRL")
	got := Suggestions(s.Suggestions())

	for _, want := range []string{
		"# Sugestões de Compras",
		"| Xícara Grande | 0 | 22.5 | 22.5 | R$14,50 | R$326,25 |",
		"Total de Unidades Faltando: **292.5**",
		"Investimento Necessário: **R$4.004,35**",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
}

func TestSuggestionsAllStocked(t *testing.T) {
	s := estoque.NewStock()
	s.Register("Caneca Teste", estoque.Q(0), estoque.Q(0), estoque.M(5, "BRL"), estoque.M(12, "BRL"))

	got := Suggestions(s.Suggestions())
	if !strings.Contains(got, "✅ Todos os produtos estão no nível desejável.") {
		t.Errorf("missing the all-clear line in:\n%s", got)
	}
}

func TestHistories(t *testing.T) {
	s := estoque.SeedStock("BRL")
	p := s.Product("Xícara Grande")

	in := InboundHistory("Xícara Grande", p)
	for _, want := range []string{
		"Histórico de Entradas",
		"Xícara Grande",
		"| 17/01/2026 | Inventário | 15 | R$14,50 | R$217,50 |",
	} {
		if !strings.Contains(in, want) {
			t.Errorf("missing %q in:\n%s", want, in)
		}
	}

	out := OutboundHistory("Xícara Grande", p)
	if !strings.Contains(out, "| 05/01/2026 | 15 | R$38,00 | R$570,00 |") {
		t.Errorf("missing outbound row in:\n%s", out)
	}
}

func TestHistoryEmpty(t *testing.T) {
	s := estoque.NewStock()
	name := s.Register("Caneca Teste", estoque.Q(0), estoque.Q(0), estoque.M(5, "BRL"), estoque.M(12, "BRL"))
	p := s.Product(name)

	if got := InboundHistory(name, p); !strings.Contains(got, "Sem entradas registradas.") {
		t.Errorf("missing empty-history line in:\n%s", got)
	}
	if got := OutboundHistory(name, p); !strings.Contains(got, "Sem saídas registradas.") {
		t.Errorf("missing empty-history line in:\n%s", got)
	}
}

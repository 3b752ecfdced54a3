package cmd

import (
	"bufio"
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etavares/estoque"
)

// newTestMenu builds a menu over a scripted stdin and a buffer, on a fresh
// stock file seeded with the default dataset.
func newTestMenu(t *testing.T, script string) (*menu, *bytes.Buffer, string) {
	t.Helper()
	*currency = "BRL" // parse helpers read the global flag
	path := filepath.Join(t.TempDir(), "estoque.json")
	sess, err := estoque.Open(path, "BRL")
	if err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	m := &menu{
		in:      bufio.NewScanner(strings.NewReader(script)),
		out:     &out,
		session: sess,
		style:   func(md string) string { return md },
	}
	return m, &out, path
}

func TestMenuFullSession(t *testing.T) {
	// Register a product, stock it, sell part of it, print the control
	// report, quit. Empty answers take the offered defaults.
	script := strings.Join([]string{
		"1",
		"caneca teste", "10", "20", "5,00", "12",
		"2",
		"Caneca Teste", "", "30", "", "",
		"3",
		"Caneca Teste", "10", "", "",
		"6",
		"9",
	}, "\n")

	m, out, path := newTestMenu(t, script)
	m.run()

	got := out.String()
	for _, want := range []string{
		`Produto "Caneca Teste" cadastrado com sucesso!`,
		"Entrada registrada: 30 × R$5,00",
		"Saída registrada: 10 × R$12,00",
		"# Controle de Estoque",
		"Caneca Teste",
		"Até logo!",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in session output:\n%s", want, got)
		}
	}

	// Every mutation was persisted as it happened.
	back, err := estoque.Open(path, "BRL")
	if err != nil {
		t.Fatal(err)
	}
	p := back.Stock().Product("Caneca Teste")
	if p == nil {
		t.Fatal("registered product not persisted")
	}
	if onHand, want := p.OnHand(), estoque.Q(20); !onHand.Equal(want) {
		t.Errorf("OnHand = %s, want %s", onHand, want)
	}
}

func TestMenuDashboardAndSuggestions(t *testing.T) {
	m, out, _ := newTestMenu(t, "7\n8\n9\n")
	m.run()

	got := out.String()
	for _, want := range []string{
		"# Resumo do Estoque",
		"# Sugestões de Compras",
		"Até logo!",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in session output:\n%s", want, got)
		}
	}
}

func TestMenuErrors(t *testing.T) {
	tests := []struct {
		name     string
		script   []string
		expected string
	}{
		{"unknown product", []string{"2", "Nunca Cadastrado"}, "Produto não encontrado!"},
		{"overdraw", []string{"3", "Xícara Grande", "999", "", ""}, "Quantidade inválida ou insuficiente!"},
		{"bad number", []string{"1", "Caneca Teste", "dez"}, "Valor inválido!"},
		{"bad option", []string{"0"}, "Opção inválida!"},
		{"bad date", []string{"2", "Xícara Grande", "", "5", "", "31-01-2026"}, "Valor inválido!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			script := strings.Join(append(tt.script, "9"), "\n")
			m, out, _ := newTestMenu(t, script)
			m.run()
			if got := out.String(); !strings.Contains(got, tt.expected) {
				t.Errorf("missing %q in session output:\n%s", tt.expected, got)
			}
		})
	}
}

// TestMenuEndOfInput checks the loop terminates cleanly when stdin closes
// without an explicit quit.
func TestMenuEndOfInput(t *testing.T) {
	m, _, _ := newTestMenu(t, "7\n")
	m.run() // must return, not loop forever
}

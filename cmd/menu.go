package cmd

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/etavares/estoque"
	"github.com/etavares/estoque/renderer"
	"github.com/google/subcommands"
)

type menuCmd struct{}

func (*menuCmd) Name() string     { return "menu" }
func (*menuCmd) Synopsis() string { return "start the interactive text menu" }
func (*menuCmd) Usage() string {
	return `estoque menu

  Starts the interactive menu, the legacy way of working the ledger: numbered
  options for registering products, recording movements and printing reports.
  Prompts and reports are in Portuguese.
`
}

func (*menuCmd) SetFlags(f *flag.FlagSet) {}

func (c *menuCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	sess, err := openSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening stock file %q: %v\n", *stockFile, err)
		return subcommands.ExitFailure
	}

	m := &menu{
		in:      bufio.NewScanner(os.Stdin),
		out:     os.Stdout,
		session: sess,
		style:   renderMarkdown,
	}
	m.run()
	return subcommands.ExitSuccess
}

// menu drives the interactive surface. It reads from in and writes to out so
// a whole session can be scripted in tests; style turns report markdown into
// terminal output.
type menu struct {
	in      *bufio.Scanner
	out     io.Writer
	session *estoque.Session
	style   func(string) string
}

const menuScreen = `
========== CONTROLE DE ESTOQUE ==========
1 - Cadastro de Produtos
2 - Entrada de Produtos
3 - Saída de Produtos
4 - Histórico de Entradas
5 - Histórico de Saídas
6 - Controle de Estoque
7 - Dashboard
8 - Sugestões de Compras
9 - Sair
`

// run loops over the menu until option 9 or end of input.
func (m *menu) run() {
	for {
		fmt.Fprint(m.out, menuScreen)
		choice, ok := m.prompt("Escolha uma opção")
		if !ok {
			return
		}
		switch strings.TrimSpace(choice) {
		case "1":
			m.register()
		case "2":
			m.inbound()
		case "3":
			m.outbound()
		case "4":
			m.inboundHistory()
		case "5":
			m.outboundHistory()
		case "6":
			m.report(renderer.Control(m.session.Stock().Control()))
		case "7":
			stock := m.session.Stock()
			m.report(renderer.Summary(stock.Summarize(), stock.LowStock()))
		case "8":
			m.report(renderer.Suggestions(m.session.Stock().Suggestions()))
		case "9":
			fmt.Fprintln(m.out, "Até logo!")
			return
		default:
			fmt.Fprintln(m.out, "Opção inválida!")
		}
	}
}

// prompt prints a label and reads one line; ok is false at end of input.
func (m *menu) prompt(label string) (answer string, ok bool) {
	fmt.Fprintf(m.out, "%s: ", label)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

func (m *menu) report(md string) {
	fmt.Fprint(m.out, m.style(md))
}

// fail prints the legacy error message for a ledger error.
func (m *menu) fail(err error) {
	switch {
	case errors.Is(err, estoque.ErrUnknownProduct):
		fmt.Fprintln(m.out, "Produto não encontrado!")
	case errors.Is(err, estoque.ErrInvalidQuantity):
		fmt.Fprintln(m.out, "Quantidade inválida ou insuficiente!")
	case errors.Is(err, estoque.ErrInvalidInput):
		fmt.Fprintln(m.out, "Valor inválido!")
	default:
		fmt.Fprintln(m.out, "Erro:", err)
	}
}

func (m *menu) register() {
	name, ok := m.prompt("Nome do produto")
	if !ok || name == "" {
		return
	}
	min, ok := m.promptQuantity("Estoque mínimo")
	if !ok {
		return
	}
	desired, ok := m.promptQuantity("Estoque desejável")
	if !ok {
		return
	}
	cost, ok := m.promptMoney("Custo unitário")
	if !ok {
		return
	}
	price, ok := m.promptMoney("Preço de venda")
	if !ok {
		return
	}
	normalized, err := m.session.Register(name, min, desired, cost, price)
	if err != nil {
		m.fail(err)
		return
	}
	fmt.Fprintf(m.out, "Produto %q cadastrado com sucesso!\n", normalized)
}

func (m *menu) inbound() {
	name, p, ok := m.promptProduct()
	if !ok {
		return
	}
	raw, ok := m.prompt("Tipo (Compra/Inventário/Devolução) [Compra]")
	if !ok {
		return
	}
	typ, err := estoque.ParseMovementType(raw)
	if err != nil {
		m.fail(fmt.Errorf("%w: %v", estoque.ErrInvalidInput, err))
		return
	}
	qty, ok := m.promptQuantity("Quantidade")
	if !ok {
		return
	}
	cost, ok := m.promptMoneyDefault("Custo unitário", p.Cost)
	if !ok {
		return
	}
	on, ok := m.promptDate()
	if !ok {
		return
	}
	e, err := m.session.RecordInbound(name, typ, qty, cost, on)
	if err != nil {
		m.fail(err)
		return
	}
	fmt.Fprintf(m.out, "Entrada registrada: %s × %s em %s (total %s)\n", e.Quantity, e.UnitCost, e.Date, e.Total)
}

func (m *menu) outbound() {
	name, p, ok := m.promptProduct()
	if !ok {
		return
	}
	qty, ok := m.promptQuantity("Quantidade")
	if !ok {
		return
	}
	price, ok := m.promptMoneyDefault("Preço unitário", p.Price)
	if !ok {
		return
	}
	on, ok := m.promptDate()
	if !ok {
		return
	}
	e, err := m.session.RecordOutbound(name, qty, price, on)
	if err != nil {
		m.fail(err)
		return
	}
	fmt.Fprintf(m.out, "Saída registrada: %s × %s em %s (total %s)\n", e.Quantity, e.UnitPrice, e.Date, e.Total)
}

func (m *menu) inboundHistory() {
	name, p, ok := m.promptProduct()
	if !ok {
		return
	}
	m.report(renderer.InboundHistory(name, p))
}

func (m *menu) outboundHistory() {
	name, p, ok := m.promptProduct()
	if !ok {
		return
	}
	m.report(renderer.OutboundHistory(name, p))
}

// promptProduct asks for a product name and resolves it in the ledger. The
// normalized name is returned so reports carry the canonical spelling.
func (m *menu) promptProduct() (string, *estoque.Product, bool) {
	name, ok := m.prompt("Nome do produto")
	if !ok {
		return "", nil, false
	}
	name = estoque.Normalize(name)
	p := m.session.Stock().Product(name)
	if p == nil {
		fmt.Fprintln(m.out, "Produto não encontrado!")
		return "", nil, false
	}
	return name, p, true
}

func (m *menu) promptQuantity(label string) (estoque.Quantity, bool) {
	raw, ok := m.prompt(label)
	if !ok {
		return estoque.Quantity{}, false
	}
	q, err := parseQuantity(raw)
	if err != nil {
		m.fail(err)
		return estoque.Quantity{}, false
	}
	return q, true
}

func (m *menu) promptMoney(label string) (estoque.Money, bool) {
	raw, ok := m.prompt(label)
	if !ok {
		return estoque.Money{}, false
	}
	v, err := parseMoney(raw)
	if err != nil {
		m.fail(err)
		return estoque.Money{}, false
	}
	return v, true
}

// promptMoneyDefault is like promptMoney but an empty answer picks the
// product's registered value.
func (m *menu) promptMoneyDefault(label string, def estoque.Money) (estoque.Money, bool) {
	raw, ok := m.prompt(label + " [" + def.String() + "]")
	if !ok {
		return estoque.Money{}, false
	}
	if raw == "" {
		return def, true
	}
	v, err := parseMoney(raw)
	if err != nil {
		m.fail(err)
		return estoque.Money{}, false
	}
	return v, true
}

// promptDate asks for an optional dd/mm/yyyy date, empty meaning today.
func (m *menu) promptDate() (estoque.Date, bool) {
	raw, ok := m.prompt("Data (dd/mm/aaaa) [hoje]")
	if !ok {
		return estoque.Date{}, false
	}
	if raw == "" {
		return estoque.Date{}, true
	}
	on, err := estoque.ParseDate(raw)
	if err != nil {
		m.fail(fmt.Errorf("%w: %v", estoque.ErrInvalidInput, err))
		return estoque.Date{}, false
	}
	return on, true
}

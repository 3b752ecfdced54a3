// Package advisor implements the optional AI restocking advisor. It sends
// the current stock reports to Gemini and returns free-form advice; it never
// mutates the ledger.
package advisor

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const defaultModel = "gemini-2.5-flash"

const systemPrompt = `Você é um consultor de estoque de uma pequena loja de
canecas personalizadas. A seguir estão os relatórios atuais de controle de
estoque e sugestões de compras, em markdown. Analise-os e responda, em
português e em markdown curto: quais produtos repor primeiro, em que
quantidade, e qualquer risco que os números indiquem (ruptura de estoque,
capital parado). Baseie-se somente nos números apresentados.`

// Advisor wraps a Gemini client with the stock-advice prompt.
type Advisor struct {
	client *genai.Client
	model  string
}

// New returns an advisor on the default model.
func New(client *genai.Client) *Advisor {
	return &Advisor{client: client, model: defaultModel}
}

// Advise sends the given markdown reports to the model and returns its
// restocking advice as markdown.
func (a *Advisor) Advise(ctx context.Context, reports ...string) (string, error) {
	var b strings.Builder
	b.WriteString(systemPrompt)
	for _, r := range reports {
		b.WriteString("\n\n---\n\n")
		b.WriteString(r)
	}

	resp, err := a.client.Models.GenerateContent(ctx, a.model, genai.Text(b.String()), nil)
	if err != nil {
		return "", fmt.Errorf("could not generate restocking advice: %w", err)
	}
	return resp.Text(), nil
}

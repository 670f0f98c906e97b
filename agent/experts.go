package agent

import (
	"google.golang.org/genai"

	"github.com/etnz/tracker"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

func instruction(text string) *genai.Content {
	return &genai.Content{Parts: []*genai.Part{{Text: text}}}
}

// NewAnalyst creates the expert talking to the user. It reads the portfolio
// through tools and delegates market questions to the other experts.
func NewAnalyst(model string, p *tracker.Portfolio, experts ...*Expert) *Expert {
	functions := append(Tools(p), asFunctions(experts)...)
	return &Expert{
		Name:      "Analyst",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(functions)},
			},
			SystemInstruction: instruction(`
			You are a portfolio analyst helping the user understand their investments.

			Use the tools to read the portfolio: its assets, their value, profit and loss,
			weights and allocations by sector or asset class. Never guess figures you can read.
			All amounts are in the portfolio currency.

			Ask the other experts for news or market information about the assets.
			Answer in concise markdown.
			`),
		},
		Library: NewLibrary(functions),
	}
}

// NewTrader creates an expert grounded on Google Search.
func NewTrader(model string) *Expert {
	return &Expert{
		Name: "Trader",
		Description: `An expert trader, aware of financial products, companies and markets,
		and of the latest news about them. Ask the Trader for recent or grounded information about a ticker.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: instruction(`
			You are an expert in trading. Use Google Search to ground your assertions and to find
			the latest news about companies, funds and markets. Relate them to the question asked.
			`),
		},
	}
}

func asFunctions(experts []*Expert) []Function {
	functions := make([]Function, 0, len(experts))
	for _, e := range experts {
		functions = append(functions, e)
	}
	return functions
}

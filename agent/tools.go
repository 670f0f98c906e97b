package agent

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/etnz/tracker"
	"github.com/etnz/tracker/renderer"
)

// Tools returns the functions reading p.
func Tools(p *tracker.Portfolio) []Function {
	markdown := &genai.Schema{
		Type:        genai.TypeString,
		Description: "A markdown document.",
	}
	return []Function{
		&Func{
			Decl: &genai.FunctionDeclaration{
				Name:        "Portfolio",
				Description: "Portfolio lists every asset with its quantity, prices, value and profit/loss, followed by the portfolio totals.",
				Response:    markdown,
			},
			Func: func(context.Context, map[string]any) (string, error) {
				return renderer.RenderPortfolio(renderer.NewPortfolioView(p)), nil
			},
		},
		&Func{
			Decl: &genai.FunctionDeclaration{
				Name:        "Weights",
				Description: "Weights gives each asset share of the portfolio current value.",
				Response:    markdown,
			},
			Func: func(context.Context, map[string]any) (string, error) {
				return renderer.RenderWeights(renderer.NewWeightsView(p)), nil
			},
		},
		&Func{
			Decl: &genai.FunctionDeclaration{
				Name:        "Allocation",
				Description: "Allocation breaks the portfolio current value down by sector or by asset class.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"by": {
							Type:        genai.TypeString,
							Description: "The grouping category.",
							Enum:        []string{"sector", "asset_class"},
						},
					},
					Required: []string{"by"},
				},
				Response: markdown,
			},
			Func: func(_ context.Context, args map[string]any) (string, error) {
				switch by, _ := args["by"].(string); by {
				case "sector":
					return renderer.RenderAllocation(&renderer.AllocationView{Title: "Sector Allocation", Category: "Sector", Allocation: p.SectorAllocation()}), nil
				case "asset_class":
					return renderer.RenderAllocation(&renderer.AllocationView{Title: "Asset Class Allocation", Category: "Asset Class", Allocation: p.AssetClassAllocation()}), nil
				default:
					return "", fmt.Errorf("invalid 'by' argument %q, want sector or asset_class", by)
				}
			},
		},
	}
}

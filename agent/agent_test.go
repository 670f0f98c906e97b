package agent

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/etnz/tracker"
)

func testPortfolio(t *testing.T) *tracker.Portfolio {
	t.Helper()
	p := tracker.NewPortfolio("test", "USD")
	a, err := tracker.NewAsset("AAPL", "Technology", "Stocks", tracker.Q(10), tracker.M(150, "USD"), tracker.M(172.5, "USD"))
	require.NoError(t, err)
	require.NoError(t, p.Add(a))
	return p
}

func TestLibrary(t *testing.T) {
	lib := NewLibrary(Tools(testPortfolio(t)))
	ctx := context.Background()

	resp := lib(ctx, &genai.FunctionCall{ID: "1", Name: "Portfolio"})
	assert.Equal(t, "1", resp.ID)
	out, ok := resp.Response["output"].(string)
	require.True(t, ok, "response: %v", resp.Response)
	assert.Contains(t, out, "AAPL")
	assert.Contains(t, out, "$1,725.00")

	resp = lib(ctx, &genai.FunctionCall{ID: "2", Name: "Allocation", Args: map[string]any{"by": "sector"}})
	out, _ = resp.Response["output"].(string)
	assert.Contains(t, out, "Technology")

	resp = lib(ctx, &genai.FunctionCall{ID: "3", Name: "Allocation", Args: map[string]any{"by": "country"}})
	assert.Contains(t, resp.Response["error"], "country")

	resp = lib(ctx, &genai.FunctionCall{ID: "4", Name: "Transfer"})
	assert.Equal(t, "Transfer", resp.Name)
	assert.Equal(t, "unknown function Transfer", resp.Response["error"])
}

func TestAnalystDeclarations(t *testing.T) {
	analyst := NewAnalyst(DefaultModel, testPortfolio(t), NewTrader(DefaultModel))

	var names []string
	for _, d := range analyst.Config.Tools[0].FunctionDeclarations {
		names = append(names, d.Name)
	}
	assert.Equal(t, []string{"Portfolio", "Weights", "Allocation", "Trader"}, names)
	assert.False(t, analyst.Started())
}

func TestExpertCall_NotStarted(t *testing.T) {
	trader := NewTrader(DefaultModel)
	resp := trader.Call(context.Background(), "1", map[string]any{"question": "news about AAPL?"})
	assert.Contains(t, resp.Response["error"], "not started")

	resp = trader.Call(context.Background(), "2", map[string]any{"question": 42})
	assert.Contains(t, resp.Response["error"], "invalid question type int")
}

func TestText(t *testing.T) {
	assert.Empty(t, Text(nil))
	c := &genai.Content{Parts: []*genai.Part{{Text: "AAPL is "}, {Text: "up."}}}
	assert.Equal(t, "AAPL is up.", Text(c))
}

func TestRun_Bye(t *testing.T) {
	var out strings.Builder
	a := New(&out, nil, "", testPortfolio(t))
	assert.Equal(t, DefaultModel, a.Analyst.ModelName)
	// Start is skipped once the analyst chat exists, so Run can be tested offline.
	a.Analyst.chat = &genai.Chat{}
	for _, e := range a.Experts {
		e.chat = &genai.Chat{}
	}
	a.r = bufio.NewReader(strings.NewReader("\nbye\n"))
	require.NoError(t, a.Run(context.Background(), nil))
	assert.Contains(t, out.String(), prompt)
}

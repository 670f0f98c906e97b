package plot

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/etnz/tracker"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func history(start time.Time, prices ...float64) tracker.History {
	var h tracker.History
	for i, p := range prices {
		h.Append(start.AddDate(0, 0, i), p)
	}
	return h
}

func testPortfolio(t *testing.T) *tracker.Portfolio {
	t.Helper()
	p := tracker.NewPortfolio("test", "USD")
	a, err := tracker.NewAsset("AAPL", "Technology", "Stocks", tracker.Q(10), tracker.M(150, "USD"), tracker.M(172.5, "USD"))
	require.NoError(t, err)
	b, err := tracker.NewAsset("JNJ", "Healthcare", "Stocks", tracker.Q(5), tracker.M(400, "USD"), tracker.M(415.25, "USD"))
	require.NoError(t, err)
	require.NoError(t, p.Add(a))
	require.NoError(t, p.Add(b))
	return p
}

func TestRenderHistory(t *testing.T) {
	start := time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC)
	series := []Series{
		{Name: "AAPL", History: history(start, 170, 172, 171, 175)},
		{Name: "JNJ", History: history(start, 410, 412, 415, 415.25)},
	}

	var buf bytes.Buffer
	require.NoError(t, RenderHistory(&buf, series, Size{}))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic))

	buf.Reset()
	require.NoError(t, RenderNormalized(&buf, series, Size{Width: 600, Height: 300}))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic))
}

func TestRenderHistory_NotEnoughData(t *testing.T) {
	start := time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC)
	var buf bytes.Buffer

	assert.ErrorIs(t, RenderHistory(&buf, nil, Size{}), ErrNoData)
	err := RenderHistory(&buf, []Series{{Name: "AAPL", History: history(start, 170)}}, Size{})
	assert.ErrorIs(t, err, ErrNoData)
	assert.ErrorContains(t, err, "AAPL")
	assert.Zero(t, buf.Len())
}

func TestRenderHistory_FlatLine(t *testing.T) {
	start := time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC)
	var buf bytes.Buffer
	require.NoError(t, RenderHistory(&buf, []Series{{Name: "CASH", History: history(start, 1, 1, 1)}}, Size{}))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic))
}

func TestRenderWeights(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderWeights(&buf, testPortfolio(t), Size{}))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic))

	buf.Reset()
	assert.ErrorIs(t, RenderWeights(&buf, tracker.NewPortfolio("empty", "USD"), Size{}), ErrNoData)
}

func TestRenderAllocation(t *testing.T) {
	p := testPortfolio(t)
	var buf bytes.Buffer
	require.NoError(t, RenderAllocation(&buf, "Sectors", p.SectorAllocation(), Size{}))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic))

	buf.Reset()
	assert.ErrorIs(t, RenderAllocation(&buf, "Sectors", tracker.NewPortfolio("empty", "USD").SectorAllocation(), Size{}), ErrNoData)
}

func TestDateLayout(t *testing.T) {
	start := time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Jan 02", dateLayout([]Series{{History: history(start, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10)}}))
	var long tracker.History
	long.Append(start, 1).Append(start.AddDate(3, 0, 0), 2)
	assert.Equal(t, "Jan 06", dateLayout([]Series{{History: long}}))
}

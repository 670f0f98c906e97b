package docs

import (
	"os"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// listedTopics returns the topics listed in the readme, as "* name: description" items.
func listedTopics(t *testing.T) []string {
	t.Helper()
	content, err := os.ReadFile("readme.md")
	require.NoError(t, err)
	re := regexp.MustCompile(`(?m)^\*\s+([^:]+):`)
	var topics []string
	for _, m := range re.FindAllStringSubmatch(string(content), -1) {
		topics = append(topics, m[1])
	}
	return topics
}

func TestReadmeListsAllTopics(t *testing.T) {
	all, err := All()
	require.NoError(t, err)
	assert.ElementsMatch(t, all, listedTopics(t))
	assert.NotContains(t, all, Index)
}

func TestTopicsHaveATitle(t *testing.T) {
	all, err := All()
	require.NoError(t, err)
	for _, topic := range append(all, Index) {
		t.Run(topic, func(t *testing.T) {
			content, err := Topic(topic)
			require.NoError(t, err)
			source := []byte(content)
			doc := goldmark.DefaultParser().Parse(text.NewReader(source))
			h, ok := doc.FirstChild().(*ast.Heading)
			require.True(t, ok, "topic must start with a heading")
			assert.Equal(t, 1, h.Level)
		})
	}
}

func TestTopic(t *testing.T) {
	_, err := Topic("nope")
	assert.ErrorIs(t, err, os.ErrNotExist)

	a, err := Topic(" Metrics.md ")
	require.NoError(t, err)
	b, err := Topic("metrics")
	require.NoError(t, err)
	assert.Equal(t, a, b)

	all, err := Topics("*")
	require.NoError(t, err)
	assert.Contains(t, all, "# trk")
	assert.Contains(t, all, "# Commands")
	assert.Contains(t, all, "# Metrics")
}

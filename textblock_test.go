package boilerpy

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTextBlock_MergeNext(t *testing.T) {
	block1 := NewTextBlock("AA BB CC ", map[int]struct{}{0: {}}, 3, 3, 3, 1, 0)
	block2 := NewTextBlock("DD EE FF GG HH II JJ .", map[int]struct{}{1: {}}, 6, 0, 6, 2, 1)
	block1.AddLabels(LabelMightBeContent)
	block2.AddLabels(LabelArticleMetadata)

	block1.MergeNext(block2)

	require.Equal(t, "AA BB CC \nDD EE FF GG HH II JJ .", block1.Text)
	require.Equal(t, 9, block1.NumWords)
	require.Equal(t, 3, block1.NumWordsInAnchorText)
	require.InDelta(t, 1.0/3.0, block1.LinkDensity(), 1e-9)
	require.Equal(t, float64(3), block1.TextDensity())
	require.True(t, block1.HasLabel(LabelMightBeContent))
	require.True(t, block1.HasLabel(LabelArticleMetadata))
	require.Equal(t, 0, block1.OffsetBlocksStart)
	require.Equal(t, 1, block1.OffsetBlocksEnd)
}

func TestTextBlock_EmptySentinelsAreFresh(t *testing.T) {
	a := EmptyStart()
	b := EmptyStart()
	require.NotSame(t, a, b)
	a.AddLabel("mutated")
	require.False(t, b.HasLabel("mutated"))
}

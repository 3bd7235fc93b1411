package boilerpy

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// blockSummary is a diff-friendly projection of a TextBlock, used so
// cmp.Diff output stays readable instead of dumping every stats field.
type blockSummary struct {
	Text                 string
	NumWords             int
	NumWordsInAnchorText int
}

func summarize(doc *TextDocument) []blockSummary {
	out := make([]blockSummary, len(doc.Blocks))
	for i, b := range doc.Blocks {
		out[i] = blockSummary{Text: b.Text, NumWords: b.NumWords, NumWordsInAnchorText: b.NumWordsInAnchorText}
	}
	return out
}

func TestParseString_AnchorDensityScenario(t *testing.T) {
	html := "<html><body><p>" + wordsText(6) + "</p><div>end with space " +
		"<a href='x'>" + wordsText(3) + "</a></div><a href='y'><p>" + wordsText(6) + "</p></a></body></html>"

	doc, err := ParseString(html)
	require.NoError(t, err)
	require.Len(t, doc.Blocks, 3)

	require.InDelta(t, 0.0, doc.Blocks[0].LinkDensity(), 1e-9)
	require.InDelta(t, 0.5, doc.Blocks[1].LinkDensity(), 1e-9)
	require.InDelta(t, 1.0, doc.Blocks[2].LinkDensity(), 1e-9)

	want := []blockSummary{
		{Text: doc.Blocks[0].Text, NumWords: 6, NumWordsInAnchorText: 0},
		{Text: doc.Blocks[1].Text, NumWords: 9, NumWordsInAnchorText: 3},
		{Text: doc.Blocks[2].Text, NumWords: 6, NumWordsInAnchorText: 6},
	}
	if diff := cmp.Diff(want, summarize(doc)); diff != "" {
		t.Errorf("block summaries mismatch (-want +got):\n%s", diff)
	}
}

func TestKeepEverythingExtractor_MarksAllContent(t *testing.T) {
	html := "<html><body><p>" + wordsText(4) + "</p><div><p>nav link</p></div></body></html>"
	doc, err := KeepEverythingExtractor().GetDocument(html)
	require.NoError(t, err)
	for _, b := range doc.Blocks {
		require.True(t, b.IsContent)
	}
}

func TestArticleExtractor_DropsShortBoilerplateAroundLongArticle(t *testing.T) {
	article := wordsText(len(defaultWords))
	html := "<html><body>" +
		"<div><p>Home</p><p>About</p><p>Contact</p></div>" +
		"<article><p>" + article + "</p></article>" +
		"<div><p>&copy; 2024</p><p>Privacy</p></div>" +
		"</body></html>"

	content, err := ArticleExtractor().GetContent(html)
	require.NoError(t, err)
	require.Contains(t, content, defaultWords[0])
	require.NotContains(t, content, "Privacy")
}

func TestDefaultExtractor_EmptyDocumentStillReturnsEmptyContent(t *testing.T) {
	content, err := DefaultExtractor().GetContent("<html><head></head><body></body></html>")
	require.ErrorIs(t, err, ErrEmptyDocument)
	require.Equal(t, "", content)
}

package boilerpy

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func parseFixture(t *testing.T, htmlStr string) *TextDocument {
	t.Helper()
	doc, err := ParseString(htmlStr)
	require.NoError(t, err)
	return doc
}

func TestParseReader_Blocks(t *testing.T) {
	doc := parseFixture(t, "<html><body><p>"+wordsText(4)+"</p><div>"+wordsText(5)+
		"<p>"+wordsText(6)+"</p>"+wordsText(7)+"</div></body></html>")

	require.Len(t, doc.Blocks, 4)
	var numWords []int
	for _, b := range doc.Blocks {
		numWords = append(numWords, b.NumWords)
	}
	require.Equal(t, []int{4, 5, 6, 7}, numWords)
}

func TestParseReader_Anchor(t *testing.T) {
	content3 := "end with space "
	doc := parseFixture(t, "<html><body><p>"+wordsText(6)+"</p><div>"+content3+
		"<a href='half.html'>"+wordsText(3)+"</a></div><a href='full.html'><p>"+wordsText(6)+"</p></a></body></html>")

	require.Len(t, doc.Blocks, 3)
	require.InDelta(t, 0.0, doc.Blocks[0].LinkDensity(), 1e-9)
	require.InDelta(t, 0.5, doc.Blocks[1].LinkDensity(), 1e-9)
	require.InDelta(t, 1.0, doc.Blocks[2].LinkDensity(), 1e-9)
	require.Equal(t, []int{0, 3, 6}, []int{
		doc.Blocks[0].NumWordsInAnchorText,
		doc.Blocks[1].NumWordsInAnchorText,
		doc.Blocks[2].NumWordsInAnchorText,
	})
}

func TestParseReader_Title(t *testing.T) {
	doc := parseFixture(t, "<html><head><title>THIS IS TITLE</title></head><body><p>THIS IS CONTENT</p></body></html>")
	require.Equal(t, "THIS IS TITLE", doc.Title)
}

func TestParseReader_TextOutsideBodyIgnored(t *testing.T) {
	doc := parseFixture(t, "<html><head><p>NOT IN BODY</p></head><body><p>THIS IS CONTENT</p></body></html>")
	require.Len(t, doc.Blocks, 1)
	require.Equal(t, "THIS IS CONTENT", doc.Blocks[0].Text)
}

func TestParseReader_InlineJoining(t *testing.T) {
	doc := parseFixture(t, "<html><body><div><h1>AA</h1><h4>BB</h4></div><div><span>CC</span><b>DD</b></div></body></html>")
	require.Len(t, doc.Blocks, 3)
	require.Equal(t, "AA", doc.Blocks[0].Text)
	require.Equal(t, "BB", doc.Blocks[1].Text)
	require.Equal(t, "CCDD", doc.Blocks[2].Text)
}

func TestParseReader_IgnorableScope(t *testing.T) {
	doc := parseFixture(t, "<html><body><p>"+wordsText(10)+"</p><option><p>"+wordsText(12)+"</p></option></body></html>")
	require.Len(t, doc.Blocks, 1)
	require.Equal(t, wordsText(10), doc.Blocks[0].Text)
}

func TestParseReader_BlockOffsets(t *testing.T) {
	doc := parseFixture(t, "<html><body><p>"+wordsText(11)+"  </p>  <p> "+wordsText(12)+" </p><p>"+wordsText(13)+"  </p><p>"+wordsText(14)+"  </p></body></html>")
	require.Len(t, doc.Blocks, 4)
	for i, b := range doc.Blocks {
		require.Equal(t, i, b.OffsetBlocksStart)
		require.Equal(t, i, b.OffsetBlocksEnd)
	}
}

func TestParseReader_TagLevel(t *testing.T) {
	doc := parseFixture(t, "<html><body><div><p><span><a href='x.html'>"+wordsText(5)+"</a></span></p>"+wordsText(6)+"</div></body></html>")
	require.Len(t, doc.Blocks, 2)
	require.Equal(t, []int{5, 3}, []int{doc.Blocks[0].TagLevel, doc.Blocks[1].TagLevel})
}

func TestParseReader_TextDensity(t *testing.T) {
	doc := parseFixture(t, "<html><body><p>"+wordsText(80)+"</p><p>one, !!! two</p></body></html>")
	require.Len(t, doc.Blocks, 2)

	require.Equal(t, 80, doc.Blocks[0].NumWords)
	require.GreaterOrEqual(t, doc.Blocks[0].NumWordsInWrappedLines, 60)
	require.LessOrEqual(t, doc.Blocks[0].NumWordsInWrappedLines, 80)
	require.GreaterOrEqual(t, doc.Blocks[0].NumWrappedLines, 4)
	require.LessOrEqual(t, doc.Blocks[0].NumWrappedLines, 7)

	require.Equal(t, 2, doc.Blocks[1].NumWords)
	require.Equal(t, 2, doc.Blocks[1].NumWordsInWrappedLines)
	require.Equal(t, 1, doc.Blocks[1].NumWrappedLines)
	require.Equal(t, float64(2), doc.Blocks[1].TextDensity())
}

func TestParseReader_EmptyDocument(t *testing.T) {
	_, err := ParseString("<html><head></head><body></body></html>")
	require.ErrorIs(t, err, ErrEmptyDocument)
}

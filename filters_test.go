package boilerpy

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func contentFlags(doc *TextDocument) []bool {
	out := make([]bool, len(doc.Blocks))
	for i, b := range doc.Blocks {
		out[i] = b.IsContent
	}
	return out
}

func verifyContent(t *testing.T, f Filter, doc *TextDocument, want []bool) {
	t.Helper()
	before := contentFlags(doc)
	changed := f.Process(doc)
	got := contentFlags(doc)
	require.Equal(t, want, got)

	anyDiff := false
	for i := range before {
		if before[i] != got[i] {
			anyDiff = true
			break
		}
	}
	require.Equal(t, anyDiff, changed)
}

func docOf(blocks ...*TextBlock) *TextDocument {
	return NewTextDocument(blocks, "")
}

func TestMarkEverythingContentFilter(t *testing.T) {
	doc := docOf(newWordBlock(5, 0), newWordBlock(100, 0), newWordBlock(80, 0))
	doc.Blocks[1].SetIsContent(true)
	verifyContent(t, MarkEverythingContentFilter{}, doc, []bool{true, true, true})
}

func TestInvertedFilter(t *testing.T) {
	doc := docOf(newWordBlock(5, 0), newWordBlock(100, 0), newWordBlock(80, 0))
	doc.Blocks[1].SetIsContent(true)
	verifyContent(t, InvertedFilter{}, doc, []bool{true, false, true})
}

func TestBoilerplateBlockFilter(t *testing.T) {
	doc := docOf(newWordBlock(5, 0), newWordBlock(100, 0), newWordBlock(10, 0), newWordBlock(50, 0), newWordBlock(80, 0))
	doc.Blocks[1].SetIsContent(true)
	doc.Blocks[3].SetIsContent(true)
	initBlocks := doc.Blocks
	changed := BoilerplateBlockFilter{}.Process(doc)
	require.True(t, changed)
	require.Equal(t, []*TextBlock{initBlocks[1], initBlocks[3]}, doc.Blocks)
	require.Equal(t, []bool{true, true}, contentFlags(doc))
}

func TestMinWordsFilter(t *testing.T) {
	doc := docOf(newWordBlock(10, 0), newWordBlock(50, 0))
	doc.Blocks[0].SetIsContent(true)
	doc.Blocks[1].SetIsContent(true)
	verifyContent(t, NewMinWordsFilter(20), doc, []bool{false, true})
}

func TestMinClauseWordsFilter(t *testing.T) {
	doc := docOf(
		newTextBlockFromString("This is a clause, because it is separated by a comma."),
		newTextBlockFromString("Real short"),
		newTextBlockFromString("Lots of, very, very, very, small, clauses."),
		newTextBlockFromString("If acceptClausesWithoutDelimiter is false then clauses that dont end in punctuation dont count"),
	)
	for _, b := range doc.Blocks {
		b.SetIsContent(true)
	}
	verifyContent(t, NewMinClauseWordsFilter(5, false), doc, []bool{true, false, false, false})
}

func TestSplitParagraphBlocksFilter(t *testing.T) {
	doc := docOf(
		newTextBlockFromString("A single paragraph."),
		newTextBlockFromString("Multiple paragraphs.\n\nParagraph 2 is here."),
	)
	doc.Blocks[0].SetIsContent(true)

	changed := SplitParagraphBlocksFilter{}.Process(doc)
	require.True(t, changed)

	var texts []string
	for _, b := range doc.Blocks {
		texts = append(texts, b.Text)
	}
	require.Equal(t, []string{"A single paragraph.", "Multiple paragraphs.", "Paragraph 2 is here."}, texts)
	require.Equal(t, []bool{true, false, false}, contentFlags(doc))
}

func TestSurroundingToContentFilter(t *testing.T) {
	doc := docOf(
		newWordBlock(10, 0), newWordBlock(20, 0), newWordBlock(10, 0), newWordBlock(5, 5),
		newWordBlock(10, 0), newWordBlock(20, 0), newWordBlock(20, 0), newWordBlock(10, 0),
	)
	content := []bool{true, false, true, false, true, false, false, true}
	for i, c := range content {
		doc.Blocks[i].SetIsContent(c)
	}
	verifyContent(t, NewSurroundingToContentFilter(nil), doc, []bool{true, true, true, false, true, false, false, true})
}

func TestLabelToBoilerplateFilter(t *testing.T) {
	doc := docOf(newWordBlock(10, 0), newWordBlock(10, 0), newWordBlock(10, 0), newWordBlock(10, 0))
	for _, b := range doc.Blocks {
		b.SetIsContent(true)
	}
	doc.Blocks[0].AddLabel(LabelStrictlyNotContent)
	doc.Blocks[1].AddLabel(LabelMightBeContent)
	doc.Blocks[2].AddLabel(LabelStrictlyNotContent)
	doc.Blocks[2].AddLabel(LabelMightBeContent)

	verifyContent(t, NewLabelToBoilerplateFilter(LabelStrictlyNotContent), doc, []bool{false, true, false, true})
}

func TestLabelToContentFilter(t *testing.T) {
	doc := docOf(newWordBlock(10, 0), newWordBlock(10, 0), newWordBlock(10, 0), newWordBlock(10, 0))
	doc.Blocks[0].AddLabel(LabelStrictlyNotContent)
	doc.Blocks[1].AddLabel(LabelMightBeContent)
	doc.Blocks[2].AddLabel(LabelStrictlyNotContent)
	doc.Blocks[2].AddLabel(LabelMightBeContent)

	verifyContent(t, NewLabelToContentFilter(LabelMightBeContent), doc, []bool{false, true, true, false})
}

func blockRange(tb *TextBlock) [2]int {
	return [2]int{tb.OffsetBlocksStart, tb.OffsetBlocksEnd}
}

func TestSimpleBlockFusionProcessor(t *testing.T) {
	doc := docOf(
		NewTextBlock("two words", nil, 2, 0, 0, 0, 0),
		NewTextBlock("three fucking words", nil, 3, 0, 0, 0, 1),
		NewTextBlock("another three words", nil, 3, 0, 0, 0, 2),
	)
	changed := SimpleBlockFusionProcessor{}.Process(doc)
	require.True(t, changed)
	require.Len(t, doc.Blocks, 2)
	require.Equal(t, [2]int{0, 0}, blockRange(doc.Blocks[0]))
	require.Equal(t, [2]int{1, 2}, blockRange(doc.Blocks[1]))
}

func TestContentFusionFilter(t *testing.T) {
	f := ContentFusionFilter{}

	doc := docOf(newWordBlock(10, 0), newWordBlock(10, 0))
	doc.Blocks[0].SetIsContent(true)
	changed := f.Process(doc)
	require.True(t, changed)
	require.Len(t, doc.Blocks, 1)

	doc = docOf(newWordBlock(10, 0), newWordBlock(10, 0))
	doc.Blocks[0].SetIsContent(true)
	doc.Blocks[1].AddLabel(LabelStrictlyNotContent)
	changed = f.Process(doc)
	require.False(t, changed)
	require.Len(t, doc.Blocks, 2)

	doc = docOf(newWordBlock(10, 0), newWordBlock(10, 8))
	doc.Blocks[0].SetIsContent(true)
	changed = f.Process(doc)
	require.False(t, changed)
	require.Len(t, doc.Blocks, 2)

	doc = docOf(newWordBlock(10, 0), newWordBlock(10, 0), newWordBlock(10, 0), newWordBlock(10, 0))
	doc.Blocks[0].SetIsContent(true)
	doc.Blocks[2].SetIsContent(true)
	changed = f.Process(doc)
	require.True(t, changed)
	require.Len(t, doc.Blocks, 1)
}

func TestLabelFusion(t *testing.T) {
	lb1 := MarkupPrefix + ".title"
	lb2 := MarkupPrefix + ".menu"
	doc := docOf(
		newWordBlock(10, 0), newWordBlock(10, 0), newWordBlock(10, 0), newWordBlock(10, 0),
		newWordBlock(10, 0), newWordBlock(10, 0), newWordBlock(10, 0),
	)
	for i, b := range doc.Blocks {
		b.OffsetBlocksStart = i
		b.OffsetBlocksEnd = i
	}
	doc.Blocks[2].AddLabel(lb1)
	doc.Blocks[3].AddLabel(lb1)
	doc.Blocks[4].AddLabel(lb2)
	doc.Blocks[5].AddLabel(lb2)
	doc.Blocks[6].AddLabels(lb1, lb2)

	changed := NewLabelFusion("").Process(doc)
	require.True(t, changed)

	var ranges [][2]int
	for _, b := range doc.Blocks {
		ranges = append(ranges, blockRange(b))
	}
	require.Equal(t, [][2]int{{0, 1}, {2, 3}, {4, 5}, {6, 6}}, ranges)
}

func TestBlockProximityFusion(t *testing.T) {
	doc := docOf(
		newWordBlock(10, 0), newWordBlock(10, 0), newWordBlock(10, 0), newWordBlock(10, 0),
		newWordBlock(10, 0), newWordBlock(10, 0), newWordBlock(10, 0),
	)
	content := []bool{false, true, true, true, true, true, false}
	for i, c := range content {
		doc.Blocks[i].SetIsContent(c)
		doc.Blocks[i].OffsetBlocksStart = i
		doc.Blocks[i].OffsetBlocksEnd = i
	}
	changed := NewBlockProximityFusion(1, true, false).Process(doc)
	require.True(t, changed)

	var ranges [][2]int
	for _, b := range doc.Blocks {
		ranges = append(ranges, blockRange(b))
	}
	require.Equal(t, [][2]int{{0, 0}, {1, 5}, {6, 6}}, ranges)
}

func TestKeepLargestBlockFilter(t *testing.T) {
	doc := docOf(newWordBlock(10, 0), newWordBlock(10, 0), newWordBlock(50, 0), newWordBlock(10, 0))
	content := []bool{false, true, true, true}
	for i, c := range content {
		doc.Blocks[i].SetIsContent(c)
	}
	verifyContent(t, NewKeepLargestBlockFilter(false), doc, []bool{false, false, true, false})
}

func TestExpandTitleToContentFilter(t *testing.T) {
	doc := docOf(newWordBlock(10, 0), newWordBlock(10, 0), newWordBlock(10, 0), newWordBlock(10, 0))
	doc.Blocks[0].AddLabel(LabelMightBeContent)
	doc.Blocks[1].AddLabels(LabelMightBeContent, LabelTitle)
	doc.Blocks[2].AddLabel(LabelMightBeContent)
	doc.Blocks[3].AddLabel(LabelMightBeContent)
	doc.Blocks[3].SetIsContent(true)

	verifyContent(t, ExpandTitleToContentFilter{}, doc, []bool{false, true, true, true})
}

func TestArticleMetadataFilter(t *testing.T) {
	doc := docOf(
		newTextBlockFromString(" May 1, 2009 8:00pm EST"),
		newTextBlockFromString("May not be date 1"),
		newTextBlockFromString("By Frank Sinatra"),
		newTextBlockFromString("By looking at this sentence, you can see there is no author"),
	)
	verifyContent(t, ArticleMetadataFilter{}, doc, []bool{true, false, true, false})
	require.True(t, doc.Blocks[0].HasLabel(LabelArticleMetadata))
}

func TestAddPrecedingLabelsFilter(t *testing.T) {
	doc := docOf(newWordBlock(10, 0), newWordBlock(10, 0), newWordBlock(10, 0))
	doc.Blocks[0].AddLabel(LabelTitle)
	doc.Blocks[1].AddLabel(LabelMightBeContent)

	changed := NewAddPrecedingLabelsFilter("^").Process(doc)
	require.True(t, changed)

	require.Equal(t, NewLabelSet(LabelTitle), doc.Blocks[0].Labels)
	require.Equal(t, NewLabelSet("^"+LabelTitle, LabelMightBeContent), doc.Blocks[1].Labels)
	require.Equal(t, NewLabelSet("^"+LabelMightBeContent), doc.Blocks[2].Labels)
}

func TestDocumentTitleMatchClassifier(t *testing.T) {
	doc := docOf(
		newTextBlockFromString("News"),
		newTextBlockFromString("This is the real title"),
		newTextBlockFromString("Red herring"),
	)
	doc.Title = "News - This is the real title"

	changed := NewDocumentTitleMatchClassifierFromDocTitle().Process(doc)
	require.True(t, changed)
	require.False(t, doc.Blocks[0].HasLabel(LabelTitle))
	require.True(t, doc.Blocks[1].HasLabel(LabelTitle))
	require.False(t, doc.Blocks[2].HasLabel(LabelTitle))
}

func TestMinFulltextWordsFilter(t *testing.T) {
	doc := docOf(newWordBlock(10, 0), newWordBlock(50, 0))
	doc.Blocks[0].SetIsContent(true)
	doc.Blocks[1].SetIsContent(true)
	verifyContent(t, NewMinFulltextWordsFilter(30), doc, []bool{false, true})
}

func TestKeepLargestFulltextBlockFilter(t *testing.T) {
	doc := docOf(newWordBlock(10, 0), newWordBlock(50, 0), newWordBlock(80, 0), newWordBlock(10, 0))
	content := []bool{true, true, false, false}
	for i, c := range content {
		doc.Blocks[i].SetIsContent(c)
	}
	verifyContent(t, KeepLargestFulltextBlockFilter{}, doc, []bool{false, true, false, false})
}

func TestIgnoreBlocksAfterContentFilter(t *testing.T) {
	doc := docOf(newWordBlock(10, 0), newWordBlock(30, 0), newWordBlock(50, 0), newWordBlock(80, 0), newWordBlock(20, 0))
	content := []bool{false, true, true, true, true}
	for i, c := range content {
		doc.Blocks[i].SetIsContent(c)
	}
	doc.Blocks[0].AddLabel(LabelIndicatesEndOfText)
	doc.Blocks[3].AddLabel(LabelIndicatesEndOfText)

	verifyContent(t, NewIgnoreBlocksAfterContentFilter(60), doc, []bool{false, true, true, false, false})
}

func TestIgnoreBlocksAfterContentFromEndFilter(t *testing.T) {
	doc := docOf(newWordBlock(80, 0), newWordBlock(80, 0), newWordBlock(80, 0), newWordBlock(80, 0), newWordBlock(80, 0))
	for _, b := range doc.Blocks {
		b.SetIsContent(true)
	}
	doc.Blocks[0].AddLabel(LabelIndicatesEndOfText)
	doc.Blocks[3].AddLabel(LabelIndicatesEndOfText)

	verifyContent(t, IgnoreBlocksAfterContentFromEndFilter{}, doc, []bool{true, true, true, false, true})
}

func TestTerminatingBlocksFinder(t *testing.T) {
	s1 := "Comments can be the first word of article text.  If there are many words in the block, it is not comments"
	s2 := "Thanks for your comments - this feedback is now closed"
	doc := docOf(
		newTextBlockFromString("Comments"),
		newTextBlockFromString("Please have your say"),
		newTextBlockFromString("48 Comments today"),
		newTextBlockFromString(s1),
		newTextBlockFromString(s2),
	)
	changed := TerminatingBlocksFinder{}.Process(doc)
	require.True(t, changed)

	var hasLabel []bool
	for _, b := range doc.Blocks {
		hasLabel = append(hasLabel, b.HasLabel(LabelIndicatesEndOfText))
	}
	require.Equal(t, []bool{true, true, true, false, true}, hasLabel)
}

func TestNumWordsRulesClassifier(t *testing.T) {
	doc := docOf(newWordBlock(2, 0), newWordBlock(10, 0), newWordBlock(10, 0))
	for _, b := range doc.Blocks {
		b.SetIsContent(true)
	}
	NumWordsRulesClassifier{}.Process(doc)
	require.False(t, doc.Blocks[1].IsContent)

	doc = docOf(newWordBlock(10, 0), newWordBlock(10, 0), newWordBlock(10, 0))
	for _, b := range doc.Blocks {
		b.SetIsContent(true)
	}
	NumWordsRulesClassifier{}.Process(doc)
	require.True(t, doc.Blocks[1].IsContent)
}

func TestDensityRulesClassifier(t *testing.T) {
	doc := docOf(newWordBlock(10, 10), newWordBlock(10, 0), newWordBlock(5, 0))
	for _, b := range doc.Blocks {
		b.SetIsContent(true)
	}
	DensityRulesClassifier{}.Process(doc)
	require.False(t, doc.Blocks[1].IsContent)
}

func TestCanolaFilter(t *testing.T) {
	doc := docOf(newWordBlock(5, 5), newWordBlock(10, 10), newWordBlock(30, 0))
	doc.Blocks[0].SetIsContent(true)
	doc.Blocks[2].SetIsContent(true)
	CanolaFilter{}.Process(doc)
	require.True(t, doc.Blocks[1].IsContent)
}

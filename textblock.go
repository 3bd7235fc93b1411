package boilerpy

import (
	"fmt"
	"math"
	"strings"
)

// TextBlock is a contiguous run of visible text extracted from a source
// document, together with the shallow statistics the filter pipeline
// classifies it by.
type TextBlock struct {
	Text string

	NumWords                int
	NumWordsInAnchorText    int
	NumWordsInWrappedLines  int
	NumWrappedLines         int
	NumFullTextWords        int

	textDensity float64
	linkDensity float64

	OffsetBlocksStart int
	OffsetBlocksEnd   int

	TagLevel int

	IsContent bool

	Labels LabelSet

	// ContainedTextElements holds the indices of the tokenizer Characters
	// events that contributed text to this block, for downstream
	// highlighting.
	ContainedTextElements map[int]struct{}
}

// NewTextBlock builds a TextBlock and computes its derived densities. The
// contained set is adopted by reference, not copied.
func NewTextBlock(text string, contained map[int]struct{}, numWords, numWordsInAnchorText, numWordsInWrappedLines, numWrappedLines, offsetBlocks int) *TextBlock {
	if contained == nil {
		contained = map[int]struct{}{}
	}
	tb := &TextBlock{
		Text:                   text,
		NumWords:               numWords,
		NumWordsInAnchorText:   numWordsInAnchorText,
		NumWordsInWrappedLines: numWordsInWrappedLines,
		NumWrappedLines:        numWrappedLines,
		OffsetBlocksStart:      offsetBlocks,
		OffsetBlocksEnd:        offsetBlocks,
		Labels:                 NewLabelSet(),
		ContainedTextElements:  contained,
	}
	tb.initDensities()
	return tb
}

// initDensities recomputes NumWordsInWrappedLines/NumWrappedLines (if they
// were left at zero) and the two density fields. Called whenever the
// underlying word counts change.
func (tb *TextBlock) initDensities() {
	if tb.NumWordsInWrappedLines == 0 {
		tb.NumWordsInWrappedLines = tb.NumWords
		tb.NumWrappedLines = 1
	}
	tb.textDensity = float64(tb.NumWordsInWrappedLines) / float64(tb.NumWrappedLines)
	if tb.NumWords == 0 {
		tb.linkDensity = 0
	} else {
		tb.linkDensity = float64(tb.NumWordsInAnchorText) / float64(tb.NumWords)
	}
}

// TextDensity is the mean number of words per wrapped line.
func (tb *TextBlock) TextDensity() float64 { return tb.textDensity }

// LinkDensity is the fraction of words lying inside an anchor.
func (tb *TextBlock) LinkDensity() float64 { return tb.linkDensity }

// SetIsContent updates the content flag, reporting whether it changed.
func (tb *TextBlock) SetIsContent(isContent bool) bool {
	if tb.IsContent != isContent {
		tb.IsContent = isContent
		return true
	}
	return false
}

// AddLabel adds a single label to the block.
func (tb *TextBlock) AddLabel(label string) {
	tb.Labels.Add(label)
}

// AddLabels adds every label in labels to the block.
func (tb *TextBlock) AddLabels(labels ...string) {
	for _, l := range labels {
		tb.Labels.Add(l)
	}
}

// HasLabel reports whether the block carries label.
func (tb *TextBlock) HasLabel(label string) bool {
	return tb.Labels.Has(label)
}

// RemoveLabel removes label from the block, reporting whether it was present.
func (tb *TextBlock) RemoveLabel(label string) bool {
	return tb.Labels.Remove(label)
}

// MergeNext folds next into tb in place: concatenates text with a newline
// separator, sums the word-like counters, widens the offset range, takes
// the minimum tag level, unions labels and contained elements, ORs
// IsContent, and recomputes densities.
func (tb *TextBlock) MergeNext(next *TextBlock) {
	tb.Text += "\n" + next.Text
	tb.NumWords += next.NumWords
	tb.NumWordsInAnchorText += next.NumWordsInAnchorText
	tb.NumWordsInWrappedLines += next.NumWordsInWrappedLines
	tb.NumWrappedLines += next.NumWrappedLines
	tb.OffsetBlocksStart = min(tb.OffsetBlocksStart, next.OffsetBlocksStart)
	tb.OffsetBlocksEnd = max(tb.OffsetBlocksEnd, next.OffsetBlocksEnd)
	tb.initDensities()
	tb.IsContent = tb.IsContent || next.IsContent
	for idx := range next.ContainedTextElements {
		tb.ContainedTextElements[idx] = struct{}{}
	}
	tb.NumFullTextWords += next.NumFullTextWords
	tb.Labels.AddAll(next.Labels)
	tb.TagLevel = min(tb.TagLevel, next.TagLevel)
}

// String renders a one-line stats header followed by the block text, the
// same shape as the original Python implementation's debug repr.
func (tb *TextBlock) String() string {
	status := "boilerplate"
	if tb.IsContent {
		status = "CONTENT"
	}
	var labels []string
	for l := range tb.Labels {
		labels = append(labels, l)
	}
	return fmt.Sprintf("[%d-%d;tl=%d;nw=%d;nwl=%d;ld=%v]\t%s,%v\n%s",
		tb.OffsetBlocksStart, tb.OffsetBlocksEnd, tb.TagLevel, tb.NumWords,
		tb.NumWrappedLines, tb.linkDensity, status, labels, tb.Text)
}

// emptyStartOffset and emptyEndOffset are the offsets of the sentinel
// blocks used by neighborhood classifiers so that the first and last real
// blocks always have well-defined neighbours. EmptyStart/EmptyEnd build a
// fresh sentinel block on every call, so mutating one never affects another.
var (
	emptyStartOffset = math.MinInt32
	emptyEndOffset   = math.MaxInt32
)

// EmptyStart is the synthetic "no predecessor" sentinel block.
func EmptyStart() *TextBlock {
	return NewTextBlock("", nil, 0, 0, 0, 0, emptyStartOffset)
}

// EmptyEnd is the synthetic "no successor" sentinel block.
func EmptyEnd() *TextBlock {
	return NewTextBlock("", nil, 0, 0, 0, 0, emptyEndOffset)
}

// clauseWordCount counts whitespace-delimited words in a trimmed string,
// used by MinClauseWordsFilter.
func clauseWordCount(s string) int {
	return len(strings.Fields(s))
}

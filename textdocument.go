package boilerpy

import "strings"

// TextDocument is an ordered, mutable sequence of TextBlocks plus an
// optional title. Filters mutate blocks in place or replace the sequence
// wholesale.
type TextDocument struct {
	Title  string
	Blocks []*TextBlock
}

// NewTextDocument builds a TextDocument from blocks, in sequential order of
// appearance.
func NewTextDocument(blocks []*TextBlock, title string) *TextDocument {
	return &TextDocument{Title: title, Blocks: blocks}
}

// Content returns the concatenation of every content block's text, one per
// line.
func (d *TextDocument) Content() string {
	return d.Text(true, false)
}

// Text returns the concatenation of block texts, filtered by content
// status: includeContent selects blocks with IsContent == true,
// includeNonContent selects the rest.
func (d *TextDocument) Text(includeContent, includeNonContent bool) string {
	var sb strings.Builder
	for _, tb := range d.Blocks {
		if tb.IsContent {
			if !includeContent {
				continue
			}
		} else {
			if !includeNonContent {
				continue
			}
		}
		sb.WriteString(tb.Text)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// DebugString returns detailed debugging information about every contained
// TextBlock.
func (d *TextDocument) DebugString() string {
	var sb strings.Builder
	for _, tb := range d.Blocks {
		sb.WriteString(tb.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

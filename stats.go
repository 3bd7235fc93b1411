package boilerpy

// DocumentStatistics provides shallow aggregate statistics over a
// TextDocument's blocks.
type DocumentStatistics struct {
	numWords  int
	numBlocks int
}

// NewDocumentStatistics computes statistics over doc. When contentOnly is
// true, only blocks with IsContent == true are counted.
func NewDocumentStatistics(doc *TextDocument, contentOnly bool) *DocumentStatistics {
	s := &DocumentStatistics{}
	for _, tb := range doc.Blocks {
		if contentOnly && !tb.IsContent {
			continue
		}
		s.numWords += tb.NumWords
		s.numBlocks++
	}
	return s
}

// NumWords returns the overall number of words across the counted blocks.
func (s *DocumentStatistics) NumWords() int { return s.numWords }

// NumBlocks returns the number of blocks counted.
func (s *DocumentStatistics) NumBlocks() int { return s.numBlocks }

// AvgNumWords returns the average number of words per block (overall word
// count divided by block count). Returns 0 if no blocks were counted.
func (s *DocumentStatistics) AvgNumWords() float64 {
	if s.numBlocks == 0 {
		return 0
	}
	return float64(s.numWords) / float64(s.numBlocks)
}

package boilerpy

import "io"

// Extractor pairs a parse step with a Filter pipeline, producing the
// remaining content text of an HTML document.
type Extractor struct {
	Filter Filter
}

// NewExtractor builds an Extractor around filter.
func NewExtractor(filter Filter) *Extractor {
	return &Extractor{Filter: filter}
}

// GetContent parses html and returns the concatenation of every block left
// marked as content after running the filter pipeline.
func (e *Extractor) GetContent(html string, opts ...BlockBuilderOption) (string, error) {
	doc, err := ParseString(html, opts...)
	if doc == nil {
		return "", err
	}
	e.Filter.Process(doc)
	return doc.Content(), err
}

// GetContentFromReader parses r and returns the concatenation of every
// block left marked as content after running the filter pipeline.
func (e *Extractor) GetContentFromReader(r io.Reader, opts ...BlockBuilderOption) (string, error) {
	doc, err := ParseReader(r, opts...)
	if doc == nil {
		return "", err
	}
	e.Filter.Process(doc)
	return doc.Content(), err
}

// GetDocument parses html, runs the filter pipeline, and returns the full
// TextDocument (for callers that need more than the concatenated text).
func (e *Extractor) GetDocument(html string, opts ...BlockBuilderOption) (*TextDocument, error) {
	doc, err := ParseString(html, opts...)
	if doc == nil {
		return nil, err
	}
	e.Filter.Process(doc)
	return doc, err
}

// articleFilterChain is tuned towards news articles; usually more accurate
// than DefaultExtractor on article-like HTML.
func articleFilterChain() FilterChain {
	return NewFilterChain(
		TerminatingBlocksFinder{},
		NewDocumentTitleMatchClassifierFromDocTitle(),
		NumWordsRulesClassifier{},
		NewIgnoreBlocksAfterContentFilter(60),
		NewBlockProximityFusion(1, false, false),
		BoilerplateBlockFilter{},
		NewBlockProximityFusion(1, true, false),
		NewKeepLargestBlockFilter(false),
		ExpandTitleToContentFilter{},
	)
}

// ArticleExtractor works well for most types of article-like HTML.
func ArticleExtractor() *Extractor {
	return NewExtractor(articleFilterChain())
}

// DefaultExtractor is a generic full-text extractor with no article-domain
// heuristics. Usually worse than ArticleExtractor.
func DefaultExtractor() *Extractor {
	return NewExtractor(NewFilterChain(
		SimpleBlockFusionProcessor{},
		NewBlockProximityFusion(1, false, false),
		DensityRulesClassifier{},
	))
}

// LargestContentExtractor extracts the largest text component of a page.
func LargestContentExtractor() *Extractor {
	return NewExtractor(NewFilterChain(
		NumWordsRulesClassifier{},
		NewBlockProximityFusion(1, false, false),
		NewKeepLargestBlockFilter(false),
	))
}

// CanolaExtractor is trained on the krdwrd Canola corpus; uses a different
// definition of "boilerplate" than the article/default extractors.
func CanolaExtractor() *Extractor {
	return NewExtractor(CanolaFilter{})
}

// KeepEverythingExtractor is a dummy extractor that marks everything as
// content; useful to isolate whether a problem lies in extraction or
// elsewhere in a pipeline.
func KeepEverythingExtractor() *Extractor {
	return NewExtractor(MarkEverythingContentFilter{})
}

// NumWordsRulesExtractor is a generic full-text extractor based solely on
// the number of words per block (current, previous, and next).
func NumWordsRulesExtractor() *Extractor {
	return NewExtractor(NumWordsRulesClassifier{})
}

// ArticleSentencesExtractor is tuned towards extracting clause-level
// sentence fragments from news articles.
func ArticleSentencesExtractor() *Extractor {
	return NewExtractor(NewFilterChain(
		articleFilterChain(),
		SplitParagraphBlocksFilter{},
		NewMinClauseWordsFilter(5, false),
	))
}

// KeepEverythingWithMinKWordsExtractor marks everything as content, then
// demotes blocks with fewer than kMin words, after a first simple-fusion
// pass.
func KeepEverythingWithMinKWordsExtractor(kMin int) *Extractor {
	return NewExtractor(NewFilterChain(
		SimpleBlockFusionProcessor{},
		MarkEverythingContentFilter{},
		NewMinWordsFilter(kMin),
	))
}

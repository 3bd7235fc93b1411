package boilerpy

// DefaultLabels enumerates the closed set of well-known labels that the
// core filters and the block builder attach to TextBlocks. User code and
// MarkupTagAction-derived labels may add arbitrary other strings; these are
// just the ones the shipped filters look for by name.
const (
	// LabelTitle marks a block whose text matches (a fragment of) the
	// document title. Set by DocumentTitleMatchClassifier.
	LabelTitle = "boilerpy.TITLE"

	// LabelArticleMetadata marks a short block that looks like a byline or
	// publication date. Set by ArticleMetadataFilter.
	LabelArticleMetadata = "boilerpy.ARTICLE_METADATA"

	// LabelIndicatesEndOfText marks a block that looks like the start of a
	// comments section or similar end-of-article marker. Set by
	// TerminatingBlocksFinder.
	LabelIndicatesEndOfText = "boilerpy.INDICATES_END_OF_TEXT"

	// LabelMightBeContent marks a block that was demoted to non-content by
	// a selection filter but could plausibly still be content. Consulted by
	// ExpandTitleToContentFilter.
	LabelMightBeContent = "boilerpy.MIGHT_BE_CONTENT"

	// LabelStrictlyNotContent marks a block that ContentFusionFilter never
	// merges into a content run. Set by IgnoreBlocksAfterContentFromEnd.
	LabelStrictlyNotContent = "boilerpy.STRICTLY_NOT_CONTENT"

	// LabelHR marks a block produced at a <hr> boundary.
	LabelHR = "boilerpy.HR"

	// MarkupPrefix prefixes every label MarkupTagAction derives from a tag
	// name, CSS class, or id. Kept as the original implementation's actual
	// wire value (a single "<"), not the "MARKUP:" spelling spec prose uses
	// to name the concept.
	MarkupPrefix = "<"
)

// LabelSet is an unordered set of labels attached to a TextBlock.
type LabelSet map[string]struct{}

// NewLabelSet builds a LabelSet from zero or more labels.
func NewLabelSet(labels ...string) LabelSet {
	s := make(LabelSet, len(labels))
	for _, l := range labels {
		s[l] = struct{}{}
	}
	return s
}

// Add inserts a label into the set.
func (s LabelSet) Add(label string) {
	s[label] = struct{}{}
}

// AddAll inserts every label from other into the set.
func (s LabelSet) AddAll(other LabelSet) {
	for l := range other {
		s[l] = struct{}{}
	}
}

// Has reports whether the set contains label.
func (s LabelSet) Has(label string) bool {
	_, ok := s[label]
	return ok
}

// HasAny reports whether the set contains any of labels.
func (s LabelSet) HasAny(labels ...string) bool {
	for _, l := range labels {
		if s.Has(l) {
			return true
		}
	}
	return false
}

// Remove deletes label from the set, reporting whether it was present.
func (s LabelSet) Remove(label string) bool {
	if _, ok := s[label]; ok {
		delete(s, label)
		return true
	}
	return false
}

// Clone returns a shallow copy of the set.
func (s LabelSet) Clone() LabelSet {
	out := make(LabelSet, len(s))
	for l := range s {
		out[l] = struct{}{}
	}
	return out
}

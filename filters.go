package boilerpy

import (
	"regexp"
	"strings"
)

// Filter transforms a TextDocument in place and reports whether it changed
// anything. Implementations must be safe to run repeatedly: a filter that
// finds nothing to do returns false without mutating doc.
type Filter interface {
	Process(doc *TextDocument) bool
}

// FilterFunc adapts a plain function to the Filter interface.
type FilterFunc func(doc *TextDocument) bool

// Process calls f.
func (f FilterFunc) Process(doc *TextDocument) bool { return f(doc) }

// FilterChain runs a sequence of filters in order, ORing their results.
type FilterChain []Filter

// NewFilterChain builds a FilterChain from filters, in order.
func NewFilterChain(filters ...Filter) FilterChain {
	return FilterChain(filters)
}

// Process runs every filter in the chain against doc.
func (c FilterChain) Process(doc *TextDocument) bool {
	changed := false
	for _, f := range c {
		if f.Process(doc) {
			changed = true
		}
	}
	return changed
}

// subtractBlocks removes every block in toRemove from blocks, assuming
// toRemove appears in the same relative order as blocks.
func subtractBlocks(blocks, toRemove []*TextBlock) []*TextBlock {
	if len(toRemove) == 0 {
		return blocks
	}
	out := make([]*TextBlock, 0, len(blocks)-len(toRemove))
	removeIdx := 0
	for i, tb := range blocks {
		if removeIdx < len(toRemove) && tb == toRemove[removeIdx] {
			removeIdx++
			if removeIdx == len(toRemove) {
				out = append(out, blocks[i+1:]...)
				break
			}
			continue
		}
		out = append(out, tb)
	}
	return out
}

// ---------------------------------------------------------------------
// Simple filters
// ---------------------------------------------------------------------

// MarkEverythingContentFilter marks all blocks as content.
type MarkEverythingContentFilter struct{}

func (MarkEverythingContentFilter) Process(doc *TextDocument) bool {
	changed := false
	for _, tb := range doc.Blocks {
		if !tb.IsContent {
			tb.SetIsContent(true)
			changed = true
		}
	}
	return changed
}

// InvertedFilter flips the IsContent flag of every block.
type InvertedFilter struct{}

func (InvertedFilter) Process(doc *TextDocument) bool {
	if len(doc.Blocks) == 0 {
		return false
	}
	for _, tb := range doc.Blocks {
		tb.IsContent = !tb.IsContent
	}
	return true
}

// BoilerplateBlockFilter removes every block not marked as content.
type BoilerplateBlockFilter struct{}

func (BoilerplateBlockFilter) Process(doc *TextDocument) bool {
	newBlocks := make([]*TextBlock, 0, len(doc.Blocks))
	for _, tb := range doc.Blocks {
		if tb.IsContent {
			newBlocks = append(newBlocks, tb)
		}
	}
	changed := len(newBlocks) < len(doc.Blocks)
	doc.Blocks = newBlocks
	return changed
}

// MinWordsFilter demotes content blocks with fewer than MinWords words.
type MinWordsFilter struct {
	MinWords int
}

func NewMinWordsFilter(minWords int) *MinWordsFilter {
	return &MinWordsFilter{MinWords: minWords}
}

func (f *MinWordsFilter) Process(doc *TextDocument) bool {
	changed := false
	for _, tb := range doc.Blocks {
		if !tb.IsContent {
			continue
		}
		if tb.NumWords < f.MinWords {
			tb.SetIsContent(false)
			changed = true
		}
	}
	return changed
}

// clauseDelimiterPattern matches a run of clause-ending punctuation
// bordering a word, followed by whitespace or the end of the string.
var clauseDelimiterPattern = regexp.MustCompile(`\b[,.:;!?]+(?:\s+|$)`)

// MinClauseWordsFilter keeps only blocks with at least one clause of
// MinWords or more whitespace-delimited words.
type MinClauseWordsFilter struct {
	MinWords                      int
	AcceptClausesWithoutDelimiter bool
}

func NewMinClauseWordsFilter(minWords int, acceptClausesWithoutDelimiter bool) *MinClauseWordsFilter {
	return &MinClauseWordsFilter{MinWords: minWords, AcceptClausesWithoutDelimiter: acceptClausesWithoutDelimiter}
}

func (f *MinClauseWordsFilter) Process(doc *TextDocument) bool {
	changed := false
	for _, tb := range doc.Blocks {
		if !tb.IsContent {
			continue
		}
		clauses := clauseDelimiterPattern.Split(tb.Text, -1)
		hasClause := false
		for _, clause := range clauses[:len(clauses)-1] {
			if f.isClauseAccepted(clause) {
				hasClause = true
				break
			}
		}
		if f.AcceptClausesWithoutDelimiter && f.isClauseAccepted(clauses[len(clauses)-1]) {
			hasClause = true
		}
		if !hasClause {
			tb.SetIsContent(false)
			changed = true
		}
	}
	return changed
}

func (f *MinClauseWordsFilter) isClauseAccepted(text string) bool {
	return clauseWordCount(text) >= f.MinWords
}

// SplitParagraphBlocksFilter splits a block's text at newline boundaries
// into sibling blocks carrying the same content flag and labels.
type SplitParagraphBlocksFilter struct{}

var paragraphSplitPattern = regexp.MustCompile(`[\n\r]+`)

func (SplitParagraphBlocksFilter) Process(doc *TextDocument) bool {
	changed := false
	newBlocks := make([]*TextBlock, 0, len(doc.Blocks))
	for _, tb := range doc.Blocks {
		paragraphs := paragraphSplitPattern.Split(tb.Text, -1)
		if len(paragraphs) < 2 {
			newBlocks = append(newBlocks, tb)
			continue
		}
		for _, p := range paragraphs {
			p2 := NewTextBlock(p, nil, 0, 0, 0, 0, tb.OffsetBlocksStart)
			p2.SetIsContent(tb.IsContent)
			for l := range tb.Labels {
				p2.AddLabel(l)
			}
			newBlocks = append(newBlocks, p2)
			changed = true
		}
	}
	if changed {
		doc.Blocks = newBlocks
	}
	return changed
}

// SurroundingToContentFilter promotes a lone non-content block sandwiched
// between two content blocks, when cond holds for it.
type SurroundingToContentFilter struct {
	Condition func(tb *TextBlock) bool
}

// NewSurroundingToContentFilter builds a SurroundingToContentFilter. A nil
// condition defaults to "no links and more than 6 words".
func NewSurroundingToContentFilter(condition func(tb *TextBlock) bool) *SurroundingToContentFilter {
	if condition == nil {
		condition = func(tb *TextBlock) bool { return tb.LinkDensity() == 0 && tb.NumWords > 6 }
	}
	return &SurroundingToContentFilter{Condition: condition}
}

func (f *SurroundingToContentFilter) Process(doc *TextDocument) bool {
	tbs := doc.Blocks
	n := len(tbs)
	changed := false
	i := 1
	for i < n-1 {
		prev, cur, next := tbs[i-1], tbs[i], tbs[i+1]
		if !cur.IsContent && prev.IsContent && next.IsContent && f.Condition(cur) {
			cur.SetIsContent(true)
			changed = true
			i += 2
		} else {
			i++
		}
	}
	return changed
}

// LabelToBoilerplateFilter demotes content blocks carrying any of Labels.
type LabelToBoilerplateFilter struct {
	Labels []string
}

func NewLabelToBoilerplateFilter(labels ...string) *LabelToBoilerplateFilter {
	return &LabelToBoilerplateFilter{Labels: labels}
}

func (f *LabelToBoilerplateFilter) Process(doc *TextDocument) bool {
	changed := false
	for _, tb := range doc.Blocks {
		if tb.IsContent && tb.Labels.HasAny(f.Labels...) {
			tb.SetIsContent(false)
			changed = true
		}
	}
	return changed
}

// LabelToContentFilter promotes non-content blocks carrying any of Labels.
type LabelToContentFilter struct {
	Labels []string
}

func NewLabelToContentFilter(labels ...string) *LabelToContentFilter {
	return &LabelToContentFilter{Labels: labels}
}

func (f *LabelToContentFilter) Process(doc *TextDocument) bool {
	changed := false
	for _, tb := range doc.Blocks {
		if !tb.IsContent && tb.Labels.HasAny(f.Labels...) {
			tb.SetIsContent(true)
			changed = true
		}
	}
	return changed
}

// ---------------------------------------------------------------------
// Generic heuristic filters
// ---------------------------------------------------------------------

// SimpleBlockFusionProcessor merges adjacent blocks with equal text density.
type SimpleBlockFusionProcessor struct{}

func (SimpleBlockFusionProcessor) Process(doc *TextDocument) bool {
	blocks := doc.Blocks
	if len(blocks) < 2 {
		return false
	}
	changed := false
	prev := blocks[0]
	var toRemove []*TextBlock
	for _, block := range blocks[1:] {
		if prev.TextDensity() == block.TextDensity() {
			prev.MergeNext(block)
			toRemove = append(toRemove, block)
			changed = true
		} else {
			prev = block
		}
	}
	if changed {
		doc.Blocks = subtractBlocks(blocks, toRemove)
	}
	return changed
}

// ContentFusionFilter repeatedly merges a content block with its immediate
// low-link-density successor until a pass produces no further merges. The
// previous-block pointer resets to the first block at the start of every
// pass (see DESIGN.md's note on the open question this resolves).
type ContentFusionFilter struct{}

func (ContentFusionFilter) Process(doc *TextDocument) bool {
	blocks := doc.Blocks
	if len(blocks) < 2 {
		return false
	}
	changed := false
	changedOnPass := true
	for changedOnPass {
		changedOnPass = false
		prev := blocks[0]
		var toRemove []*TextBlock
		for _, block := range blocks[1:] {
			if prev.IsContent && block.LinkDensity() < 0.56 && !block.HasLabel(LabelStrictlyNotContent) {
				prev.MergeNext(block)
				toRemove = append(toRemove, block)
				changedOnPass = true
				changed = true
			} else {
				prev = block
			}
		}
		blocks = subtractBlocks(blocks, toRemove)
	}
	if changed {
		doc.Blocks = blocks
	}
	return changed
}

// LabelFusion fuses adjacent blocks whose markup-prefixed labels are equal.
type LabelFusion struct {
	LabelPrefix string
}

func NewLabelFusion(labelPrefix string) *LabelFusion {
	return &LabelFusion{LabelPrefix: labelPrefix}
}

func (f *LabelFusion) Process(doc *TextDocument) bool {
	blocks := doc.Blocks
	if len(blocks) < 2 {
		return false
	}
	changed := false
	prev := blocks[0]
	var toRemove []*TextBlock
	for _, block := range blocks[1:] {
		if equalMarkupLabels(prev.Labels, block.Labels) {
			prev.MergeNext(block)
			toRemove = append(toRemove, block)
			changed = true
		} else {
			prev = block
		}
	}
	if changed {
		doc.Blocks = subtractBlocks(blocks, toRemove)
	}
	return changed
}

func equalMarkupLabels(a, b LabelSet) bool {
	return markupLabelsOnly(a).equalSet(markupLabelsOnly(b))
}

func markupLabelsOnly(labels LabelSet) LabelSet {
	out := NewLabelSet()
	for l := range labels {
		if strings.HasPrefix(l, MarkupPrefix) {
			out.Add(l)
		}
	}
	return out
}

func (s LabelSet) equalSet(other LabelSet) bool {
	if len(s) != len(other) {
		return false
	}
	for l := range s {
		if !other.Has(l) {
			return false
		}
	}
	return true
}

// BlockProximityFusion fuses each content block into its predecessor when the
// two lie within MaxBlocksDistance of each other. The predecessor may be a
// non-content block unless ContentOnly is set; SameTagLevelOnly further
// requires matching tag levels.
type BlockProximityFusion struct {
	MaxBlocksDistance int
	ContentOnly       bool
	SameTagLevelOnly  bool
}

func NewBlockProximityFusion(maxBlocksDistance int, contentOnly, sameTagLevelOnly bool) *BlockProximityFusion {
	return &BlockProximityFusion{MaxBlocksDistance: maxBlocksDistance, ContentOnly: contentOnly, SameTagLevelOnly: sameTagLevelOnly}
}

func (f *BlockProximityFusion) Process(doc *TextDocument) bool {
	blocks := doc.Blocks
	if len(blocks) < 2 {
		return false
	}

	startIdx := 0
	if f.ContentOnly {
		found := -1
		for idx, block := range blocks {
			if block.IsContent {
				found = idx
				break
			}
		}
		if found == -1 {
			return false
		}
		startIdx = found
	}

	changed := false
	prev := blocks[startIdx]
	var toRemove []*TextBlock
	for _, block := range blocks[startIdx+1:] {
		if !block.IsContent {
			prev = block
			continue
		}
		diffBlocks := block.OffsetBlocksStart - prev.OffsetBlocksEnd - 1
		if diffBlocks <= f.MaxBlocksDistance {
			ok := true
			if f.ContentOnly && (!prev.IsContent || !block.IsContent) {
				ok = false
			}
			if f.SameTagLevelOnly && prev.TagLevel != block.TagLevel {
				ok = false
			}
			if ok {
				prev.MergeNext(block)
				toRemove = append(toRemove, block)
				changed = true
			} else {
				prev = block
			}
		} else {
			prev = block
		}
	}

	if len(toRemove) > 0 {
		doc.Blocks = subtractBlocks(blocks, toRemove)
		changed = true
	}
	return changed
}

// KeepLargestBlockFilter keeps only the largest content block (by word
// count), demoting the rest and labeling them MightBeContent.
type KeepLargestBlockFilter struct {
	ExpandToSameLevelText bool
}

func NewKeepLargestBlockFilter(expandToSameLevelText bool) *KeepLargestBlockFilter {
	return &KeepLargestBlockFilter{ExpandToSameLevelText: expandToSameLevelText}
}

func (f *KeepLargestBlockFilter) Process(doc *TextDocument) bool {
	blocks := doc.Blocks
	if len(blocks) < 2 {
		return false
	}

	var largest *TextBlock
	for _, tb := range blocks {
		if !tb.IsContent {
			continue
		}
		if largest == nil || tb.NumWords > largest.NumWords {
			largest = tb
		}
	}

	for _, tb := range blocks {
		if tb == largest {
			tb.SetIsContent(true)
		} else {
			tb.SetIsContent(false)
			tb.AddLabel(LabelMightBeContent)
		}
	}

	if f.ExpandToSameLevelText && largest != nil {
		level := largest.TagLevel
		largestIdx := indexOfBlock(blocks, largest)
		for i := largestIdx; i >= 0; i-- {
			if blocks[i].TagLevel < level {
				break
			} else if blocks[i].TagLevel == level {
				blocks[i].SetIsContent(true)
			}
		}
		for i := largestIdx; i < len(blocks); i++ {
			if blocks[i].TagLevel < level {
				break
			} else if blocks[i].TagLevel == level {
				blocks[i].SetIsContent(true)
			}
		}
	}

	return true
}

func indexOfBlock(blocks []*TextBlock, target *TextBlock) int {
	for i, tb := range blocks {
		if tb == target {
			return i
		}
	}
	return -1
}

// ExpandTitleToContentFilter promotes blocks marked MightBeContent that lie
// between the title block and the first content block.
type ExpandTitleToContentFilter struct{}

func (ExpandTitleToContentFilter) Process(doc *TextDocument) bool {
	titleIdx, contentStart := -1, -1
	for i, tb := range doc.Blocks {
		if contentStart == -1 && tb.HasLabel(LabelTitle) {
			titleIdx = i
		}
		if contentStart == -1 && tb.IsContent {
			contentStart = i
		}
	}
	if titleIdx == -1 || contentStart <= titleIdx {
		return false
	}
	changed := false
	for _, tb := range doc.Blocks[titleIdx:contentStart] {
		if tb.HasLabel(LabelMightBeContent) {
			if tb.SetIsContent(true) {
				changed = true
			}
		}
	}
	return changed
}

// articleMetadataPatterns recognizes short date/byline fragments.
var articleMetadataPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^[0-9 ,./]*\b(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec|january|february|march|april|may|june|july|august|september|october|november|december)?\b[0-9 ,:apm./]*(?:[CPSDMGET]{2,3})?$`),
	regexp.MustCompile(`^[Bb]y `),
}

// ArticleMetadataFilter promotes short blocks that look like a byline or
// publication date.
type ArticleMetadataFilter struct{}

func (ArticleMetadataFilter) Process(doc *TextDocument) bool {
	changed := false
	for _, tb := range doc.Blocks {
		if tb.NumWords > 10 {
			continue
		}
		for _, p := range articleMetadataPatterns {
			if p.MatchString(tb.Text) {
				changed = true
				tb.SetIsContent(true)
				tb.AddLabel(LabelArticleMetadata)
				break
			}
		}
	}
	return changed
}

// AddPrecedingLabelsFilter copies each block's labels onto the block
// immediately after it, optionally adding a prefix, so every block also
// carries the labels of the block preceding it.
type AddPrecedingLabelsFilter struct {
	LabelPrefix string
}

func NewAddPrecedingLabelsFilter(labelPrefix string) *AddPrecedingLabelsFilter {
	return &AddPrecedingLabelsFilter{LabelPrefix: labelPrefix}
}

func (f *AddPrecedingLabelsFilter) Process(doc *TextDocument) bool {
	blocks := doc.Blocks
	if len(blocks) < 2 {
		return false
	}
	changed := false
	var blockBelow *TextBlock
	for i := len(blocks) - 1; i >= 0; i-- {
		block := blocks[i]
		if blockBelow != nil && len(block.Labels) > 0 {
			for l := range block.Labels {
				blockBelow.AddLabel(f.LabelPrefix + l)
			}
			changed = true
		}
		blockBelow = block
	}
	return changed
}

// titleSplitPatterns are tried in order, from the least permissive
// separator set to the most, to find the longest meaningful fragment of
// the document's title.
var titleSplitPatterns = []*regexp.Regexp{
	regexp.MustCompile(`[ ]*[|:][ ]*`),
	regexp.MustCompile(`[ ]*[|:()][ ]*`),
	regexp.MustCompile(`[ ]*[|:()-][ ]*`),
	regexp.MustCompile(`[ ]*[|,:()-][ ]*`),
}

var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// DocumentTitleMatchClassifier labels blocks whose text matches (a
// fragment of) a reference title.
type DocumentTitleMatchClassifier struct {
	UseDocTitle     bool
	potentialTitles map[string]struct{}
}

// NewDocumentTitleMatchClassifier builds a classifier against a fixed
// title string.
func NewDocumentTitleMatchClassifier(title string) *DocumentTitleMatchClassifier {
	return &DocumentTitleMatchClassifier{potentialTitles: findPotentialTitles(title)}
}

// NewDocumentTitleMatchClassifierFromDocTitle builds a classifier that
// re-derives its potential titles from the document's own Title field on
// every Process call.
func NewDocumentTitleMatchClassifierFromDocTitle() *DocumentTitleMatchClassifier {
	return &DocumentTitleMatchClassifier{UseDocTitle: true}
}

func findPotentialTitles(title string) map[string]struct{} {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil
	}
	potential := map[string]struct{}{title: {}}
	for _, pattern := range titleSplitPatterns {
		if p := longestPart(title, pattern); p != "" {
			potential[p] = struct{}{}
		}
	}
	return potential
}

func longestPart(title string, pattern *regexp.Regexp) string {
	parts := pattern.Split(title, -1)
	if len(parts) == 1 {
		return ""
	}
	longestNumWords := 0
	longest := ""
	for _, p := range parts {
		if strings.Contains(p, ".com") {
			continue
		}
		numWords := len(wordPattern.FindAllString(p, -1))
		if numWords > longestNumWords || len(p) > len(longest) {
			longestNumWords = numWords
			longest = p
		}
	}
	return strings.TrimSpace(longest)
}

func (f *DocumentTitleMatchClassifier) Process(doc *TextDocument) bool {
	if f.UseDocTitle {
		f.potentialTitles = findPotentialTitles(doc.Title)
	}
	if f.potentialTitles == nil {
		return false
	}
	changed := false
	for _, tb := range doc.Blocks {
		text := strings.ToLower(strings.TrimSpace(tb.Text))
		for candidate := range f.potentialTitles {
			if strings.ToLower(candidate) == text {
				tb.AddLabel(LabelTitle)
				changed = true
				break
			}
		}
	}
	return changed
}

// ---------------------------------------------------------------------
// English-trained heuristic filters
// ---------------------------------------------------------------------

// numFullTextWords returns tb's word count if its text density meets
// minTextDensity, else 0. Every caller in this package passes 9.
func numFullTextWords(tb *TextBlock, minTextDensity float64) int {
	if tb.TextDensity() >= minTextDensity {
		return tb.NumWords
	}
	return 0
}

// MinFulltextWordsFilter keeps only content blocks with at least MinWords
// full-text words (NumWords gated by a text-density threshold).
type MinFulltextWordsFilter struct {
	MinWords int
}

func NewMinFulltextWordsFilter(minWords int) *MinFulltextWordsFilter {
	return &MinFulltextWordsFilter{MinWords: minWords}
}

func (f *MinFulltextWordsFilter) Process(doc *TextDocument) bool {
	changed := false
	for _, tb := range doc.Blocks {
		if tb.IsContent && numFullTextWords(tb, 9) < f.MinWords {
			tb.SetIsContent(false)
			changed = true
		}
	}
	return changed
}

// KeepLargestFulltextBlockFilter keeps only the content block with the
// most full-text words (see numFullTextWords), demoting the rest.
type KeepLargestFulltextBlockFilter struct{}

func (KeepLargestFulltextBlockFilter) Process(doc *TextDocument) bool {
	blocks := doc.Blocks
	if len(blocks) < 2 {
		return false
	}
	var largest *TextBlock
	largestWords := -1
	for _, tb := range blocks {
		if !tb.IsContent {
			continue
		}
		if w := numFullTextWords(tb, 9); w > largestWords {
			largestWords = w
			largest = tb
		}
	}
	if largest == nil {
		return false
	}
	for _, tb := range blocks {
		if tb == largest {
			tb.SetIsContent(true)
		} else {
			tb.SetIsContent(false)
			tb.AddLabel(LabelMightBeContent)
		}
	}
	return true
}

// IgnoreBlocksAfterContentFilter demotes every block once accumulated
// full-text word count reaches MinNumWords at an IndicatesEndOfText marker.
type IgnoreBlocksAfterContentFilter struct {
	MinNumWords int
}

func NewIgnoreBlocksAfterContentFilter(minNumWords int) *IgnoreBlocksAfterContentFilter {
	return &IgnoreBlocksAfterContentFilter{MinNumWords: minNumWords}
}

func (f *IgnoreBlocksAfterContentFilter) Process(doc *TextDocument) bool {
	changed := false
	numWords := 0
	foundEnd := false
	for _, block := range doc.Blocks {
		if block.IsContent {
			numWords += numFullTextWords(block, 9)
		}
		if block.HasLabel(LabelIndicatesEndOfText) && numWords >= f.MinNumWords {
			foundEnd = true
		}
		if foundEnd {
			changed = true
			block.SetIsContent(false)
		}
	}
	return changed
}

// IgnoreBlocksAfterContentFromEndFilter walks from the end of the
// document, demoting and flagging end-of-text markers as strictly not
// content, and stops scanning once 200 content words have been seen.
type IgnoreBlocksAfterContentFromEndFilter struct{}

func (IgnoreBlocksAfterContentFromEndFilter) Process(doc *TextDocument) bool {
	blocks := doc.Blocks
	if len(blocks) == 0 {
		return false
	}
	changed := false
	words := 0
	for i := len(blocks) - 1; i >= 0; i-- {
		tb := blocks[i]
		if tb.HasLabel(LabelIndicatesEndOfText) {
			tb.AddLabel(LabelStrictlyNotContent)
			tb.RemoveLabel(LabelMightBeContent)
			tb.SetIsContent(false)
			changed = true
		} else if tb.IsContent {
			words += tb.NumWords
			if words >= 200 {
				break
			}
		}
	}
	return changed
}

var (
	terminatingStartMatches = []string{" reuters", "please rate this", "post a comment"}
	terminatingInMatches    = []string{"what you think...", "add your comment", "add comment", "reader views", "have your say", "reader comments", "rtta artikeln"}
	terminatingEqMatch      = "thanks for your comments - this feedback is now closed"
	nonDigitPattern         = regexp.MustCompile(`\D`)
)

// TerminatingBlocksFinder labels blocks that look like the start of a
// comments section or other end-of-article marker.
type TerminatingBlocksFinder struct{}

func (TerminatingBlocksFinder) Process(doc *TextDocument) bool {
	changed := false
	for _, tb := range doc.Blocks {
		if tb.NumWords >= 15 {
			continue
		}
		text := strings.TrimSpace(tb.Text)
		if len(text) < 8 {
			continue
		}
		textLC := strings.ToLower(text)

		matches := strings.HasPrefix(textLC, "comments") ||
			startsWithNumberThen(textLC, " comments", " users responded in") ||
			hasAnyPrefix(textLC, terminatingStartMatches) ||
			containsAny(textLC, terminatingInMatches) ||
			textLC == terminatingEqMatch

		if matches {
			tb.AddLabel(LabelIndicatesEndOfText)
			changed = true
		}
	}
	return changed
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

func containsAny(s string, substrs []string) bool {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// startsWithNumberThen reports whether text starts with a run of digits
// immediately followed by one of matchStrs.
func startsWithNumberThen(text string, matchStrs ...string) bool {
	loc := nonDigitPattern.FindStringIndex(text)
	var pos int
	if loc == nil {
		pos = len(text)
	} else {
		pos = loc[0]
	}
	if pos == 0 {
		return false
	}
	for _, m := range matchStrs {
		if strings.HasPrefix(text[pos:], m) {
			return true
		}
	}
	return false
}

// NumWordsRulesClassifier is a decision-tree classifier trained on block
// word counts and link densities (C4.8, Boilerplate Detection using
// Shallow Text Features, WSDM 2010).
type NumWordsRulesClassifier struct{}

func (NumWordsRulesClassifier) Process(doc *TextDocument) bool {
	return classifyWithNeighbors(doc, classifyNumWordsRules)
}

func classifyNumWordsRules(prev, curr, next *TextBlock) bool {
	var isContent bool
	if curr.LinkDensity() <= 0.333333 {
		if prev.LinkDensity() <= 0.555556 {
			if curr.NumWords <= 16 {
				if next.NumWords <= 15 {
					isContent = prev.NumWords > 4
				} else {
					isContent = true
				}
			} else {
				isContent = true
			}
		} else {
			if curr.NumWords <= 40 {
				isContent = next.NumWords > 17
			} else {
				isContent = true
			}
		}
	} else {
		isContent = false
	}
	return curr.SetIsContent(isContent)
}

// DensityRulesClassifier is a decision-tree classifier trained on block
// text densities and link densities (C4.8).
type DensityRulesClassifier struct{}

func (DensityRulesClassifier) Process(doc *TextDocument) bool {
	return classifyWithNeighbors(doc, classifyDensityRules)
}

func classifyDensityRules(prev, curr, next *TextBlock) bool {
	var isContent bool
	if curr.LinkDensity() <= 0.333333 {
		if prev.LinkDensity() <= 0.555556 {
			if curr.TextDensity() <= 9 {
				if next.TextDensity() <= 10 {
					isContent = prev.TextDensity() > 4
				} else {
					isContent = true
				}
			} else {
				isContent = next.TextDensity() != 0
			}
		} else {
			isContent = next.TextDensity() > 11
		}
	} else {
		isContent = false
	}
	return curr.SetIsContent(isContent)
}

// CanolaFilter is a full-text extractor trained on the krdwrd Canola
// corpus.
type CanolaFilter struct{}

func (CanolaFilter) Process(doc *TextDocument) bool {
	return classifyWithNeighbors(doc, classifyCanola)
}

func classifyCanola(prev, curr, next *TextBlock) bool {
	cond1 := curr.LinkDensity() > 0 && next.NumWords > 11
	cond2 := curr.NumWords > 19
	cond3 := next.NumWords > 6 && next.LinkDensity() == 0 && prev.LinkDensity() == 0 &&
		(curr.NumWords > 6 || prev.NumWords > 7 || next.NumWords > 19)
	return curr.SetIsContent(cond1 || cond2 || cond3)
}

// classifyWithNeighbors runs classify over every block in doc, supplying
// EmptyStart/EmptyEnd sentinels at the document boundaries.
func classifyWithNeighbors(doc *TextDocument, classify func(prev, curr, next *TextBlock) bool) bool {
	blocks := doc.Blocks
	n := len(blocks)
	changed := false
	for i, curr := range blocks {
		var prev, next *TextBlock
		if i > 0 {
			prev = blocks[i-1]
		} else {
			prev = EmptyStart()
		}
		if i+1 < n {
			next = blocks[i+1]
		} else {
			next = EmptyEnd()
		}
		if classify(prev, curr, next) {
			changed = true
		}
	}
	return changed
}

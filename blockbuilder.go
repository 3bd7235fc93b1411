package boilerpy

import (
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"
	"unicode/utf8"
)

// anchorTextStart and anchorTextEnd are sentinel tokens inserted into the
// token buffer around anchor text. They begin with a Unicode private-use
// codepoint so they cannot collide with real words, and carry the rest of
// the sentinel as plain ASCII so the word-token regex below picks each one
// up as a single token.
const (
	anchorTextStart = "\uE00Astart"
	anchorTextEnd   = "\uE00Aend"
)

// wordTokenPattern tokenizes the accumulated token buffer: an optional
// anchor sentinel marker followed by one or more "word-ish" characters
// (Unicode letters/digits, underscore, or a small set of punctuation that
// should not itself split a token).
var wordTokenPattern = regexp.MustCompile(`\x{E00A}?[\p{L}\p{N}_"'.,!@:;$?()/-]+`)

// validWordCharacter matches a single Unicode letter or digit (not
// underscore), used to decide whether a token counts as a word.
var validWordCharacter = regexp.MustCompile(`[\p{L}\p{N}]`)

// wrapWidth is the simulated terminal width used to estimate how many
// visual lines a block's words would wrap to.
const wrapWidth = 80

// BlockBuilder consumes a stream of HTML tokenizer events and assembles
// TextBlocks, tracking nesting depth, anchors, ignorable regions, inline
// font size, and per-scope label actions along the way.
type BlockBuilder struct {
	tagActions TagActionMap
	logger     *slog.Logger

	inBody              int
	inAnchor            int
	inIgnorableElement  int

	tagLevel      int
	blockTagLevel int

	textElementIdx int
	lastStartTag   string
	lastEndTag     string

	offsetBlocks                 int
	currentContainedTextElements map[int]struct{}

	pendingFlush bool
	inAnchorText bool

	title         string
	titleCaptured bool

	blocks []*TextBlock

	labelStacks   [][]labelApplier
	fontSizeStack []*int

	textBuffer  strings.Builder
	tokenBuffer strings.Builder
}

// BlockBuilderOption configures a BlockBuilder at construction time.
type BlockBuilderOption func(*BlockBuilder)

// WithTagActions overrides the default tag-action table.
func WithTagActions(actions TagActionMap) BlockBuilderOption {
	return func(b *BlockBuilder) { b.tagActions = actions }
}

// WithLogger overrides the builder's logger. The default discards output.
func WithLogger(logger *slog.Logger) BlockBuilderOption {
	return func(b *BlockBuilder) { b.logger = logger }
}

// NewBlockBuilder builds a BlockBuilder ready to consume events.
func NewBlockBuilder(opts ...BlockBuilderOption) *BlockBuilder {
	b := &BlockBuilder{
		tagActions:                   NewDefaultTagActionMap(),
		logger:                       slog.New(slog.NewTextHandler(io.Discard, nil)),
		blockTagLevel:                -1,
		currentContainedTextElements: map[int]struct{}{},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Recycle resets the builder to its initial state (other than its
// configured tag-action table and logger) so it can parse a new document.
func (b *BlockBuilder) Recycle() {
	tagActions, logger := b.tagActions, b.logger
	*b = BlockBuilder{
		tagActions:                   tagActions,
		logger:                       logger,
		blockTagLevel:                -1,
		currentContainedTextElements: map[int]struct{}{},
	}
}

func (b *BlockBuilder) logf(format string, args ...any) {
	b.logger.Warn(fmt.Sprintf(format, args...))
}

// StartTag processes a start-tag event for an element with the given
// (case-preserved) tag name and attributes.
func (b *BlockBuilder) StartTag(name string, attrs map[string]string) {
	b.labelStacks = append(b.labelStacks, nil)

	action, ok := b.tagActions[strings.ToUpper(strings.TrimSpace(name))]
	if ok {
		if action.Start(b, name, attrs) {
			b.pendingFlush = true
		}
		if action.ChangesTagLevel() {
			b.tagLevel++
		}
	} else {
		b.tagLevel++
		b.pendingFlush = true
	}
	b.lastStartTag = name
}

// EndTag processes an end-tag event for the given (case-preserved) tag
// name.
func (b *BlockBuilder) EndTag(name string) {
	action, ok := b.tagActions[strings.ToUpper(strings.TrimSpace(name))]
	if ok {
		if action.End(b, name) {
			b.pendingFlush = true
		}
		if action.ChangesTagLevel() {
			b.tagLevel--
		}
	} else {
		b.pendingFlush = true
		b.tagLevel--
	}
	if b.pendingFlush {
		b.FlushBlock()
	}
	b.lastEndTag = name
	if len(b.labelStacks) > 0 {
		b.labelStacks = b.labelStacks[:len(b.labelStacks)-1]
	}
}

// Characters processes a run of character data (text node).
func (b *BlockBuilder) Characters(text string) {
	b.textElementIdx++
	if b.pendingFlush {
		b.FlushBlock()
		b.pendingFlush = false
	}
	if b.inIgnorableElement > 0 {
		return
	}
	if len(text) == 0 {
		return
	}
	if strings.TrimSpace(text) == "" {
		b.ensureWhitespace()
		return
	}
	if isSpaceRune(firstRune(text)) {
		b.ensureWhitespace()
	}
	if b.blockTagLevel == -1 {
		b.blockTagLevel = b.tagLevel
	}
	stripped := strings.TrimSpace(text)
	b.textBuffer.WriteString(stripped)
	b.tokenBuffer.WriteString(stripped)
	if isSpaceRune(lastRune(text)) {
		b.ensureWhitespace()
	}
	b.currentContainedTextElements[b.textElementIdx] = struct{}{}
}

// IgnorableWhitespace processes a whitespace-only run reported separately
// from Characters (SAX-style parsers sometimes split the two).
func (b *BlockBuilder) IgnorableWhitespace(string) {
	b.ensureWhitespace()
}

// EndDocument flushes any pending block and returns the finished
// TextDocument.
func (b *BlockBuilder) EndDocument() *TextDocument {
	b.FlushBlock()
	return NewTextDocument(b.blocks, b.title)
}

func (b *BlockBuilder) ensureWhitespace() {
	if s := b.textBuffer.String(); s != "" && !isSpaceRune(lastRune(s)) {
		b.textBuffer.WriteByte(' ')
	}
	if s := b.tokenBuffer.String(); s != "" && !isSpaceRune(lastRune(s)) {
		b.tokenBuffer.WriteByte(' ')
	}
}

func (b *BlockBuilder) addToken(token string) {
	b.ensureWhitespace()
	b.tokenBuffer.WriteString(token)
	b.ensureWhitespace()
}

func (b *BlockBuilder) addLabelAction(la labelApplier) {
	if len(b.labelStacks) == 0 {
		b.labelStacks = append(b.labelStacks, nil)
	}
	last := len(b.labelStacks) - 1
	b.labelStacks[last] = append(b.labelStacks[last], la)
}

func (b *BlockBuilder) setTitle(title string) {
	if !b.titleCaptured && title != "" {
		b.title = title
		b.titleCaptured = true
	}
}

// FlushBlock finalizes the pending text/token buffers into a TextBlock (or
// captures a <title>'s text), then clears the buffers for the next run.
func (b *BlockBuilder) FlushBlock() {
	if b.inBody == 0 {
		if strings.EqualFold(b.lastStartTag, "title") {
			b.setTitle(strings.TrimSpace(b.textBuffer.String()))
		}
		b.clearBuffers()
		return
	}

	if strings.TrimSpace(b.tokenBuffer.String()) == "" {
		b.clearBuffers()
		return
	}

	tokens := wordTokenPattern.FindAllString(b.tokenBuffer.String(), -1)

	var numWords, numLinkedWords, numTokens, numWordsCurrentLine, numWrappedLines int
	currentLineLength := -1 // don't count the first space

	for _, tok := range tokens {
		switch {
		case tok == anchorTextStart:
			b.inAnchorText = true
		case tok == anchorTextEnd:
			b.inAnchorText = false
		case validWordCharacter.MatchString(tok):
			numTokens++
			numWords++
			numWordsCurrentLine++
			if b.inAnchorText {
				numLinkedWords++
			}
			currentLineLength += utf8.RuneCountInString(tok) + 1
			if currentLineLength > wrapWidth {
				numWrappedLines++
				currentLineLength = utf8.RuneCountInString(tok)
				numWordsCurrentLine = 1
			}
		default:
			numTokens++
		}
	}

	if numTokens == 0 {
		b.clearBuffers()
		return
	}

	var numWordsInWrappedLines int
	if numWrappedLines == 0 {
		numWordsInWrappedLines = numWords
		numWrappedLines = 1
	} else {
		numWordsInWrappedLines = numWords - numWordsCurrentLine
	}

	text := strings.TrimSpace(b.textBuffer.String())
	tb := NewTextBlock(text, b.currentContainedTextElements, numWords, numLinkedWords, numWordsInWrappedLines, numWrappedLines, b.offsetBlocks)
	b.currentContainedTextElements = map[int]struct{}{}
	b.offsetBlocks++
	b.clearBuffers()

	tb.TagLevel = b.blockTagLevel
	b.addTextBlock(tb)
	b.blockTagLevel = -1
}

func (b *BlockBuilder) addTextBlock(tb *TextBlock) {
	for i := len(b.fontSizeStack) - 1; i >= 0; i-- {
		if b.fontSizeStack[i] != nil {
			tb.AddLabel(fontSizeLabel(*b.fontSizeStack[i]))
			break
		}
	}
	for i := len(b.labelStacks) - 1; i >= 0; i-- {
		for _, la := range b.labelStacks[i] {
			la.AddTo(tb)
		}
	}
	b.blocks = append(b.blocks, tb)
}

func (b *BlockBuilder) clearBuffers() {
	b.textBuffer.Reset()
	b.tokenBuffer.Reset()
}

func fontSizeLabel(size int) string {
	return "font-" + itoa(size)
}

func itoa(n int) string {
	neg := n < 0
	if neg {
		n = -n
	}
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

func firstRune(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	return r
}

func lastRune(s string) rune {
	r, _ := utf8.DecodeLastRuneInString(s)
	return r
}

func isSpaceRune(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	default:
		return false
	}
}

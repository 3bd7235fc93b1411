package boilerpy

import (
	"regexp"
	"strconv"
	"strings"
)

// TagAction describes what a start/end tag does to a BlockBuilder's state.
// Start and End return whether the pending block must be flushed.
type TagAction interface {
	Start(b *BlockBuilder, tagName string, attrs map[string]string) bool
	End(b *BlockBuilder, tagName string) bool
	ChangesTagLevel() bool
}

// TagActionMap looks up a TagAction by upper-cased tag name. Unknown tags
// default to block-level handling (see BlockBuilder.StartTag/EndTag).
type TagActionMap map[string]TagAction

// ignorableElementTagAction marks a tag (and its descendants) as ignorable:
// all character data inside is silently dropped.
type ignorableElementTagAction struct{}

func (ignorableElementTagAction) Start(b *BlockBuilder, _ string, _ map[string]string) bool {
	b.inIgnorableElement++
	return true
}
func (ignorableElementTagAction) End(b *BlockBuilder, _ string) bool {
	b.inIgnorableElement--
	return true
}
func (ignorableElementTagAction) ChangesTagLevel() bool { return true }

// anchorTextTagAction marks the <a> tag: it may not be nested. A nested
// open is treated as an implicit close of the outer anchor (with a warning
// logged), matching spec.md's malformed-input handling.
type anchorTextTagAction struct{}

func (anchorTextTagAction) Start(b *BlockBuilder, tagName string, _ map[string]string) bool {
	b.inAnchor++
	if b.inAnchor > 1 {
		b.logf("nested <a> elements encountered (tag level %d); recovering by implicitly closing the outer anchor", b.tagLevel)
		anchorTextTagActionSingleton.End(b, tagName)
	}
	if b.inIgnorableElement == 0 {
		b.addToken(anchorTextStart)
	}
	return false
}
func (anchorTextTagAction) End(b *BlockBuilder, _ string) bool {
	b.inAnchor--
	if b.inAnchor < 0 {
		b.inAnchor = 0
	}
	if b.inAnchor == 0 && b.inIgnorableElement == 0 {
		b.addToken(anchorTextEnd)
	}
	return false
}
func (anchorTextTagAction) ChangesTagLevel() bool { return true }

var anchorTextTagActionSingleton = anchorTextTagAction{}

// bodyTagAction marks the <body> tag.
type bodyTagAction struct{}

func (bodyTagAction) Start(b *BlockBuilder, _ string, _ map[string]string) bool {
	b.FlushBlock()
	b.inBody++
	return false
}
func (bodyTagAction) End(b *BlockBuilder, _ string) bool {
	b.FlushBlock()
	b.inBody--
	return false
}
func (bodyTagAction) ChangesTagLevel() bool { return true }

// inlineWhitespaceTagAction generates whitespace but no new block.
type inlineWhitespaceTagAction struct{}

func (inlineWhitespaceTagAction) Start(b *BlockBuilder, _ string, _ map[string]string) bool {
	b.ensureWhitespace()
	return false
}
func (inlineWhitespaceTagAction) End(b *BlockBuilder, _ string) bool {
	b.ensureWhitespace()
	return false
}
func (inlineWhitespaceTagAction) ChangesTagLevel() bool { return false }

// inlineNoWhitespaceTagAction neither generates whitespace nor a new block.
type inlineNoWhitespaceTagAction struct{}

func (inlineNoWhitespaceTagAction) Start(*BlockBuilder, string, map[string]string) bool { return false }
func (inlineNoWhitespaceTagAction) End(*BlockBuilder, string) bool                      { return false }
func (inlineNoWhitespaceTagAction) ChangesTagLevel() bool                               { return false }

// blockLevelTagAction always forces a flush and always changes tag level.
type blockLevelTagAction struct{}

func (blockLevelTagAction) Start(*BlockBuilder, string, map[string]string) bool { return true }
func (blockLevelTagAction) End(*BlockBuilder, string) bool                     { return true }
func (blockLevelTagAction) ChangesTagLevel() bool                              { return true }

// fontSizePattern matches an optional sign followed by one or more digits.
var fontSizePattern = regexp.MustCompile(`^([+-]?)([0-9]+)`)

// fontTagAction tracks absolute and relative <font size=...> values on a
// per-BlockBuilder stack.
type fontTagAction struct{}

func (fontTagAction) Start(b *BlockBuilder, _ string, attrs map[string]string) bool {
	var size *int
	if sizeAttr, ok := attrs["size"]; ok {
		if m := fontSizePattern.FindStringSubmatch(sizeAttr); m != nil {
			sign, digits := m[1], m[2]
			val, err := strconv.Atoi(digits)
			if err == nil {
				if sign == "" {
					size = &val
				} else {
					prev := 3
					for i := len(b.fontSizeStack) - 1; i >= 0; i-- {
						if b.fontSizeStack[i] != nil {
							prev = *b.fontSizeStack[i]
							break
						}
					}
					computed := prev + val
					if sign == "-" {
						computed = prev - val
					}
					size = &computed
				}
			}
		}
	}
	b.fontSizeStack = append(b.fontSizeStack, size)
	return false
}
func (fontTagAction) End(b *BlockBuilder, _ string) bool {
	if len(b.fontSizeStack) > 0 {
		b.fontSizeStack = b.fontSizeStack[:len(b.fontSizeStack)-1]
	}
	return false
}
func (fontTagAction) ChangesTagLevel() bool { return false }

// inlineTagLabelAction wraps inline-whitespace behavior with a LabelAction
// pushed onto the current frame.
type inlineTagLabelAction struct {
	action labelApplier
}

func (a inlineTagLabelAction) Start(b *BlockBuilder, _ string, _ map[string]string) bool {
	b.ensureWhitespace()
	b.addLabelAction(a.action)
	return false
}
func (inlineTagLabelAction) End(b *BlockBuilder, _ string) bool {
	b.ensureWhitespace()
	return false
}
func (inlineTagLabelAction) ChangesTagLevel() bool { return false }

// blockTagLabelAction wraps block-level behavior with a LabelAction pushed
// onto the current frame.
type blockTagLabelAction struct {
	action labelApplier
}

func (a blockTagLabelAction) Start(b *BlockBuilder, _ string, _ map[string]string) bool {
	b.addLabelAction(a.action)
	return true
}
func (blockTagLabelAction) End(*BlockBuilder, string) bool { return true }
func (blockTagLabelAction) ChangesTagLevel() bool          { return true }

// chainedTagAction composes two TagActions: their Start/End effects are
// ORed, and ChangesTagLevel is ORed.
type chainedTagAction struct {
	a, b TagAction
}

// Chain composes two TagActions into one.
func Chain(a, b TagAction) TagAction {
	return chainedTagAction{a: a, b: b}
}

func (c chainedTagAction) Start(b *BlockBuilder, tagName string, attrs map[string]string) bool {
	r1 := c.a.Start(b, tagName, attrs)
	r2 := c.b.Start(b, tagName, attrs)
	return r1 || r2
}
func (c chainedTagAction) End(b *BlockBuilder, tagName string) bool {
	r1 := c.a.End(b, tagName)
	r2 := c.b.End(b, tagName)
	return r1 || r2
}
func (c chainedTagAction) ChangesTagLevel() bool {
	return c.a.ChangesTagLevel() || c.b.ChangesTagLevel()
}

// digitRunPattern collapses runs of digits to a single '#', used to
// normalize CSS classes/ids the way numbered/generated identifiers
// (list-item-3, tab-42) would otherwise explode the label vocabulary.
var digitRunPattern = regexp.MustCompile(`[0-9]+`)

// markupTagAction derives MARKUP-prefixed labels from a tag's name, CSS
// classes, and id, expands them with ancestor labels, and pushes them onto
// the current label-stack frame. It carries its own per-instance ancestor
// label stack, so a fresh markupTagAction must be constructed per
// BlockBuilder (it is not a stateless singleton like the other actions).
type markupTagAction struct {
	isBlockLevel bool
	labelStack   [][]string
}

// NewMarkupTagAction builds a markup TagAction. isBlockLevel controls
// whether the tag forces a flush and changes tag level.
func NewMarkupTagAction(isBlockLevel bool) TagAction {
	return &markupTagAction{isBlockLevel: isBlockLevel}
}

func (a *markupTagAction) Start(b *BlockBuilder, tagName string, attrs map[string]string) bool {
	var labels []string
	labels = append(labels, MarkupPrefix+tagName)

	if classVal, ok := attrs["class"]; ok && classVal != "" {
		classVal = strings.TrimSpace(digitRunPattern.ReplaceAllString(classVal, "#"))
		vals := strings.Fields(classVal)
		labels = append(labels, MarkupPrefix+"."+strings.Join(strings.Fields(classVal), "."))
		if len(vals) > 1 {
			for _, v := range vals {
				labels = append(labels, MarkupPrefix+"."+v)
			}
		}
	}

	if id, ok := attrs["id"]; ok && len(id) > 0 {
		id = digitRunPattern.ReplaceAllString(id, "#")
		labels = append(labels, MarkupPrefix+"#"+id)
	}

	ancestors := a.ancestorLabels()
	var withAncestors []string
	for _, l := range labels {
		for _, an := range ancestors {
			withAncestors = append(withAncestors, an)
			withAncestors = append(withAncestors, an+" "+l)
		}
		withAncestors = append(withAncestors, l)
	}
	b.addLabelAction(NewLabelAction(withAncestors...))
	a.labelStack = append(a.labelStack, labels)
	return a.isBlockLevel
}

func (a *markupTagAction) End(*BlockBuilder, string) bool {
	if len(a.labelStack) > 0 {
		a.labelStack = a.labelStack[:len(a.labelStack)-1]
	}
	return a.isBlockLevel
}

func (a *markupTagAction) ChangesTagLevel() bool { return a.isBlockLevel }

func (a *markupTagAction) ancestorLabels() []string {
	seen := map[string]struct{}{}
	var out []string
	for _, labels := range a.labelStack {
		for _, l := range labels {
			if _, ok := seen[l]; !ok {
				seen[l] = struct{}{}
				out = append(out, l)
			}
		}
	}
	return out
}

// Shared stateless TagAction singletons, analogous to the original's
// CommonTagActions.
var (
	TagIgnorable          TagAction = ignorableElementTagAction{}
	TagAnchor             TagAction = anchorTextTagAction{}
	TagBody               TagAction = bodyTagAction{}
	TagInlineWhitespace   TagAction = inlineWhitespaceTagAction{}
	TagInlineNoWhitespace TagAction = inlineNoWhitespaceTagAction{}
	TagBlockLevel         TagAction = blockLevelTagAction{}
	TagFont               TagAction = fontTagAction{}
)

// NewDefaultTagActionMap builds the default case-insensitive tag→action
// table used by BlockBuilder when the caller does not supply its own.
func NewDefaultTagActionMap() TagActionMap {
	return TagActionMap{
		"STYLE":    TagIgnorable,
		"SCRIPT":   TagIgnorable,
		"OPTION":   TagIgnorable,
		"OBJECT":   TagIgnorable,
		"EMBED":    TagIgnorable,
		"APPLET":   TagIgnorable,
		"NOSCRIPT": TagIgnorable,
		"A":        TagAnchor,
		"BODY":     TagBody,
		"STRIKE":   TagInlineNoWhitespace,
		"U":        TagInlineNoWhitespace,
		"B":        TagInlineNoWhitespace,
		"I":        TagInlineNoWhitespace,
		"EM":       TagInlineNoWhitespace,
		"STRONG":   TagInlineNoWhitespace,
		"SPAN":     TagInlineNoWhitespace,
		"SUP":      TagInlineNoWhitespace,
		"CODE":     TagInlineNoWhitespace,
		"TT":       TagInlineNoWhitespace,
		"SUB":      TagInlineNoWhitespace,
		"VAR":      TagInlineNoWhitespace,
		"ABBR":     TagInlineWhitespace,
		"ACRONYM":  TagInlineWhitespace,
		"FONT":     TagInlineNoWhitespace,
	}
}

package boilerpy

import (
	"bytes"
	"io"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// scriptBlankPattern strips the contents of <script>...</script> elements,
// used as a fallback when the tokenizer fails outright: some malformed
// inline scripts confuse even a lenient HTML5 tokenizer's text state.
var scriptBlankPattern = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)

// ParseString parses an HTML document held in a string into a TextDocument.
func ParseString(s string, opts ...BlockBuilderOption) (*TextDocument, error) {
	return ParseReader(strings.NewReader(s), opts...)
}

// ParseReader parses an HTML document from r into a TextDocument, using a
// BlockBuilder configured by opts to assemble blocks from the tokenizer's
// event stream.
//
// If the tokenizer reports a hard error, ParseReader retries exactly once
// with every <script> element's content blanked out, then gives up and
// returns a *ParseError.
func ParseReader(r io.Reader, opts ...BlockBuilderOption) (*TextDocument, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, &ParseError{Err: err}
	}

	b := NewBlockBuilder(opts...)
	doc, tokErr := tokenizeInto(b, raw)
	if tokErr != nil {
		b.Recycle()
		blanked := scriptBlankPattern.ReplaceAll(raw, []byte("<script></script>"))
		doc, tokErr = tokenizeInto(b, blanked)
		if tokErr != nil {
			return nil, &ParseError{Err: tokErr}
		}
	}

	if doc == nil || len(doc.Blocks) == 0 {
		return doc, ErrEmptyDocument
	}
	return doc, nil
}

func tokenizeInto(b *BlockBuilder, content []byte) (*TextDocument, error) {
	z := html.NewTokenizer(bytes.NewReader(content))
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return nil, err
			}
			return b.EndDocument(), nil
		case html.TextToken:
			b.Characters(string(z.Text()))
		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := z.TagName()
			attrs := map[string]string{}
			for hasAttr {
				var key, val []byte
				key, val, hasAttr = z.TagAttr()
				attrs[string(key)] = string(val)
			}
			tagName := string(name)
			b.StartTag(tagName, attrs)
			if tt == html.SelfClosingTagToken {
				b.EndTag(tagName)
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			b.EndTag(string(name))
		case html.DoctypeToken, html.CommentToken:
			// ignored
		}
	}
}

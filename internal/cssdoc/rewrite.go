package cssdoc

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"

	"github.com/x0aa7i/typescaler/internal/typescale"
)

// span is the byte range of one top-level @typescale rule, block included.
type span struct {
	start int
	end   int
}

// ruleSpans locates every top-level @typescale rule in the document.
func ruleSpans(src []byte) []span {
	var spans []span
	var (
		offset     int
		depth      int
		inRule     bool
		ruleStart  int
		blockDepth int
	)

	l := css.NewLexer(parse.NewInputBytes(src))
	for {
		tt, text := l.Next()
		if tt == css.ErrorToken {
			return spans
		}
		switch tt {
		case css.AtKeywordToken:
			if !inRule && depth == 0 && string(text) == AtRuleName {
				inRule = true
				ruleStart = offset
				blockDepth = 0
			}
		case css.LeftBraceToken:
			depth++
			if inRule {
				blockDepth++
			}
		case css.RightBraceToken:
			depth--
			if inRule {
				blockDepth--
				if blockDepth == 0 {
					spans = append(spans, span{start: ruleStart, end: offset + len(text)})
					inRule = false
				}
			}
		case css.SemicolonToken:
			// A block-less rule like "@typescale;".
			if inRule && blockDepth == 0 {
				spans = append(spans, span{start: ruleStart, end: offset + len(text)})
				inRule = false
			}
		}
		offset += len(text)
	}
}

// Rewrite returns the document with its first @typescale rule replaced by a
// :root block of the generated custom properties and any further
// @typescale rules removed. A document without the rule comes back
// unchanged.
func Rewrite(src []byte, out typescale.OutputMap) []byte {
	spans := ruleSpans(src)
	if len(spans) == 0 {
		return src
	}

	var b bytes.Buffer
	prev := 0
	for i, sp := range spans {
		b.Write(src[prev:sp.start])
		if i == 0 {
			b.WriteString(RootBlock(out))
		}
		prev = sp.end
	}
	b.Write(src[prev:])
	return b.Bytes()
}

// RootBlock renders the generated entries as a :root rule, one custom
// property per declaration, in step-name order. The size declaration keeps
// whatever pixel comment the generator produced.
func RootBlock(out typescale.OutputMap) string {
	names := make([]string, 0, len(out))
	for name := range out {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, name := range names {
		e := out[name]
		fmt.Fprintf(&b, "  --%s: %s;\n", e.Variable, e.Size)
		fmt.Fprintf(&b, "  --%s--line-height: %s;\n", e.Variable, e.LineHeight)
		if e.LetterSpacing != "" {
			fmt.Fprintf(&b, "  --%s--letter-spacing: %s;\n", e.Variable, e.LetterSpacing)
		}
	}
	b.WriteString("}")
	return b.String()
}

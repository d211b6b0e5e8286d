package cssdoc

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"github.com/zclconf/go-cty/cty"

	"github.com/x0aa7i/typescaler/internal/typescale"
)

// AtRuleName is the at-rule carrying document-level typescale
// configuration.
const AtRuleName = "@typescale"

// stepsBlockName is the nested block whose declarations are bare-scalar
// step shorthands (name: position).
const stepsBlockName = "steps"

// token is one lexed unit of an at-rule body.
type token struct {
	tt   css.TokenType
	data string
}

// Entry kinds produced by nextEntry.
const (
	entryEOF = iota
	entryEnd
	entryDecl
	entryBlock
)

// extractor reads @typescale rules straight from the token stream. The
// grammar-level parser is of no use here: it hands back the interior of an
// unknown at-rule as opaque tokens, never as declarations or nested
// rulesets, so the body structure has to be reassembled at the lexer level
// (the same level ruleSpans works at).
type extractor struct {
	l          *css.Lexer
	opts       typescale.RawOptions
	stepFields map[string]map[string]cty.Value
	found      bool
}

// Extract scans a stylesheet for @typescale rules and returns the raw
// option and step layers they define. found reports whether at least one
// rule was present. Declarations directly inside the rule are options, a
// nested "steps" block holds step shorthands, and any other nested block is
// a full step definition named by its selector. When several rules or
// blocks touch the same step, later fields overlay earlier ones.
func Extract(src []byte) (opts typescale.RawOptions, steps typescale.RawSteps, found bool, err error) {
	e := &extractor{
		l:          css.NewLexer(parse.NewInputBytes(src)),
		opts:       typescale.RawOptions{},
		stepFields: map[string]map[string]cty.Value{},
	}
	if err := e.scan(); err != nil {
		return nil, nil, false, err
	}

	steps = make(typescale.RawSteps, len(e.stepFields))
	for name, fields := range e.stepFields {
		if len(fields) == 0 {
			steps[name] = cty.EmptyObjectVal
			continue
		}
		steps[name] = cty.ObjectVal(fields)
	}
	return e.opts, steps, e.found, nil
}

// scan walks the whole document looking for top-level @typescale rules.
// Everything else participates only in brace-depth tracking, so a nested
// mention inside another rule never starts extraction.
func (e *extractor) scan() error {
	depth := 0
	for {
		tt, text := e.l.Next()
		switch tt {
		case css.ErrorToken:
			return e.lexErr()
		case css.LeftBraceToken:
			depth++
		case css.RightBraceToken:
			if depth > 0 {
				depth--
			}
		case css.AtKeywordToken:
			if depth == 0 && string(text) == AtRuleName {
				e.found = true
				if err := e.parseRule(); err != nil {
					return err
				}
			}
		}
	}
}

// lexErr folds the lexer's terminal state into an error, treating EOF as a
// clean end of input.
func (e *extractor) lexErr() error {
	if err := e.l.Err(); err != nil && err != io.EOF {
		return fmt.Errorf("scan stylesheet: %w", err)
	}
	return nil
}

// parseRule consumes one rule from just after the at-keyword: prelude
// tokens are ignored, then either a block body follows or a bare semicolon
// ends the rule.
func (e *extractor) parseRule() error {
	for {
		tt, _ := e.l.Next()
		switch tt {
		case css.ErrorToken:
			return e.lexErr()
		case css.SemicolonToken:
			return nil
		case css.LeftBraceToken:
			return e.parseBody()
		}
	}
}

// parseBody reads the rule body: declarations become options, a "steps"
// block becomes shorthand positions, any other nested block is a full step
// definition.
func (e *extractor) parseBody() error {
	for {
		kind, name, values, closed, err := e.nextEntry()
		if err != nil {
			return err
		}
		switch kind {
		case entryEOF, entryEnd:
			return nil
		case entryDecl:
			e.opts[name] = tokensToValue(values)
		case entryBlock:
			if name == stepsBlockName {
				err = e.parseSteps()
			} else {
				err = e.parseStep(name)
			}
			if err != nil {
				return err
			}
		}
		if closed {
			return nil
		}
	}
}

// parseSteps reads the shorthand block, where every declaration is a step
// name with its scale position. Nested blocks have no meaning here and are
// skipped.
func (e *extractor) parseSteps() error {
	for {
		kind, name, values, closed, err := e.nextEntry()
		if err != nil {
			return err
		}
		switch kind {
		case entryEOF, entryEnd:
			return nil
		case entryDecl:
			e.fieldsOf(name)[typescale.FieldStep] = tokensToValue(values)
		case entryBlock:
			if err := e.skipBlock(); err != nil {
				return err
			}
		}
		if closed {
			return nil
		}
	}
}

// parseStep reads a full step definition block, one field per declaration.
func (e *extractor) parseStep(stepName string) error {
	fields := e.fieldsOf(stepName)
	for {
		kind, name, values, closed, err := e.nextEntry()
		if err != nil {
			return err
		}
		switch kind {
		case entryEOF, entryEnd:
			return nil
		case entryDecl:
			fields[name] = tokensToValue(values)
		case entryBlock:
			if err := e.skipBlock(); err != nil {
				return err
			}
		}
		if closed {
			return nil
		}
	}
}

// fieldsOf returns the accumulated field map for a step, creating it on
// first touch so that even an empty block registers the step.
func (e *extractor) fieldsOf(name string) map[string]cty.Value {
	fields, ok := e.stepFields[name]
	if !ok {
		fields = map[string]cty.Value{}
		e.stepFields[name] = fields
	}
	return fields
}

// skipBlock discards a balanced block of foreign content.
func (e *extractor) skipBlock() error {
	depth := 1
	for {
		switch tt, _ := e.l.Next(); tt {
		case css.ErrorToken:
			return e.lexErr()
		case css.LeftBraceToken:
			depth++
		case css.RightBraceToken:
			depth--
			if depth == 0 {
				return nil
			}
		}
	}
}

// nextEntry reads one entry of a block body: a declaration, the opening of
// a nested block, or the body's closing brace. For declarations it also
// reads the value, reporting via closed whether the value ran into the
// closing brace instead of a semicolon.
func (e *extractor) nextEntry() (kind int, name string, values []token, closed bool, err error) {
	var prelude strings.Builder
	for {
		tt, text := e.l.Next()
		switch tt {
		case css.ErrorToken:
			return entryEOF, "", nil, false, e.lexErr()
		case css.WhitespaceToken, css.CommentToken:
			// Names never span whitespace.
		case css.ColonToken:
			values, closed, err = e.declarationValue()
			return entryDecl, prelude.String(), values, closed, err
		case css.LeftBraceToken:
			return entryBlock, prelude.String(), nil, false, nil
		case css.RightBraceToken:
			return entryEnd, "", nil, false, nil
		case css.SemicolonToken:
			prelude.Reset()
		default:
			prelude.Write(text)
		}
	}
}

// declarationValue collects value tokens up to the terminating semicolon
// or closing brace. Separators inside functions do not terminate the
// value.
func (e *extractor) declarationValue() (values []token, closed bool, err error) {
	parens := 0
	for {
		tt, text := e.l.Next()
		switch tt {
		case css.ErrorToken:
			return values, false, e.lexErr()
		case css.SemicolonToken:
			if parens == 0 {
				return values, false, nil
			}
		case css.RightBraceToken:
			if parens == 0 {
				return values, true, nil
			}
		case css.FunctionToken, css.LeftParenthesisToken:
			parens++
		case css.RightParenthesisToken:
			if parens > 0 {
				parens--
			}
		}
		values = append(values, token{tt: tt, data: string(text)})
	}
}

// tokensToValue converts a declaration's value tokens into a raw value. A
// lone number becomes a cty number, the true/false keywords become bools
// (the engine requires real booleans and leaves keyword coercion to the
// adapter), and a lone quoted string is unquoted. Anything else is joined
// back into a plain string with single spaces.
func tokensToValue(tokens []token) cty.Value {
	var meaningful []token
	for _, t := range tokens {
		if t.tt == css.WhitespaceToken || t.tt == css.CommentToken {
			continue
		}
		meaningful = append(meaningful, t)
	}

	if len(meaningful) == 1 {
		tok := meaningful[0]
		switch tok.tt {
		case css.NumberToken:
			if f, err := strconv.ParseFloat(tok.data, 64); err == nil {
				return cty.NumberFloatVal(f)
			}
		case css.IdentToken:
			switch strings.ToLower(tok.data) {
			case "true":
				return cty.True
			case "false":
				return cty.False
			}
		case css.StringToken:
			return cty.StringVal(strings.Trim(tok.data, `"'`))
		}
	}

	var b strings.Builder
	for _, t := range tokens {
		if t.tt == css.CommentToken {
			continue
		}
		if t.tt == css.WhitespaceToken {
			b.WriteByte(' ')
			continue
		}
		b.WriteString(t.data)
	}
	return cty.StringVal(strings.TrimSpace(b.String()))
}

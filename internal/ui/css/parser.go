// Package css parses the small stylesheet dialect used by the overlay UI and
// resolves matched declarations into a Style. It has no raylib dependency.
package css

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	lexcss "github.com/tdewolff/parse/v2/css"
)

// ErrUnterminated is returned when a rule block is missing its closing brace.
var ErrUnterminated = errors.New("css: unterminated block")

// Selector matches nodes by class or id, optionally only while hovered.
type Selector struct {
	Class string
	ID    string
	Hover bool
}

// Matches reports whether a node with the given class, id and hover state is selected.
func (s Selector) Matches(class, id string, hover bool) bool {
	if s.Hover && !hover {
		return false
	}
	if s.Class != "" {
		return s.Class == class
	}
	return s.ID != "" && s.ID == id
}

// Rule is one selector and its declarations (raw strings).
type Rule struct {
	Selector Selector
	Props    map[string]string
}

// Stylesheet is a list of rules. Later rules override earlier ones.
type Stylesheet struct {
	Rules []Rule
}

// Parse reads ".class", "#id" and "sel:hover" rules with "key: value;"
// declarations. Comma-separated selector lists expand to one rule each.
// Blocks with unsupported selectors are skipped.
func Parse(content string) (*Stylesheet, error) {
	sheet := &Stylesheet{}
	p := lexcss.NewParser(parse.NewInput(strings.NewReader(content)), false)

	// the parser closes blocks left open at EOF; only as many blocks as the
	// source has closing braces are complete
	braces := closingBraces(content)
	var (
		selectors []Selector
		props     map[string]string
		open      bool
		ends      int
	)
	for {
		gt, _, data := p.Next()
		switch gt {
		case lexcss.ErrorGrammar:
			if err := p.Err(); err != io.EOF {
				return sheet, fmt.Errorf("css: %w", err)
			}
			if open {
				return sheet, ErrUnterminated
			}
			return sheet, nil
		case lexcss.QualifiedRuleGrammar:
			selectors = appendSelectors(selectors, p.Values())
		case lexcss.BeginRulesetGrammar:
			selectors = appendSelectors(selectors, p.Values())
			props = make(map[string]string)
			open = true
		case lexcss.DeclarationGrammar:
			if open {
				props[strings.TrimSpace(string(data))] = tokenText(p.Values())
			}
		case lexcss.EndAtRuleGrammar:
			ends++
		case lexcss.EndRulesetGrammar:
			if ends++; ends > braces {
				return sheet, ErrUnterminated
			}
			for _, sel := range selectors {
				sheet.Rules = append(sheet.Rules, Rule{Selector: sel, Props: props})
			}
			selectors, props, open = nil, nil, false
		}
	}
}

// Match merges the declarations of every rule selecting the node, in order.
func (sh *Stylesheet) Match(class, id string, hover bool) map[string]string {
	merged := make(map[string]string)
	if sh == nil {
		return merged
	}
	for _, r := range sh.Rules {
		if !r.Selector.Matches(class, id, hover) {
			continue
		}
		for k, v := range r.Props {
			merged[k] = v
		}
	}
	return merged
}

func parseSelector(s string) (Selector, bool) {
	var sel Selector
	if name, ok := strings.CutSuffix(s, ":hover"); ok {
		sel.Hover = true
		s = name
	}
	if len(s) < 2 {
		return Selector{}, false
	}
	switch s[0] {
	case '.':
		sel.Class = s[1:]
	case '#':
		sel.ID = s[1:]
	default:
		return Selector{}, false
	}
	return sel, true
}

// appendSelectors adds the supported selectors found in a comma-separated
// token list.
func appendSelectors(sels []Selector, tokens []lexcss.Token) []Selector {
	var sb strings.Builder
	flush := func() {
		if sel, ok := parseSelector(strings.TrimSpace(sb.String())); ok {
			sels = append(sels, sel)
		}
		sb.Reset()
	}
	for _, t := range tokens {
		if t.TokenType == lexcss.CommaToken {
			flush()
			continue
		}
		sb.Write(t.Data)
	}
	flush()
	return sels
}

func closingBraces(content string) int {
	l := lexcss.NewLexer(parse.NewInput(strings.NewReader(content)))
	n := 0
	for {
		tt, _ := l.Next()
		switch tt {
		case lexcss.ErrorToken:
			return n
		case lexcss.RightBraceToken:
			n++
		}
	}
}

// tokenText joins declaration value tokens back into their source text.
func tokenText(tokens []lexcss.Token) string {
	var sb strings.Builder
	for _, t := range tokens {
		sb.Write(t.Data)
	}
	return strings.TrimSpace(sb.String())
}

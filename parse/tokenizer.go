package parse

import (
	"strings"

	"github.com/ldelia/cmdline/util"
)

// Tokenizer holds the argument tokens after the program name and answers
// membership, value and positional queries over them. It never mutates
// during resolution; the parser reads it and writes the option registry.
type Tokenizer struct {
	tokens []string
}

// NewTokenizer builds a Tokenizer from a process argument vector such as
// os.Args. The first element is taken to be the program name and is dropped.
func NewTokenizer(args []string) *Tokenizer {
	if len(args) > 0 {
		args = args[1:]
	}

	return NewTokenizerFromTokens(args)
}

// NewTokenizerFromTokens builds a Tokenizer from a token list which does not
// include the program name.
func NewTokenizerFromTokens(tokens []string) *Tokenizer {
	return &Tokenizer{tokens: append([]string(nil), tokens...)}
}

// Tokens returns the token list.
func (t *Tokenizer) Tokens() []string {
	return t.tokens
}

// Append adds tokens to the end of the token list.
func (t *Tokenizer) Append(tokens ...string) {
	t.tokens = append(t.tokens, tokens...)
}

// Has reports whether name appears as an exact token.
func (t *Tokenizer) Has(name string) bool {
	if name == "" {
		return false
	}
	for _, tok := range t.tokens {
		if tok == name {
			return true
		}
	}

	return false
}

// ValueFor returns the value supplied for name, or "" when name is absent or
// carries no value. Three forms are recognized: the token following an exact
// match (unless that token is itself option-like), "--name=value" for long
// names, and "-xvalue" for short names of exactly two characters. The
// two-character cutoff for the appended form is a fixed convention of this
// library. The first occurrence of name wins; later occurrences are ignored.
func (t *Tokenizer) ValueFor(name string) string {
	if name == "" {
		return ""
	}

	long := strings.HasPrefix(name, "--")
	compact := !long && len(name) == 2

	for i, tok := range t.tokens {
		if tok == name {
			if i+1 < len(t.tokens) && !IsOptionLike(t.tokens[i+1]) {
				return t.tokens[i+1]
			}
			return ""
		}
		if long && strings.HasPrefix(tok, name+"=") {
			return tok[len(name)+1:]
		}
		if compact && len(tok) > 2 && !strings.HasPrefix(tok, "--") && strings.HasPrefix(tok, name) {
			return tok[2:]
		}
	}

	return ""
}

// Positionals returns the tokens which are neither option names nor option
// values, in left-to-right order. An option-like token is assumed to consume
// the token which follows it unless it carries an inline "=value" or the
// takesNoValue capability reports that it consumes nothing (toggles and
// appended-form tokens). Option-kind knowledge stays with the caller; only
// that predicate crosses the boundary.
func (t *Tokenizer) Positionals(takesNoValue func(token string) bool) []string {
	var positionals []string

	for i := 0; i < len(t.tokens); i++ {
		tok := t.tokens[i]
		if !IsOptionLike(tok) {
			positionals = append(positionals, tok)
			continue
		}
		if strings.ContainsRune(tok, '=') {
			continue
		}
		if takesNoValue != nil && takesNoValue(tok) {
			continue
		}
		if i+1 < len(t.tokens) && !IsOptionLike(t.tokens[i+1]) {
			i++
		}
	}

	return positionals
}

// PositionalCount returns the number of positional tokens.
func (t *Tokenizer) PositionalCount(takesNoValue func(token string) bool) int {
	return len(t.Positionals(takesNoValue))
}

// PositionalAt returns the nth positional token, or "" when out of range.
func (t *Tokenizer) PositionalAt(index int, takesNoValue func(token string) bool) string {
	positionals := t.Positionals(takesNoValue)
	if index < 0 || index >= len(positionals) {
		return ""
	}

	return positionals[index]
}

// IsOptionLike reports whether token names an option: it starts with '-' and
// is not parseable purely as a signed number, so "-3.14" is a value, not an
// option.
func IsOptionLike(token string) bool {
	if len(token) == 0 || token[0] != '-' {
		return false
	}
	if _, ok := util.ParseNumeric(token); ok {
		return false
	}

	return true
}

// Copyright 2026, Laura Delia. All rights reserved.
// Use of this source code is governed by the MIT license
// which can be found in the LICENSE file.

// Package cmdline provides declarative command-line processing.
//
// It supports 6 kinds of entries:
//
//	Value - an option which expects a value ("-o out", "--output=out", "-oout")
//	Toggle - a boolean option whose presence flips it to true
//	Multi - an option whose value must come from a fixed allowed set
//	Positional - a bare argument assigned by position
//	PositionalList - collects every bare argument left after the positionals
//	Separator - a help-output section header, never matched against arguments
//
// Options are registered on a Parser, resolved with Parse, checked for
// completeness with Validate and read back through typed getters. Parse never
// fails because a required option is absent; requiredness is Validate's
// concern, so a "--help" toggle can be answered before any required value is
// demanded.
package cmdline

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ldelia/cmdline/parse"
	"github.com/ldelia/cmdline/types"
	"github.com/ldelia/cmdline/util"
)

// NewParser creates a Parser from a process argument vector such as os.Args.
// The first element is taken to be the program name and is ignored.
func NewParser(args []string) *Parser {
	return &Parser{
		tokenizer: parse.NewTokenizer(args),
		options:   newOptionList(),
	}
}

// NewParserFromString creates a Parser from a single command line, split
// using shell quoting rules. The string must not include the program name.
func NewParserFromString(argString string) (*Parser, error) {
	tokens, err := parse.Split(argString)
	if err != nil {
		return nil, err
	}

	return &Parser{
		tokenizer: parse.NewTokenizerFromTokens(tokens),
		options:   newOptionList(),
	}, nil
}

// AddOption registers a value option under a short name, a long name, or
// both. defaultValue is the value reported until Parse resolves one from the
// argument vector.
func (p *Parser) AddOption(short, long, description string, required bool, defaultValue string) error {
	opt, err := newOption(types.Value, short, long, description)
	if err != nil {
		return err
	}
	opt.Required = required
	opt.value = defaultValue

	return p.options.Add(opt)
}

// AddToggle registers a boolean option which takes no value. Its presence on
// the command line flips it to true; toggled sets the initial state.
func (p *Parser) AddToggle(short, long, description string, toggled bool) error {
	opt, err := newOption(types.Toggle, short, long, description)
	if err != nil {
		return err
	}
	opt.toggled = toggled

	return p.options.Add(opt)
}

// AddMultiOption registers an option whose value must be one of
// allowedValues. The default must itself be a member of the set, so the
// option always reports an allowed value.
func (p *Parser) AddMultiOption(short, long, description string, allowedValues []string, defaultValue string) error {
	if len(allowedValues) == 0 {
		return fmt.Errorf("%w: %s has an empty allowed set", ErrInvalidDefault, long)
	}
	opt, err := newOption(types.Multi, short, long, description)
	if err != nil {
		return err
	}
	opt.allowedValues = append([]string(nil), allowedValues...)
	if !opt.allows(defaultValue) {
		return fmt.Errorf("%w: %q is not an allowed value of %s", ErrInvalidDefault, defaultValue, opt.name())
	}
	opt.value = defaultValue

	return p.options.Add(opt)
}

// AddPositionalOption registers an argument assigned by position rather than
// by name. Positionals consume bare tokens left to right in registration
// order; the names are only used for retrieval, help output and error
// messages.
func (p *Parser) AddPositionalOption(short, long, description string, required bool, defaultValue string) error {
	opt, err := newOption(types.Positional, short, long, description)
	if err != nil {
		return err
	}
	opt.Required = required
	opt.value = defaultValue

	return p.options.Add(opt)
}

// AddPositionalList registers a list which collects every bare token left
// after the single positionals have been assigned. At most one list may be
// registered and no positional entry may follow it.
func (p *Parser) AddPositionalList(short, long, description string, required bool) error {
	opt, err := newOption(types.PositionalList, short, long, description)
	if err != nil {
		return err
	}
	opt.Required = required

	return p.options.Add(opt)
}

// AddSeparator registers a section header which is rendered between option
// usage lines. Separators never match arguments and cannot fail to register.
func (p *Parser) AddSeparator(description string) {
	opt := &Option{Kind: types.Separator, Description: description}
	_ = p.options.Add(opt)
}

// Parse resolves the argument vector against the registered options. It
// returns true when no errors were encountered; the details are available
// through GetErrors. Absent required options are not Parse errors, see
// Validate. Parse may be called more than once; later calls re-resolve
// against the current token list.
func (p *Parser) Parse() bool {
	p.errors = nil
	p.resolveOptions()
	p.resolvePositionals()
	p.parsed = true

	return len(p.errors) == 0
}

// ParseWithDefaults appends name/value pairs for every registered option of
// defaults which is absent from the argument vector, then parses. Defaults
// apply to value-carrying options only; unknown names and other kinds are
// ignored.
func (p *Parser) ParseWithDefaults(defaults map[string]string) bool {
	for name, value := range defaults {
		opt, found := p.options.Find(name)
		if !found {
			continue
		}
		if opt.Kind != types.Value && opt.Kind != types.Multi {
			continue
		}
		if p.lookupValue(opt) != "" {
			continue
		}
		p.tokenizer.Append(opt.name(), value)
	}

	return p.Parse()
}

// Validate checks that every required option was resolved by Parse. It
// returns true when none are missing; one error per missing option is
// appended to GetErrors otherwise.
func (p *Parser) Validate() bool {
	missing := 0
	for it := p.options.Front(); it != nil; it = it.Next() {
		opt := it.Value
		if !opt.Required || opt.resolved {
			continue
		}
		p.addError(p.missingError(opt))
		missing++
	}

	return missing == 0
}

// Get returns the display string of the named option and whether the name is
// registered. Toggles report "true" or "false", positional lists their
// values joined by ", ".
func (p *Parser) Get(name string) (string, bool) {
	opt, found := p.options.Find(name)
	if !found {
		return "", false
	}

	return opt.DisplayValue(), true
}

// GetOrDefault returns the display string of the named option, or
// defaultValue when the name is not registered.
func (p *Parser) GetOrDefault(name string, defaultValue string) string {
	if value, found := p.Get(name); found {
		return value
	}

	return defaultValue
}

// GetString returns the value of the named option.
func (p *Parser) GetString(name string) (string, error) {
	value, err := p.rawValue(name)
	if err != nil {
		return "", err
	}

	return value, nil
}

// GetBool returns the value of the named option converted to bool. For a
// toggle this is its current state.
func (p *Parser) GetBool(name string) (bool, error) {
	var result bool
	err := p.convert(name, &result)

	return result, err
}

// GetInt returns the value of the named option converted to int64.
func (p *Parser) GetInt(name string) (int64, error) {
	var result int64
	err := p.convert(name, &result)

	return result, err
}

// GetUint returns the value of the named option converted to uint64.
func (p *Parser) GetUint(name string) (uint64, error) {
	var result uint64
	err := p.convert(name, &result)

	return result, err
}

// GetFloat returns the value of the named option converted to float64.
func (p *Parser) GetFloat(name string) (float64, error) {
	var result float64
	err := p.convert(name, &result)

	return result, err
}

// GetTime returns the value of the named option converted to time.Time.
// Dates are parsed in a wide range of formats in the local time zone.
func (p *Parser) GetTime(name string) (time.Time, error) {
	var result time.Time
	err := p.convert(name, &result)

	return result, err
}

// GetDuration returns the value of the named option converted to
// time.Duration.
func (p *Parser) GetDuration(name string) (time.Duration, error) {
	var result time.Duration
	err := p.convert(name, &result)

	return result, err
}

// GetList returns the values collected by the named positional list.
func (p *Parser) GetList(name string) ([]string, error) {
	opt, found := p.options.Find(name)
	if !found || opt.Kind != types.PositionalList {
		return nil, fmt.Errorf("%w: no positional list registered as %s", ErrOptionNotFound, name)
	}

	return opt.Values(), nil
}

// GetOption returns the value of the named option converted to T. T may be
// any of the types the conversion layer supports, or []string for a
// positional list.
func GetOption[T any](p *Parser, name string) (T, error) {
	var result T
	if values, ok := any(&result).(*[]string); ok {
		list, err := p.GetList(name)
		if err != nil {
			return result, err
		}
		*values = list

		return result, nil
	}
	err := p.convert(name, &result)

	return result, err
}

// GetErrors returns the errors collected by Parse and Validate, in the order
// they were encountered.
func (p *Parser) GetErrors() []error {
	return p.errors
}

// GetErrorCount returns the number of errors collected so far.
func (p *Parser) GetErrorCount() int {
	return len(p.errors)
}

// Options returns the registered entries in registration order, separators
// included.
func (p *Parser) Options() []*Option {
	result := make([]*Option, 0, p.options.Count())
	for it := p.options.Front(); it != nil; it = it.Next() {
		result = append(result, it.Value)
	}

	return result
}

// ResolvedPairs returns the name and display string of every option which
// Parse resolved from the argument vector, in registration order.
func (p *Parser) ResolvedPairs() []KeyValue {
	var pairs []KeyValue
	for it := p.options.Front(); it != nil; it = it.Next() {
		opt := it.Value
		if !opt.resolved {
			continue
		}
		pairs = append(pairs, KeyValue{Key: opt.name(), Value: opt.DisplayValue()})
	}

	return pairs
}

// LongestShort is the length of the longest registered short name.
func (p *Parser) LongestShort() int {
	return p.options.LongestShort()
}

// LongestLong is the length of the longest registered long name.
func (p *Parser) LongestLong() int {
	return p.options.LongestLong()
}

// LongestValue is the length of the longest value display string.
func (p *Parser) LongestValue() int {
	return p.options.LongestValue()
}

// PrintHelp writes the usage lines of every registered entry to w using the
// default renderer. A nil writer defaults to os.Stdout.
func (p *Parser) PrintHelp(w io.Writer) {
	if w == nil {
		w = os.Stdout
	}
	renderer := NewRenderer(p)
	for it := p.options.Front(); it != nil; it = it.Next() {
		opt := it.Value
		if opt.Kind == types.Separator {
			fmt.Fprintf(w, "%s\n", renderer.SeparatorUsage(opt))
			continue
		}
		fmt.Fprintf(w, "%s\n", renderer.OptionUsage(opt))
	}
}

func (p *Parser) rawValue(name string) (string, error) {
	opt, found := p.options.Find(name)
	if !found {
		return "", fmt.Errorf("%w: %s", ErrOptionNotFound, name)
	}

	return opt.DisplayValue(), nil
}

func (p *Parser) convert(name string, data any) error {
	value, err := p.rawValue(name)
	if err != nil {
		return err
	}
	if err := util.ConvertString(value, data, name); err != nil {
		return fmt.Errorf("%w: %v", ErrBadConversion, err)
	}

	return nil
}

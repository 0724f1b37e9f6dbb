package cmdline

import (
	"fmt"
	"strings"

	"github.com/ldelia/cmdline/types"
	"github.com/ldelia/cmdline/types/queue"
)

func (p *Parser) resolveOptions() {
	for it := p.options.Front(); it != nil; it = it.Next() {
		opt := it.Value
		switch opt.Kind {
		case types.Value:
			value := p.lookupValue(opt)
			if value == "" {
				continue
			}
			opt.value = value
			opt.resolved = true
			p.options.updateLongestValue(opt.valueLength())
		case types.Multi:
			value := p.lookupValue(opt)
			if value == "" {
				continue
			}
			if err := opt.setSelected(value); err != nil {
				p.addError(fmt.Errorf("%s: %w", opt.name(), err))
			}
		case types.Toggle:
			if p.tokenizer.Has(opt.Short) || p.tokenizer.Has(opt.Long) {
				opt.toggled = true
				opt.resolved = true
			}
		}
	}
}

// resolvePositionals assigns the bare tokens to the positional entries in
// registration order; whatever is left flows into the positional list. Bare
// tokens remaining after every slot is filled are an error.
func (p *Parser) resolvePositionals() {
	pending := queue.New[string]()
	for _, tok := range p.tokenizer.Positionals(p.consumesNoValue) {
		pending.Enqueue(tok)
	}

	for it := p.options.Front(); it != nil; it = it.Next() {
		opt := it.Value
		switch opt.Kind {
		case types.Positional:
			value, ok := pending.Dequeue()
			if !ok {
				continue
			}
			opt.value = value
			opt.resolved = true
			p.options.updateLongestValue(opt.valueLength())
		case types.PositionalList:
			opt.values = pending.Drain()
			if len(opt.values) > 0 {
				opt.resolved = true
				p.options.updateLongestValue(opt.valueLength())
			}
		}
	}

	if leftover := pending.Drain(); len(leftover) > 0 {
		p.addError(fmt.Errorf("%w: %s", ErrUnexpectedArguments, strings.Join(leftover, " ")))
	}
}

// lookupValue tries the short name before the long one, matching the lookup
// precedence of the appended short form.
func (p *Parser) lookupValue(opt *Option) string {
	if value := p.tokenizer.ValueFor(opt.Short); value != "" {
		return value
	}

	return p.tokenizer.ValueFor(opt.Long)
}

// consumesNoValue reports whether token, when it names an option, does not
// consume the token which follows it. Toggles take no value and a token in
// the appended short form already carries its value. Unknown option-like
// tokens are assumed to consume a value.
func (p *Parser) consumesNoValue(token string) bool {
	if opt, found := p.options.Find(token); found {
		return opt.Kind == types.Toggle
	}
	if len(token) > 2 && !strings.HasPrefix(token, "--") {
		if opt, found := p.options.Find(token[:2]); found && opt.Kind != types.Toggle {
			return true
		}
	}

	return false
}

func (p *Parser) missingError(opt *Option) error {
	switch opt.Kind {
	case types.Positional:
		return fmt.Errorf("%w: positional argument %q", ErrMissingRequired, opt.Description)
	case types.PositionalList:
		return fmt.Errorf("%w: positional list %q", ErrMissingRequired, opt.Description)
	default:
		return fmt.Errorf("%w: %s", ErrMissingRequired, opt.name())
	}
}

func (p *Parser) addError(err error) {
	p.errors = append(p.errors, err)
}

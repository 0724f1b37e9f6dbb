package cmdline

import (
	"fmt"
	"strings"

	"github.com/ldelia/cmdline/types"
)

func newOption(kind types.OptionKind, short, long, description string) (*Option, error) {
	if kind != types.Separator && short == "" && long == "" {
		return nil, fmt.Errorf("%w: %q", ErrEmptyOptionName, description)
	}
	if short != "" && (!strings.HasPrefix(short, "-") || strings.HasPrefix(short, "--")) {
		return nil, fmt.Errorf("%w: short name %q must start with a single '-'", ErrInvalidOptionName, short)
	}
	if long != "" && !strings.HasPrefix(long, "--") {
		return nil, fmt.Errorf("%w: long name %q must start with '--'", ErrInvalidOptionName, long)
	}

	return &Option{
		Kind:        kind,
		Short:       short,
		Long:        long,
		Description: description,
	}, nil
}

// name returns the canonical lookup name, preferring the long form.
func (o *Option) name() string {
	if o.Long != "" {
		return o.Long
	}

	return o.Short
}

// DisplayValue returns the value as rendered in help output: toggles render
// as "true"/"false", multi options their current selection, positional lists
// their values joined by ", ", separators nothing.
func (o *Option) DisplayValue() string {
	switch o.Kind {
	case types.Toggle:
		if o.toggled {
			return "true"
		}
		return "false"
	case types.PositionalList:
		return strings.Join(o.values, ", ")
	case types.Separator:
		return ""
	default:
		return o.value
	}
}

// Toggled reports the current state of a toggle option.
func (o *Option) Toggled() bool {
	return o.toggled
}

// AllowedValues returns a copy of a multi option's allowed set, in
// registration order. Empty for other kinds.
func (o *Option) AllowedValues() []string {
	if len(o.allowedValues) == 0 {
		return nil
	}

	return append([]string(nil), o.allowedValues...)
}

// Values returns a copy of the values collected by a positional list.
func (o *Option) Values() []string {
	if len(o.values) == 0 {
		return nil
	}

	return append([]string(nil), o.values...)
}

// allows reports membership of value in the allowed set.
func (o *Option) allows(value string) bool {
	for _, allowed := range o.allowedValues {
		if allowed == value {
			return true
		}
	}

	return false
}

// setSelected updates a multi option's selection. A value outside the allowed
// set is rejected and the current selection is left untouched.
func (o *Option) setSelected(value string) error {
	if !o.allows(value) {
		return fmt.Errorf("%w: %q (allowed: %s)", ErrInvalidValue, value, strings.Join(o.allowedValues, ", "))
	}
	o.value = value
	o.resolved = true

	return nil
}

// valueLength is the display width of the option's value column entry. Multi
// options report their widest allowed value so the column fits any selection,
// toggles the width of "false".
func (o *Option) valueLength() int {
	switch o.Kind {
	case types.Toggle:
		return len("false")
	case types.Multi:
		longest := 0
		for _, v := range o.allowedValues {
			if len(v) > longest {
				longest = len(v)
			}
		}
		return longest
	case types.PositionalList:
		return len(o.DisplayValue())
	case types.Separator:
		return 0
	default:
		return len(o.value)
	}
}

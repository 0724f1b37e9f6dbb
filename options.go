package cmdline

import (
	"fmt"

	"github.com/ldelia/cmdline/types"
	"github.com/ldelia/cmdline/types/orderedmap"
)

// OptionList is the ordered option registry. It owns every Option, enforces
// short/long-name uniqueness and positional ordering at insertion, and
// maintains the display maxima the help renderer aligns its columns with.
// The registry only ever grows; options are never removed.
type OptionList struct {
	options *orderedmap.OrderedMap[string, *Option]
	lookup  map[string]string

	separators        int
	hasPositionalList bool

	longestShort int
	longestLong  int
	longestValue int
}

func newOptionList() *OptionList {
	return &OptionList{
		options: orderedmap.NewOrderedMap[string, *Option](),
		lookup:  map[string]string{},
	}
}

// Add appends opt to the registry. Separators skip every check. A failed Add
// leaves the registry unchanged.
func (l *OptionList) Add(opt *Option) error {
	if opt.Kind == types.Separator {
		l.separators++
		// separators have no name; key them by ordinal to keep their place
		l.options.Set(fmt.Sprintf("separator#%d", l.separators), opt)
		return nil
	}

	for _, name := range []string{opt.Short, opt.Long} {
		if name == "" {
			continue
		}
		if canonical, exists := l.lookup[name]; exists {
			existing, _ := l.options.Get(canonical)
			return fmt.Errorf("%w: (%s, %s) conflicts with (%s, %s)",
				ErrDuplicateOption, opt.Short, opt.Long, existing.Short, existing.Long)
		}
	}

	if opt.Kind == types.Positional || opt.Kind == types.PositionalList {
		if l.hasPositionalList {
			return fmt.Errorf("%w: %s registered after a positional list", ErrPositionalOrder, opt.name())
		}
		if opt.Kind == types.PositionalList {
			l.hasPositionalList = true
		}
	}

	key := opt.name()
	l.options.Set(key, opt)
	if opt.Short != "" {
		l.lookup[opt.Short] = key
	}
	if opt.Long != "" {
		l.lookup[opt.Long] = key
	}

	if len(opt.Short) > l.longestShort {
		l.longestShort = len(opt.Short)
	}
	if len(opt.Long) > l.longestLong {
		l.longestLong = len(opt.Long)
	}
	l.updateLongestValue(opt.valueLength())

	return nil
}

// Find matches name against either the short or the long identity of a
// registered option.
func (l *OptionList) Find(name string) (*Option, bool) {
	canonical, exists := l.lookup[name]
	if !exists {
		return nil, false
	}

	return l.options.Get(canonical)
}

// Front starts an iteration over the registry in registration order.
func (l *OptionList) Front() *orderedmap.Iterator[string, *Option] {
	return l.options.Front()
}

// Count returns the number of registered entries, separators included.
func (l *OptionList) Count() int {
	return l.options.Count()
}

// LongestShort is the length of the longest registered short name.
func (l *OptionList) LongestShort() int {
	return l.longestShort
}

// LongestLong is the length of the longest registered long name.
func (l *OptionList) LongestLong() int {
	return l.longestLong
}

// LongestValue is the length of the longest value display string seen so far.
// Parse keeps it current as values are resolved.
func (l *OptionList) LongestValue() int {
	return l.longestValue
}

func (l *OptionList) updateLongestValue(length int) {
	if length > l.longestValue {
		l.longestValue = length
	}
}

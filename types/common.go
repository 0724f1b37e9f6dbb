package types

import "errors"

// OptionKind tags the kind of a registered option.
type OptionKind int

const (
	// Value denotes an option which expects a value in the following token
	Value OptionKind = iota
	// Toggle denotes a boolean option which takes no value - its presence sets it to true
	Toggle
	// Multi denotes an option restricted to a fixed set of allowed values
	Multi
	// Positional denotes an argument identified by position rather than by name
	Positional
	// PositionalList denotes a positional argument which consumes all remaining positional tokens
	PositionalList
	// Separator denotes a help-text section heading - it has no name and no value
	Separator
)

func (k OptionKind) String() string {
	switch k {
	case Value:
		return "value"
	case Toggle:
		return "toggle"
	case Multi:
		return "multi"
	case Positional:
		return "positional"
	case PositionalList:
		return "positional-list"
	case Separator:
		return "separator"
	}

	return "unknown"
}

// Conversion errors returned by util.ConvertString. The parser wraps these
// into its own ErrBadConversion so callers can match on either level.
var (
	ErrParseBool                 = errors.New("expected 'true' or 'false'")
	ErrParseInt                  = errors.New("failed to parse as integer")
	ErrParseUint                 = errors.New("failed to parse as unsigned integer")
	ErrParseFloat                = errors.New("failed to parse as float")
	ErrParseTime                 = errors.New("failed to parse as time")
	ErrParseDuration             = errors.New("failed to parse as duration")
	ErrUnsupportedTypeConversion = errors.New("unsupported type conversion")
)

const (
	FmtErrorWithString = "%w: %s"
)

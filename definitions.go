package cmdline

import (
	"errors"

	"github.com/ldelia/cmdline/parse"
	"github.com/ldelia/cmdline/types"
)

// Option describes one registered entry. Identity and description are fixed
// at registration; the value state is mutated in place by Parse and read back
// through the typed getters. The registry is the sole owner of every Option.
type Option struct {
	// Kind tags which of the six variants this entry is.
	Kind types.OptionKind
	// Short is the short name including its '-' prefix (e.g. "-v"), or "".
	Short string
	// Long is the long name including its '--' prefix (e.g. "--verbose"), or "".
	Long string
	// Description is displayed in help output.
	Description string
	// Required marks value, positional and positional-list options which must
	// be resolved by Parse for Validate to pass.
	Required bool

	value         string
	toggled       bool
	resolved      bool
	allowedValues []string
	values        []string
}

// Parser holds the tokenized argument vector and the option registry, and
// resolves one against the other. A Parser serves a single argument vector:
// construct, register options, Parse, Validate, read values.
type Parser struct {
	tokenizer *parse.Tokenizer
	options   *OptionList
	errors    []error
	parsed    bool
}

// KeyValue denotes the name and current display string of a resolved option.
type KeyValue struct {
	Key   string
	Value string
}

var (
	// ErrDuplicateOption is returned when a registration reuses a short or
	// long name of an existing non-separator option.
	ErrDuplicateOption = errors.New("option already exists")
	// ErrInvalidDefault is returned when a multi option is registered with an
	// empty allowed set or a default outside it.
	ErrInvalidDefault = errors.New("invalid default value")
	// ErrPositionalOrder is returned when a positional entry is registered
	// after a positional list, or a second positional list is registered.
	ErrPositionalOrder = errors.New("positional list must be the last positional entry")
	// ErrEmptyOptionName is returned when a non-separator option is
	// registered without a short and without a long name.
	ErrEmptyOptionName = errors.New("option needs a short or long name")
	// ErrInvalidOptionName is returned for malformed short or long names.
	ErrInvalidOptionName = errors.New("malformed option name")
	// ErrInvalidValue is reported during Parse when a multi option receives a
	// value outside its allowed set. The selection is left unchanged.
	ErrInvalidValue = errors.New("value is not in the list of allowed values")
	// ErrMissingRequired is collected by Validate for every required option
	// which Parse left unresolved.
	ErrMissingRequired = errors.New("missing required option")
	// ErrUnexpectedArguments is reported at the end of Parse when positional
	// tokens remain after every positional slot has been assigned.
	ErrUnexpectedArguments = errors.New("unexpected extra arguments")
	// ErrOptionNotFound is returned by the getters for unregistered names.
	ErrOptionNotFound = errors.New("option not found")
	// ErrBadConversion is returned when a stored value cannot be converted to
	// the requested type.
	ErrBadConversion = errors.New("bad conversion")
)

package cmdline

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParser_ValueOptions(t *testing.T) {
	p := NewParser([]string{"prog",
		"--double", "0.00006456",
		"--int", "-42",
		"-u", "17",
		"-s", "Hello",
		"--verbose",
	})

	assert.Nil(t, p.AddOption("-d", "--double", "a double value", false, "0.2"))
	assert.Nil(t, p.AddOption("-i", "--int", "an int value", false, "-1"))
	assert.Nil(t, p.AddOption("-u", "--unsigned", "an unsigned value", false, "1"))
	assert.Nil(t, p.AddOption("-s", "--string", "a string value", false, "hello"))
	assert.Nil(t, p.AddToggle("-v", "--verbose", "enables verbose output", false))

	assert.True(t, p.Parse(), "a well-formed argument vector should parse cleanly")
	assert.Empty(t, p.GetErrors())

	d, err := p.GetFloat("--double")
	assert.Nil(t, err)
	assert.InDelta(t, 0.00006456, d, 1e-12)

	i, err := p.GetInt("--int")
	assert.Nil(t, err)
	assert.Equal(t, int64(-42), i, "negative numbers should be read as values, not option names")

	u, err := p.GetUint("-u")
	assert.Nil(t, err)
	assert.Equal(t, uint64(17), u)

	s, err := p.GetString("--string")
	assert.Nil(t, err)
	assert.Equal(t, "Hello", s)

	v, err := p.GetBool("--verbose")
	assert.Nil(t, err)
	assert.True(t, v)
}

func TestParser_DefaultsSurviveParse(t *testing.T) {
	p := NewParser([]string{"prog"})

	assert.Nil(t, p.AddOption("-i", "--int", "an int value", false, "-1"))
	assert.True(t, p.Parse())

	i, err := p.GetInt("--int")
	assert.Nil(t, err)
	assert.Equal(t, int64(-1), i, "an absent option should keep its default")

	first, err := p.GetString("--int")
	assert.Nil(t, err)
	second, err := p.GetString("--int")
	assert.Nil(t, err)
	assert.Equal(t, first, second, "reads without an intervening parse should be stable")
}

func TestParser_ShortNamePrecedence(t *testing.T) {
	p := NewParser([]string{"prog", "-o", "short", "--output", "long"})

	assert.Nil(t, p.AddOption("-o", "--output", "output file", false, ""))
	assert.True(t, p.Parse())

	value, err := p.GetString("--output")
	assert.Nil(t, err)
	assert.Equal(t, "short", value, "the short form should be looked up before the long one")
}

func TestParser_CompactAndInlineForms(t *testing.T) {
	p := NewParser([]string{"prog", "-sHello", "--mode=test"})

	assert.Nil(t, p.AddOption("-s", "--string", "a string value", false, ""))
	assert.Nil(t, p.AddMultiOption("-m", "--mode", "run mode", []string{"auto", "manual", "test"}, "auto"))
	assert.True(t, p.Parse())

	s, err := p.GetString("-s")
	assert.Nil(t, err)
	assert.Equal(t, "Hello", s, "the appended short form should yield the rest of the token")

	m, err := p.GetString("--mode")
	assert.Nil(t, err)
	assert.Equal(t, "test", m, "the inline long form should split on '='")
}

func TestParser_FirstOccurrenceWins(t *testing.T) {
	p := NewParser([]string{"prog", "--name", "first", "--name", "second"})

	assert.Nil(t, p.AddOption("-n", "--name", "a name", false, ""))
	assert.True(t, p.Parse())

	value, err := p.GetString("--name")
	assert.Nil(t, err)
	assert.Equal(t, "first", value)
}

func TestParser_MultiOption(t *testing.T) {
	p := NewParser([]string{"prog"})
	assert.Nil(t, p.AddMultiOption("-m", "--mode", "run mode", []string{"auto", "manual", "test"}, "auto"))
	assert.True(t, p.Parse())

	mode, err := p.GetString("--mode")
	assert.Nil(t, err)
	assert.Equal(t, "auto", mode, "an absent multi option should keep its default")

	p = NewParser([]string{"prog", "--mode", "test"})
	assert.Nil(t, p.AddMultiOption("-m", "--mode", "run mode", []string{"auto", "manual", "test"}, "auto"))
	assert.True(t, p.Parse())

	mode, err = p.GetString("--mode")
	assert.Nil(t, err)
	assert.Equal(t, "test", mode)

	p = NewParser([]string{"prog", "--mode", "bogus"})
	assert.Nil(t, p.AddMultiOption("-m", "--mode", "run mode", []string{"auto", "manual", "test"}, "auto"))
	assert.False(t, p.Parse(), "a value outside the allowed set should fail the parse")
	assert.Equal(t, 1, p.GetErrorCount())
	assert.True(t, errors.Is(p.GetErrors()[0], ErrInvalidValue))

	mode, err = p.GetString("--mode")
	assert.Nil(t, err)
	assert.Equal(t, "auto", mode, "a rejected value should leave the selection unchanged")
}

func TestParser_MultiOptionBadRegistration(t *testing.T) {
	p := NewParser([]string{"prog"})

	err := p.AddMultiOption("-m", "--mode", "run mode", nil, "auto")
	assert.True(t, errors.Is(err, ErrInvalidDefault), "an empty allowed set should be rejected")

	err = p.AddMultiOption("-m", "--mode", "run mode", []string{"auto", "manual"}, "bogus")
	assert.True(t, errors.Is(err, ErrInvalidDefault), "a default outside the allowed set should be rejected")
	assert.Equal(t, 0, p.options.Count())
}

func TestParser_Toggles(t *testing.T) {
	p := NewParser([]string{"prog", "--verbose"})
	assert.Nil(t, p.AddToggle("-v", "--verbose", "enables verbose output", false))
	assert.Nil(t, p.AddToggle("-q", "--quiet", "suppresses output", false))
	assert.True(t, p.Parse())

	v, err := p.GetBool("--verbose")
	assert.Nil(t, err)
	assert.True(t, v)

	q, err := p.GetBool("--quiet")
	assert.Nil(t, err)
	assert.False(t, q, "an absent toggle should stay false")
}

func TestParser_Positionals(t *testing.T) {
	p := NewParser([]string{"prog", "a", "b", "c", "d"})

	assert.Nil(t, p.AddPositionalOption("-f", "--first", "first argument", true, ""))
	assert.Nil(t, p.AddPositionalOption("-e", "--second", "second argument", true, ""))
	assert.Nil(t, p.AddPositionalList("-r", "--rest", "remaining arguments", false))
	assert.True(t, p.Parse())

	first, err := p.GetString("--first")
	assert.Nil(t, err)
	assert.Equal(t, "a", first)

	second, err := p.GetString("--second")
	assert.Nil(t, err)
	assert.Equal(t, "b", second)

	rest, err := p.GetList("--rest")
	assert.Nil(t, err)
	assert.Equal(t, []string{"c", "d"}, rest)
	assert.True(t, p.Validate())
}

func TestParser_PositionalsSkipOptionValues(t *testing.T) {
	p := NewParser([]string{"prog", "-o", "out.txt", "--verbose", "input.txt", "-sHello", "extra"})

	assert.Nil(t, p.AddOption("-o", "--output", "output file", false, ""))
	assert.Nil(t, p.AddOption("-s", "--string", "a string value", false, ""))
	assert.Nil(t, p.AddToggle("-v", "--verbose", "enables verbose output", false))
	assert.Nil(t, p.AddPositionalOption("-i", "--input", "input file", true, ""))
	assert.Nil(t, p.AddPositionalList("-r", "--rest", "remaining arguments", false))
	assert.True(t, p.Parse())

	input, err := p.GetString("--input")
	assert.Nil(t, err)
	assert.Equal(t, "input.txt", input, "option values should not leak into the positional stream")

	rest, err := p.GetList("--rest")
	assert.Nil(t, err)
	assert.Equal(t, []string{"extra"}, rest, "a token after an appended-form option should stay positional")
}

func TestParser_UnexpectedExtraArguments(t *testing.T) {
	p := NewParser([]string{"prog", "a", "b"})

	assert.Nil(t, p.AddPositionalOption("-f", "--first", "first argument", false, ""))
	assert.False(t, p.Parse(), "leftover positional tokens should fail the parse")
	assert.Equal(t, 1, p.GetErrorCount())
	assert.True(t, errors.Is(p.GetErrors()[0], ErrUnexpectedArguments))
	assert.Contains(t, p.GetErrors()[0].Error(), "b")
}

func TestParser_DuplicateRegistration(t *testing.T) {
	p := NewParser([]string{"prog"})

	assert.Nil(t, p.AddOption("-o", "--output", "output file", false, ""))
	before := p.options.Count()

	err := p.AddOption("-o", "--other", "another option", false, "")
	assert.True(t, errors.Is(err, ErrDuplicateOption), "a short name collision should be rejected")

	err = p.AddToggle("-x", "--output", "another option", false)
	assert.True(t, errors.Is(err, ErrDuplicateOption), "a long name collision should be rejected")
	assert.Equal(t, before, p.options.Count(), "a failed registration should leave the registry unchanged")
}

func TestParser_PositionalOrdering(t *testing.T) {
	p := NewParser([]string{"prog"})

	assert.Nil(t, p.AddPositionalList("-r", "--rest", "remaining arguments", false))

	err := p.AddPositionalOption("-f", "--first", "first argument", false, "")
	assert.True(t, errors.Is(err, ErrPositionalOrder), "a positional after a list should be rejected")

	err = p.AddPositionalList("-m", "--more", "more arguments", false)
	assert.True(t, errors.Is(err, ErrPositionalOrder), "a second list should be rejected")
}

func TestParser_MalformedNames(t *testing.T) {
	p := NewParser([]string{"prog"})

	err := p.AddOption("", "", "anonymous", false, "")
	assert.True(t, errors.Is(err, ErrEmptyOptionName))

	err = p.AddOption("o", "--output", "output file", false, "")
	assert.True(t, errors.Is(err, ErrInvalidOptionName), "a short name needs its '-' prefix")

	err = p.AddOption("--o", "--output", "output file", false, "")
	assert.True(t, errors.Is(err, ErrInvalidOptionName), "a short name must not start with '--'")

	err = p.AddOption("-o", "output", "output file", false, "")
	assert.True(t, errors.Is(err, ErrInvalidOptionName), "a long name needs its '--' prefix")
}

func TestParser_DeferredValidation(t *testing.T) {
	p := NewParser([]string{"prog", "--help"})

	assert.Nil(t, p.AddToggle("-h", "--help", "shows this help", false))
	assert.Nil(t, p.AddOption("-o", "--output", "output file", true, ""))
	assert.True(t, p.Parse(), "a missing required option should not fail the parse itself")

	help, err := p.GetBool("--help")
	assert.Nil(t, err)
	assert.True(t, help, "the help toggle should be readable before validation fires")

	assert.False(t, p.Validate())
	assert.Equal(t, 1, p.GetErrorCount())
	assert.True(t, errors.Is(p.GetErrors()[0], ErrMissingRequired))
	assert.Contains(t, p.GetErrors()[0].Error(), "--output")
}

func TestParser_ValidateCollectsAllMissing(t *testing.T) {
	p := NewParser([]string{"prog"})

	assert.Nil(t, p.AddOption("-o", "--output", "output file", true, ""))
	assert.Nil(t, p.AddPositionalOption("-i", "--input", "input file", true, ""))
	assert.Nil(t, p.AddPositionalList("-r", "--rest", "remaining arguments", true))
	assert.True(t, p.Parse())
	assert.False(t, p.Validate())
	assert.Equal(t, 3, p.GetErrorCount(), "every missing required option should be reported at once")
	assert.Contains(t, p.GetErrors()[1].Error(), "input file")
	assert.Contains(t, p.GetErrors()[2].Error(), "remaining arguments")
}

func TestParser_BadConversion(t *testing.T) {
	p := NewParser([]string{"prog", "--string", "maybe"})

	assert.Nil(t, p.AddOption("-s", "--string", "a string value", false, ""))
	assert.True(t, p.Parse())

	_, err := p.GetBool("--string")
	assert.True(t, errors.Is(err, ErrBadConversion), "bool conversion should accept only the literals true and false")

	_, err = p.GetInt("--string")
	assert.True(t, errors.Is(err, ErrBadConversion))
}

func TestParser_OptionNotFound(t *testing.T) {
	p := NewParser([]string{"prog"})

	_, err := p.GetString("--missing")
	assert.True(t, errors.Is(err, ErrOptionNotFound))

	_, found := p.Get("--missing")
	assert.False(t, found)
	assert.Equal(t, "fallback", p.GetOrDefault("--missing", "fallback"))
}

func TestParser_GetListRejectsNonLists(t *testing.T) {
	p := NewParser([]string{"prog", "--string", "value"})

	assert.Nil(t, p.AddOption("-s", "--string", "a string value", false, ""))
	assert.True(t, p.Parse())

	_, err := p.GetList("--string")
	assert.True(t, errors.Is(err, ErrOptionNotFound), "list retrieval should only succeed for positional lists")
}

func TestParser_TimeAndDuration(t *testing.T) {
	p := NewParser([]string{"prog", "--since", "2022-03-01", "--timeout", "1m30s"})

	assert.Nil(t, p.AddOption("-S", "--since", "start date", false, ""))
	assert.Nil(t, p.AddOption("-t", "--timeout", "request timeout", false, "30s"))
	assert.True(t, p.Parse())

	since, err := p.GetTime("--since")
	assert.Nil(t, err)
	assert.Equal(t, 2022, since.Year())
	assert.Equal(t, time.March, since.Month())

	timeout, err := p.GetDuration("--timeout")
	assert.Nil(t, err)
	assert.Equal(t, 90*time.Second, timeout)
}

func TestParser_GetOptionGeneric(t *testing.T) {
	p := NewParser([]string{"prog", "--int", "-42", "a", "b"})

	assert.Nil(t, p.AddOption("-i", "--int", "an int value", false, "-1"))
	assert.Nil(t, p.AddPositionalList("-r", "--rest", "remaining arguments", false))
	assert.True(t, p.Parse())

	i, err := GetOption[int](p, "--int")
	assert.Nil(t, err)
	assert.Equal(t, -42, i)

	f, err := GetOption[float64](p, "--int")
	assert.Nil(t, err)
	assert.Equal(t, -42.0, f)

	rest, err := GetOption[[]string](p, "--rest")
	assert.Nil(t, err)
	assert.Equal(t, []string{"a", "b"}, rest)

	_, err = GetOption[int](p, "--missing")
	assert.True(t, errors.Is(err, ErrOptionNotFound))
}

func TestParser_ParseWithDefaults(t *testing.T) {
	p := NewParser([]string{"prog", "--output", "given.txt"})

	assert.Nil(t, p.AddOption("-o", "--output", "output file", false, ""))
	assert.Nil(t, p.AddOption("-l", "--level", "log level", false, ""))
	assert.True(t, p.ParseWithDefaults(map[string]string{
		"--output":  "default.txt",
		"-l":        "info",
		"--unknown": "ignored",
	}))

	output, err := p.GetString("--output")
	assert.Nil(t, err)
	assert.Equal(t, "given.txt", output, "an explicit argument should beat an injected default")

	level, err := p.GetString("--level")
	assert.Nil(t, err)
	assert.Equal(t, "info", level)
}

func TestParser_FromString(t *testing.T) {
	p, err := NewParserFromString(`--message "hello world" --verbose`)
	assert.Nil(t, err)

	assert.Nil(t, p.AddOption("-m", "--message", "a message", false, ""))
	assert.Nil(t, p.AddToggle("-v", "--verbose", "enables verbose output", false))
	assert.True(t, p.Parse())

	message, err := p.GetString("--message")
	assert.Nil(t, err)
	assert.Equal(t, "hello world", message, "quoted tokens should survive splitting")

	_, err = NewParserFromString(`--message "unterminated`)
	assert.NotNil(t, err)
}

func TestParser_ResolvedPairs(t *testing.T) {
	p := NewParser([]string{"prog", "--output", "out.txt", "--verbose"})

	assert.Nil(t, p.AddOption("-o", "--output", "output file", false, ""))
	assert.Nil(t, p.AddOption("-l", "--level", "log level", false, "info"))
	assert.Nil(t, p.AddToggle("-v", "--verbose", "enables verbose output", false))
	assert.True(t, p.Parse())

	pairs := p.ResolvedPairs()
	assert.Equal(t, []KeyValue{
		{Key: "--output", Value: "out.txt"},
		{Key: "--verbose", Value: "true"},
	}, pairs, "only options resolved from the arguments should be listed")
}

func TestParser_SeparatorsAndMaxima(t *testing.T) {
	p := NewParser([]string{"prog", "--string", "a longer value"})

	p.AddSeparator("General options")
	assert.Nil(t, p.AddOption("-s", "--string", "a string value", false, "hi"))
	assert.Nil(t, p.AddToggle("-v", "--verbose", "enables verbose output", false))
	p.AddSeparator("General options")

	assert.Equal(t, 4, p.options.Count(), "separators never collide")
	assert.Equal(t, len("-s"), p.LongestShort())
	assert.Equal(t, len("--verbose"), p.LongestLong())
	assert.Equal(t, len("false"), p.LongestValue(), "a toggle reserves room for the word false")

	assert.True(t, p.Parse())
	assert.Equal(t, len("a longer value"), p.LongestValue(), "resolution should widen the value column")
}

func TestParser_PrintHelp(t *testing.T) {
	p := NewParser([]string{"prog"})

	p.AddSeparator("General options")
	assert.Nil(t, p.AddOption("-o", "--output", "output file", true, "out.txt"))
	assert.Nil(t, p.AddMultiOption("-m", "--mode", "run mode", []string{"auto", "manual", "test"}, "auto"))
	assert.Nil(t, p.AddToggle("-v", "--verbose", "enables verbose output", false))

	var buf bytes.Buffer
	p.PrintHelp(&buf)
	help := buf.String()

	assert.Contains(t, help, "General options")
	assert.Contains(t, help, "[-o")
	assert.Contains(t, help, "--output")
	assert.Contains(t, help, "(required)")
	assert.Contains(t, help, "[auto, manual, test]")
	assert.Contains(t, help, "false", "an untoggled option should render as false")

	lines := strings.Split(strings.TrimRight(help, "\n"), "\n")
	assert.Len(t, lines, 6, "one line per option plus the separator and its surrounding blank lines")
}

package cmdline

import (
	"fmt"
	"strings"

	"github.com/ldelia/cmdline/types"
	"github.com/ldelia/cmdline/util"
)

// Renderer produces the help line for a registry entry. The default
// implementation aligns names and values into columns; replace it to change
// the help layout without touching the parser.
type Renderer interface {
	OptionUsage(opt *Option) string
	SeparatorUsage(opt *Option) string
}

type DefaultRenderer struct {
	parser *Parser
	width  int
}

func NewRenderer(parser *Parser) *DefaultRenderer {
	return &DefaultRenderer{
		parser: parser,
		width:  util.TerminalWidth(80),
	}
}

// OptionUsage renders one usage line:
//
//	[-s ] --long   ( value) : description
//
// The short, long and value columns are padded to the registry maxima so
// every line lines up. Multi options append their allowed set, required
// options a trailing marker. Descriptions longer than the terminal width
// wrap onto continuation lines indented past the colon.
func (r *DefaultRenderer) OptionUsage(opt *Option) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("[%-*s] ", r.parser.LongestShort(), opt.Short))
	sb.WriteString(fmt.Sprintf("%-*s ", r.parser.LongestLong(), opt.Long))
	sb.WriteString(fmt.Sprintf("(%*s) : ", r.parser.LongestValue(), opt.DisplayValue()))
	indent := sb.Len()

	description := opt.Description
	if opt.Kind == types.Multi {
		description += fmt.Sprintf(" [%s]", strings.Join(opt.AllowedValues(), ", "))
	}
	if opt.Required {
		description += " (required)"
	}
	sb.WriteString(wrap(description, r.width-indent, indent))

	return sb.String()
}

// SeparatorUsage renders a section header surrounded by blank lines.
func (r *DefaultRenderer) SeparatorUsage(opt *Option) string {
	return fmt.Sprintf("\n%s\n", opt.Description)
}

// wrap breaks text into lines of at most limit runes, continuation lines
// indented by indent spaces. A limit too small to be useful disables
// wrapping.
func wrap(text string, limit, indent int) string {
	if limit < 10 {
		return text
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return text
	}

	var sb strings.Builder
	lineLen := 0
	for i, word := range words {
		if i == 0 {
			sb.WriteString(word)
			lineLen = len(word)
			continue
		}
		if lineLen+1+len(word) > limit {
			sb.WriteString("\n")
			sb.WriteString(strings.Repeat(" ", indent))
			sb.WriteString(word)
			lineLen = len(word)
			continue
		}
		sb.WriteString(" ")
		sb.WriteString(word)
		lineLen += 1 + len(word)
	}

	return sb.String()
}

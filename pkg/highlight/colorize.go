package highlight

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/rivo/tview"
)

// Mode selects how listings are coloured.
type Mode string

const (
	ModeNone  Mode = "none"
	ModeANSI  Mode = "ansi"
	ModeTview Mode = "tview"
)

func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(s)); m {
	case ModeNone, ModeANSI, ModeTview:
		return m, nil
	case "":
		return ModeNone, nil
	default:
		return "", fmt.Errorf("unknown colour mode %q", s)
	}
}

var getStyle = styles.Get

var getFallbackStyle = func() *chroma.Style {
	return styles.Fallback
}

func style(name string) *chroma.Style {
	s := getStyle(name)
	if s == nil {
		s = getFallbackStyle()
	}
	return s
}

func text(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

// Tokens lexes listing lines.
func Tokens(lexer chroma.Lexer, lines []string) ([]chroma.Token, error) {
	iterator, err := lexer.Tokenise(nil, text(lines))
	if err != nil {
		return nil, err
	}
	return iterator.Tokens(), nil
}

// Tview renders lines with tview colour tags. File names are coloured by
// extension, everything else by the chroma style.
func Tview(lexer chroma.Lexer, lines []string, styleName string) (string, error) {
	tokens, err := Tokens(lexer, lines)
	if err != nil {
		return "", err
	}
	st := style(styleName)
	var sb strings.Builder
	for _, token := range tokens {
		value := tview.Escape(token.Value)
		if token.Type == chroma.Name && token.Value != "" {
			sb.WriteString(colorTag(ColorOf(token.Value)))
			sb.WriteString(value)
			sb.WriteString("[-]")
			continue
		}
		entry := st.Get(token.Type)
		if !entry.Colour.IsSet() || strings.TrimSpace(token.Value) == "" {
			sb.WriteString(value)
			continue
		}
		sb.WriteString("[" + entry.Colour.String() + "]")
		sb.WriteString(value)
		sb.WriteString("[-]")
	}
	return strings.TrimSuffix(sb.String(), "\n"), nil
}

// ANSI writes lines coloured with 256-colour terminal escapes.
func ANSI(w io.Writer, lexer chroma.Lexer, lines []string, styleName string) error {
	iterator, err := lexer.Tokenise(nil, text(lines))
	if err != nil {
		return err
	}
	return formatters.TTY256.Format(w, style(styleName), iterator)
}

// Write prints lines in the given mode.
func Write(w io.Writer, lines []string, mode Mode, styleName string) error {
	switch mode {
	case ModeANSI:
		return ANSI(w, Listing, lines, styleName)
	case ModeTview:
		s, err := Tview(Listing, lines, styleName)
		if err != nil {
			return err
		}
		if s == "" {
			return nil
		}
		_, err = io.WriteString(w, s+"\n")
		return err
	default:
		_, err := io.WriteString(w, text(lines))
		return err
	}
}

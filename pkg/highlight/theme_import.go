package highlight

import (
	"fmt"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
	"gopkg.in/yaml.v3"
)

// base16Scheme is a Base16 color scheme (base00..base0F), the format most
// terminal/editor theme repositories ship. Grounded on the teacher's
// pkg/config/theme_import.go importBase16, reworked from a hand-rolled
// line scanner into a typed yaml.v3 document.
type base16Scheme struct {
	Base00 string `yaml:"base00"`
	Base01 string `yaml:"base01"`
	Base02 string `yaml:"base02"`
	Base03 string `yaml:"base03"`
	Base04 string `yaml:"base04"`
	Base05 string `yaml:"base05"`
	Base06 string `yaml:"base06"`
	Base07 string `yaml:"base07"`
	Base08 string `yaml:"base08"`
	Base09 string `yaml:"base09"`
	Base0A string `yaml:"base0A"`
	Base0B string `yaml:"base0B"`
	Base0C string `yaml:"base0C"`
	Base0D string `yaml:"base0D"`
	Base0E string `yaml:"base0E"`
	Base0F string `yaml:"base0F"`
}

// alacrittyColors is the subset of an Alacritty config this importer
// cares about: the normal/bright ANSI palette, which maps reasonably onto
// a code-scanner palette.
type alacrittyColors struct {
	Colors struct {
		Primary struct {
			Background string `yaml:"background"`
			Foreground string `yaml:"foreground"`
		} `yaml:"primary"`
		Normal map[string]string `yaml:"normal"`
		Bright map[string]string `yaml:"bright"`
	} `yaml:"colors"`
}

// ImportTheme reads a YAML theme file and converts it to a Theme. Supports
// Base16 schemes (keys base00..base0F) and Alacritty config fragments
// (colors.primary/normal/bright). Replaces the teacher's hand-rolled
// line-by-line YAML scanner with typed gopkg.in/yaml.v3 unmarshaling,
// per SPEC_FULL.md §7.
func ImportTheme(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var b16 base16Scheme
	if err := yaml.Unmarshal(data, &b16); err == nil && b16.Base00 != "" {
		return importBase16(b16), nil
	}

	var ala alacrittyColors
	if err := yaml.Unmarshal(data, &ala); err == nil && ala.Colors.Normal["red"] != "" {
		return importAlacritty(ala), nil
	}

	return nil, fmt.Errorf("mdhighlight: unrecognized theme format in %s", path)
}

func hexColor(s string, fallback tcell.Color) tcell.Color {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback
	}
	c := tcell.GetColor(strings.ToLower(s))
	if c == tcell.ColorDefault {
		return fallback
	}
	return c
}

func importBase16(s base16Scheme) Theme {
	t := DefaultTheme()
	bg := hexColor(s.Base00, tcell.ColorBlack)
	fg := hexColor(s.Base05, tcell.ColorWhite)
	keyword := hexColor(s.Base08, t[CodeKeyWord].Foreground)
	str := hexColor(s.Base0B, t[CodeString].Foreground)
	comment := hexColor(s.Base03, t[CodeComment].Foreground)
	number := hexColor(s.Base09, t[CodeNumLiteral].Foreground)
	typ := hexColor(s.Base0D, t[CodeType].Foreground)
	builtin := hexColor(s.Base0C, t[CodeBuiltIn].Foreground)

	t[CodeBlock] = StyleFormat{Foreground: fg, Background: bg, Monospace: true}
	t[CodeKeyWord] = StyleFormat{Foreground: keyword, Bold: true}
	t[CodeString] = StyleFormat{Foreground: str}
	t[CodeComment] = StyleFormat{Foreground: comment, Italic: true}
	t[CodeNumLiteral] = StyleFormat{Foreground: number}
	t[CodeType] = StyleFormat{Foreground: typ, Italic: true}
	t[CodeBuiltIn] = StyleFormat{Foreground: builtin}
	t[CodeOther] = StyleFormat{Foreground: hexColor(s.Base0A, t[CodeOther].Foreground)}
	return t
}

func importAlacritty(a alacrittyColors) Theme {
	t := DefaultTheme()
	bg := hexColor(a.Colors.Primary.Background, tcell.ColorBlack)
	fg := hexColor(a.Colors.Primary.Foreground, tcell.ColorWhite)

	t[CodeBlock] = StyleFormat{Foreground: fg, Background: bg, Monospace: true}
	t[CodeKeyWord] = StyleFormat{Foreground: hexColor(a.Colors.Normal["red"], t[CodeKeyWord].Foreground), Bold: true}
	t[CodeString] = StyleFormat{Foreground: hexColor(a.Colors.Normal["green"], t[CodeString].Foreground)}
	t[CodeComment] = StyleFormat{Foreground: hexColor(a.Colors.Bright["black"], t[CodeComment].Foreground), Italic: true}
	t[CodeNumLiteral] = StyleFormat{Foreground: hexColor(a.Colors.Normal["yellow"], t[CodeNumLiteral].Foreground)}
	t[CodeType] = StyleFormat{Foreground: hexColor(a.Colors.Normal["blue"], t[CodeType].Foreground), Italic: true}
	t[CodeBuiltIn] = StyleFormat{Foreground: hexColor(a.Colors.Normal["cyan"], t[CodeBuiltIn].Foreground)}
	return t
}

package adapter

import (
	"fmt"
	"strings"
)

type ColorTheme string

const (
	ThemeOff  ColorTheme = "off"
	ThemeHeat ColorTheme = "heat"
	ThemeGray ColorTheme = "gray"
)

type themeColors struct {
	hit    string
	hot    string
	warm   string
	cold   string
	header string
	reset  string
}

var themes = map[ColorTheme]themeColors{
	ThemeOff: {},
	ThemeHeat: {
		hit:    "\033[31m", // Red
		hot:    "\033[91m", // Bright red
		warm:   "\033[33m", // Yellow
		cold:   "\033[36m", // Cyan
		header: "\033[90m", // Dim gray
		reset:  "\033[0m",
	},
	ThemeGray: {
		hit:    "\033[97m", // Bright white
		hot:    "\033[37m", // White
		warm:   "\033[90m", // Gray
		cold:   "\033[90m", // Gray
		header: "\033[90m", // Gray
		reset:  "\033[0m",
	},
}

func (a *Adapter) SetTheme(theme ColorTheme) error {
	if _, ok := themes[theme]; !ok {
		return fmt.Errorf("invalid theme: %s (use: off, heat, gray)", theme)
	}
	a.theme = theme
	return nil
}

// showBoard renders the fogged view, colorizing glyphs per theme. Only
// the fogged view is ever rendered; the raw board never reaches here.
func (a *Adapter) showBoard() {
	ascii := a.game.FoggedBoard().ToASCII()
	if a.theme == ThemeOff {
		a.out(ascii)
		return
	}

	theme := themes[a.theme]
	var sb strings.Builder
	for _, char := range ascii {
		switch {
		case char == 'X':
			sb.WriteString(fmt.Sprintf("%s%c%s", theme.hit, char, theme.reset))
		case char == 'h':
			sb.WriteString(fmt.Sprintf("%s%c%s", theme.hot, char, theme.reset))
		case char == 'w':
			sb.WriteString(fmt.Sprintf("%s%c%s", theme.warm, char, theme.reset))
		case char == 'c':
			sb.WriteString(fmt.Sprintf("%s%c%s", theme.cold, char, theme.reset))
		case char >= '0' && char <= '9':
			sb.WriteString(fmt.Sprintf("%s%c%s", theme.header, char, theme.reset))
		default:
			sb.WriteRune(char)
		}
	}
	a.out(sb.String())
}

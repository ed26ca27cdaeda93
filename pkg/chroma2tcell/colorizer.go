package chroma2tcell

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/gdamore/tcell/v2"
)

var getStyle = styles.Get

var getFallbackStyle = func() *chroma.Style {
	return styles.Fallback
}

var matchLexer = lexers.Match

// TokenColor converts the foreground of tokenType in the named chroma style
// to a tcell color. Unknown style names fall back to the chroma default.
func TokenColor(styleName string, tokenType chroma.TokenType) (tcell.Color, bool) {
	style := getStyle(styleName)
	if style == nil {
		style = getFallbackStyle()
	}
	entry := style.Get(tokenType)
	if !entry.Colour.IsSet() {
		return tcell.ColorDefault, false
	}
	return tcell.GetColor(entry.Colour.String()), true
}

// FileNameColor picks a color for a file chroma knows how to highlight.
// Markup and data formats get a different token color than source code.
func FileNameColor(name, styleName string) (tcell.Color, bool) {
	lexer := matchLexer(name)
	if lexer == nil {
		return tcell.ColorDefault, false
	}
	return TokenColor(styleName, tokenTypeForLexer(lexer.Config().Name))
}

func tokenTypeForLexer(lexerName string) chroma.TokenType {
	switch strings.ToLower(lexerName) {
	case "markdown", "html", "xml", "restructuredtext", "tex":
		return chroma.NameTag
	case "json", "yaml", "toml", "ini", "csv", "properties":
		return chroma.LiteralString
	default:
		return chroma.Keyword
	}
}

package chroma2tcell

import (
	"testing"

	"github.com/alecthomas/chroma/v2"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

func TestTokenColor(t *testing.T) {
	// Note: Cannot use t.Parallel() because subtests modify global getStyle
	t.Run("known_style", func(t *testing.T) {
		color, ok := TokenColor("dracula", chroma.Keyword)
		assert.True(t, ok)
		assert.NotEqual(t, tcell.ColorDefault, color)
	})

	t.Run("unknown_style_uses_fallback", func(t *testing.T) {
		origGetStyle := getStyle
		defer func() { getStyle = origGetStyle }()
		getStyle = func(string) *chroma.Style { return nil }

		color, ok := TokenColor("no-such-style", chroma.Keyword)
		expected, expectedOK := func() (tcell.Color, bool) {
			entry := getFallbackStyle().Get(chroma.Keyword)
			if !entry.Colour.IsSet() {
				return tcell.ColorDefault, false
			}
			return tcell.GetColor(entry.Colour.String()), true
		}()
		assert.Equal(t, expectedOK, ok)
		assert.Equal(t, expected, color)
	})
}

func TestFileNameColor(t *testing.T) {
	t.Run("source_file", func(t *testing.T) {
		color, ok := FileNameColor("main.go", "dracula")
		assert.True(t, ok)
		keyword, _ := TokenColor("dracula", chroma.Keyword)
		assert.Equal(t, keyword, color)
	})

	t.Run("no_lexer", func(t *testing.T) {
		origMatchLexer := matchLexer
		defer func() { matchLexer = origMatchLexer }()
		matchLexer = func(string) chroma.Lexer { return nil }

		color, ok := FileNameColor("whatever", "dracula")
		assert.False(t, ok)
		assert.Equal(t, tcell.ColorDefault, color)
	})
}

func TestTokenTypeForLexer(t *testing.T) {
	assert.Equal(t, chroma.NameTag, tokenTypeForLexer("Markdown"))
	assert.Equal(t, chroma.LiteralString, tokenTypeForLexer("YAML"))
	assert.Equal(t, chroma.Keyword, tokenTypeForLexer("Go"))
}

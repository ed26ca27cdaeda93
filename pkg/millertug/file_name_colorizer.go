package millertug

import (
	"path/filepath"
	"strings"

	"github.com/datatug/millertug/pkg/chroma2tcell"
	"github.com/datatug/millertug/pkg/files"
	"github.com/gdamore/tcell/v2"
)

var fileColors = map[string]tcell.Color{
	"exe":  tcell.ColorRed,
	"go":   tcell.ColorAqua,
	"cpp":  tcell.ColorDodgerBlue,
	"c":    tcell.ColorDodgerBlue,
	"h":    tcell.ColorDodgerBlue,
	"cs":   tcell.ColorLime,
	"js":   tcell.ColorYellow,
	"ts":   tcell.ColorDeepSkyBlue,
	"html": tcell.ColorOrangeRed,
	"css":  tcell.ColorViolet,
	"sql":  tcell.ColorSpringGreen,
	"json": tcell.ColorGold,
	"xml":  tcell.ColorLightYellow,
	"yaml": tcell.ColorLightYellow,
	"yml":  tcell.ColorLightYellow,
	"md":   tcell.ColorBisque,
	"py":   tcell.ColorLightGreen,
	"rs":   tcell.ColorOrange,
	"sh":   tcell.ColorGreen,
	"txt":  tcell.ColorWhite,
	"jpg":  tcell.ColorMediumPurple,
	"jpeg": tcell.ColorMediumPurple,
	"png":  tcell.ColorMediumPurple,
	"gif":  tcell.ColorMediumPurple,
	"mp4":  tcell.ColorLightSalmon,
	"log":  tcell.ColorRosyBrown,
}

var fileNameColor = chroma2tcell.FileNameColor

// GetColorByEntry colors directories and links by kind and regular files
// by extension, then by chroma lexer match.
func GetColorByEntry(entry Entry, styles Styles) tcell.Color {
	switch entry.Kind {
	case files.KindDirectory:
		return styles.DirectoryColor
	case files.KindSymlink:
		return styles.SymlinkColor
	case files.KindUnknown:
		return styles.UnknownColor
	}
	return GetColorByFileName(entry.Name, styles)
}

func GetColorByFileName(name string, styles Styles) tcell.Color {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	if color, ok := fileColors[ext]; ok {
		return color
	}
	if styles.ChromaStyle != "" {
		if color, ok := fileNameColor(name, styles.ChromaStyle); ok {
			return color
		}
	}
	return styles.FileColor
}

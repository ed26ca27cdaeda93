package millertug

import (
	"github.com/gdamore/tcell/v2"
)

type Styles struct {
	DirectoryColor tcell.Color
	SymlinkColor   tcell.Color
	UnknownColor   tcell.Color
	FileColor      tcell.Color

	CommandLineColor tcell.Color

	// ChromaStyle names the chroma style used for files whose type a
	// chroma lexer recognizes but the extension table does not list.
	ChromaStyle string
}

const DefaultChromaStyle = "dracula"

var Style = Styles{
	DirectoryColor: tcell.ColorCornflowerBlue,
	SymlinkColor:   tcell.ColorDarkCyan,
	UnknownColor:   tcell.ColorGray,
	FileColor:      tcell.ColorWhiteSmoke,

	CommandLineColor: tcell.ColorWhite,

	ChromaStyle: DefaultChromaStyle,
}

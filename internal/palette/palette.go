// Package palette holds the ANSI color data behind the built-in themes.
package palette

// SGR attribute prefixes shared by all palettes.
const (
	Bold          = "\x1b[1m"
	Italic        = "\x1b[3m"
	Underline     = "\x1b[4m"
	Strikethrough = "\x1b[9m"
)

// Palette names the ANSI prefix for each diff role.
type Palette struct {
	Context      string
	Changed      string
	Inserted     string
	DeletionMark string
}

// PaletteDefault uses the basic 16-color set so it degrades everywhere.
var PaletteDefault = Palette{
	Context:      "",
	Changed:      "\x1b[33m",
	Inserted:     "\x1b[32m",
	DeletionMark: "\x1b[31m",
}

var PaletteGruvbox = Palette{
	Context:      "\x1b[38;5;223m",
	Changed:      "\x1b[38;5;214m",
	Inserted:     "\x1b[38;5;142m",
	DeletionMark: "\x1b[38;5;167m",
}

var PaletteDracula = Palette{
	Context:      "\x1b[38;5;253m",
	Changed:      "\x1b[38;5;228m",
	Inserted:     "\x1b[38;5;84m",
	DeletionMark: "\x1b[38;5;212m",
}

var PaletteNord = Palette{
	Context:      "\x1b[38;5;188m",
	Changed:      "\x1b[38;5;222m",
	Inserted:     "\x1b[38;5;108m",
	DeletionMark: "\x1b[38;5;174m",
}

var PaletteSolarizedDark = Palette{
	Context:      "\x1b[38;5;244m",
	Changed:      "\x1b[38;5;136m",
	Inserted:     "\x1b[38;5;64m",
	DeletionMark: "\x1b[38;5;160m",
}

var PaletteSolarizedLight = Palette{
	Context:      "\x1b[38;5;241m",
	Changed:      "\x1b[38;5;136m",
	Inserted:     "\x1b[38;5;64m",
	DeletionMark: "\x1b[38;5;160m",
}

var PaletteGithubDark = Palette{
	Context:      "\x1b[38;5;252m",
	Changed:      "\x1b[38;5;179m",
	Inserted:     "\x1b[38;5;114m",
	DeletionMark: "\x1b[38;5;203m",
}

var PaletteGithubLight = Palette{
	Context:      "\x1b[38;5;236m",
	Changed:      "\x1b[38;5;130m",
	Inserted:     "\x1b[38;5;28m",
	DeletionMark: "\x1b[38;5;160m",
}

var PaletteTokyoNight = Palette{
	Context:      "\x1b[38;5;146m",
	Changed:      "\x1b[38;5;179m",
	Inserted:     "\x1b[38;5;115m",
	DeletionMark: "\x1b[38;5;210m",
}

var PaletteCatppuccinMocha = Palette{
	Context:      "\x1b[38;5;189m",
	Changed:      "\x1b[38;5;223m",
	Inserted:     "\x1b[38;5;151m",
	DeletionMark: "\x1b[38;5;211m",
}

package ui

// IconChoice is one entry in the fixed icon picker.
type IconChoice struct {
	Name        string // token shown in the picker
	Glyph       string // prefix stored in the record text
	Description string
}

// iconNone is the "no icon" sentinel name.
const iconNone = "none"

// Icons is the fixed catalogue offered by the add flow. The chosen
// glyph is prefixed to the label with one space; "none" prefixes
// nothing.
var Icons = []IconChoice{
	{iconNone, "", "Just plain text"},
	{"play", "▶", "A play icon"},
	{"debug", "⊳", "A debug icon"},
	{"terminal", ">_", "A terminal icon"},
	{"check", "✓", "A checkmark icon"},
	{"cross", "✗", "An X icon"},
	{"sync", "↻", "A sync/refresh icon"},
	{"flame", "🔥", "A flame icon"},
	{"rocket", "🚀", "A rocket icon for deploys"},
	{"bug", "🐞", "A bug icon for debugging"},
	{"trash", "🗑", "A trash/delete icon"},
	{"gear", "⚙", "A settings gear icon"},
	{"upload", "⇪", "An upload icon"},
	{"source-control", "⎇", "A git/source control icon"},
}

// ColorChoice is one entry in the fixed color picker.
type ColorChoice struct {
	Name        string // token stored in the record ("" for default)
	Description string
}

// colorDefault is the "theme default" sentinel name.
const colorDefault = "default"

// Colors is the fixed catalogue offered by the add/edit flows.
var Colors = []ColorChoice{
	{colorDefault, "Theme default"},
	{"red", "Red"},
	{"green", "Green"},
	{"yellow", "Yellow"},
	{"blue", "Blue"},
	{"magenta", "Magenta"},
	{"cyan", "Cyan"},
	{"orange", "Orange"},
}

// ComposeText joins an icon glyph and a label into the stored button
// text: glyph plus one space when an icon was chosen, else the label
// alone.
func ComposeText(glyph, label string) string {
	if glyph == "" {
		return label
	}
	return glyph + " " + label
}

package tui

import "github.com/charmbracelet/lipgloss"

// Color palette - keeping it minimal and accessible.
var (
	ColorPrimary   = lipgloss.Color("39")  // Blue
	ColorSecondary = lipgloss.Color("245") // Gray
	ColorSuccess   = lipgloss.Color("34")  // Green
	ColorError     = lipgloss.Color("196") // Red
	ColorMuted     = lipgloss.Color("240") // Dark gray
)

// Styles for tree and query output.
var (
	FolderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	FileStyle = lipgloss.NewStyle()

	// Box-drawing connectors between a folder and its children
	BranchStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// Byte counts and other annotations
	DescriptionStyle = lipgloss.NewStyle().
				Foreground(ColorSecondary)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)
)

// Tree connectors.
const (
	SymbolBranch     = "├── "
	SymbolLastBranch = "└── "
	SymbolPipe       = "│   "
	SymbolSpace      = "    "
)

// Palette applies styles only when styling is enabled, so plain output
// stays byte-identical to what scripts expect.
type Palette struct {
	styled bool
}

// NewPalette returns a palette for the given mode.
func NewPalette(mode Mode) Palette {
	return Palette{styled: mode == ModeStyled}
}

func (p Palette) render(s lipgloss.Style, text string) string {
	if !p.styled {
		return text
	}
	return s.Render(text)
}

// Folder, File, Branch, Description, Success and Error render text in the
// matching style.
func (p Palette) Folder(text string) string      { return p.render(FolderStyle, text) }
func (p Palette) File(text string) string        { return p.render(FileStyle, text) }
func (p Palette) Branch(text string) string      { return p.render(BranchStyle, text) }
func (p Palette) Description(text string) string { return p.render(DescriptionStyle, text) }
func (p Palette) Success(text string) string     { return p.render(SuccessStyle, text) }
func (p Palette) Error(text string) string       { return p.render(ErrorStyle, text) }

package cli

import "github.com/charmbracelet/lipgloss"

// Temple palette shared by the CLI output and help
var (
	SandLight = lipgloss.Color("#EDC9AF") // Pale dune
	SandGold  = lipgloss.Color("#D4A24C") // Gilded sandstone
	Sandstone = lipgloss.Color("#C2894B") // Wall brick
	IceBlue   = lipgloss.Color("#B4D2F0") // Frozen cave accent
	DesertRed = lipgloss.Color("#C0392B") // Errors
	DustGray  = lipgloss.Color("#9C8F80") // Subtle text
)

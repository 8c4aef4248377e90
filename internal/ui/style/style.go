// Package style provides shared UI styling primitives including palette colors
// and icons for consistent visual presentation across the CLI.
package style

import "github.com/charmbracelet/lipgloss"

// Palette colors, matching the default Quasar brand palette.
var (
	Primary  = lipgloss.Color("#1976D2")
	Slate    = lipgloss.Color("#667085")
	Positive = lipgloss.Color("#21BA45")
	Negative = lipgloss.Color("#C10015")
	Info     = lipgloss.Color("#31CCEC")
	Warning  = lipgloss.Color("#F2C037")
)

// Icons.
const (
	Check = "✓"
	Cross = "✗"
	Bang  = "!"
	Arrow = "→"
	Tilde = "~"
)

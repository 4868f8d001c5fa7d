// Package styles provides reusable lipgloss-based TUI components.
package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconKeyboard = "\uf11c" // keyboard
	IconVersion  = "\uf02b" // tag
	IconGithub   = "\uf09b" // github
	IconGo       = "\ue627" // go gopher
	IconArrow    = "\uf061" // arrow right

	IconCheck   = "\uf00c" // check
	IconX       = "\uf00d" // x
	IconWarning = "\uf071" // warning
	IconInfo    = "\uf05a" // info

	IconConfig   = "\ue615" // config
	IconDatabase = "\uf1c0" // database
	IconGlobe    = "\uf0ac" // site rules
	IconImport   = "\uf019" // download

	IconToggleOn  = "\uf205"
	IconToggleOff = "\uf204"

	IconCursor = "\uf054" // chevron-right
)

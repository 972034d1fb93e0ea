package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings  = "⚙"
	IconPlay      = "▶"
	IconPause     = "⏸"
	IconFirst     = "⏮"
	IconPrev      = "⏪"
	IconNext      = "⏩"
	IconLast      = "⏭"
	IconFolder    = "📁"
	IconSeparator = " · "
)

// Text fragments
const (
	DashPlaceholder    = "—"
	FrameCounterFormat = "%d/%d"
)

// Layout sizing
const (
	WindowWidth  float32 = 1200
	WindowHeight float32 = 700

	FrameMinWidth  float32 = 480
	FrameMinHeight float32 = 480

	FPSLabelWidth float32 = 48
)

// Split layout: share of the window given to the browser panel
const BrowserSplitOffset = 0.22

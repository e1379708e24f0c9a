package config

// Layout constants.
const (
	// LayoutTop is the number of blank lines above the title.
	LayoutTop = 1

	// LayoutLeft is the indentation of every editor line.
	LayoutLeft = 2

	// TitleRows covers the title and the blank line under it.
	TitleRows = 2

	// CellWidth is the width of one field column.
	CellWidth = 4

	// ButtonWidth is the clickable width of a stepper button.
	ButtonWidth = 3

	// SeparatorWidth is the gap between field columns.
	SeparatorWidth = 3
)

// Button glyphs.
const (
	IncrementLabel = "[+]"
	DecrementLabel = "[-]"
	FieldSeparator = " : "
)

package ui

// Layout constants, in terminal cells
const (
	DefaultWidth  = 80
	DefaultHeight = 24

	HorizontalPadding = 1
	CardGap           = 1
	ChipGap           = 1
	MinCardWidth      = 16
	MinGridHeight     = 3

	// Lines used above and below the grid: title, search box, chip strip,
	// status line and help line.
	HeaderHeight = 1
	SearchHeight = 3
	ChipsHeight  = 3
	StatusHeight = 1
	HelpHeight   = 1
)

// chromeHeight is everything on screen except the grid
func chromeHeight() int {
	return HeaderHeight + SearchHeight + ChipsHeight + StatusHeight + HelpHeight
}

// contentWidth returns the usable width inside the horizontal padding
func contentWidth(width int) int {
	return max(width-2*HorizontalPadding, MinCardWidth)
}

// cardWidth returns the outer width of one card in the two column grid
func cardWidth(width int) int {
	return max((contentWidth(width)-CardGap)/2, MinCardWidth)
}

// gridHeight returns the viewport height left for the grid
func gridHeight(height int) int {
	return max(height-chromeHeight(), MinGridHeight)
}

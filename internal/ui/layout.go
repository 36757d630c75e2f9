package ui

// Card box geometry, in terminal cells. Heights include the border.
const (
	// CardHeight is the rendered height of one grid cell.
	CardHeight = 7

	// CardMinWidth is the narrowest card the grid will lay out when the
	// column count is picked from the terminal width.
	CardMinWidth = 28

	// CardTextLines is how many wrapped lines of card text fit in a cell.
	CardTextLines = 2
)

// Chrome heights around the grid.
const (
	headerHeight = 1
	footerHeight = 1
)

// Help and error panels.
const (
	helpModalWidth  = 44
	errorPanelWidth = 60
)

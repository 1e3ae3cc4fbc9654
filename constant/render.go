package constant

import "time"

// Frame loop
const (
	FrameRate     = 60
	FrameInterval = time.Second / FrameRate
)

// Trail kept by a session for drawing the path already flown
const TrailCapacity = 512

// Terminal layout
const (
	// GraphMargin is the cell margin reserved for axis labels around a graph
	GraphMarginLeft   = 6
	GraphMarginBottom = 2
	GraphMarginTop    = 1
	GraphMarginRight  = 2

	// CellAspect is the height/width ratio of a terminal cell
	CellAspect = 2.0

	// GridSpacing is the target distance between grid lines, in cells
	GridSpacingX = 10
	GridSpacingY = 4
)

// Desktop window layout (pixels)
const (
	WindowWidth  = 900
	WindowHeight = 700
	SimHeight    = 350
	PixelMargin  = 50
	PixelScale   = 10.0 // pixels per metre
)

// internal/defs/maps.go
package defs

import "image/color"

// Rect is an axis-aligned rectangle in arena pixels.
type Rect struct {
	X, Y, W, H float64
}

// ContainsStrict reports whether (x, y) lies strictly inside r.
func (r Rect) ContainsStrict(x, y float64) bool {
	return x > r.X && x < r.X+r.W && y > r.Y && y < r.Y+r.H
}

// Inflate grows r by d on every side.
func (r Rect) Inflate(d float64) Rect {
	return Rect{X: r.X - d, Y: r.Y - d, W: r.W + 2*d, H: r.H + 2*d}
}

// Decoration is a static obstacle drawn on the map.
type Decoration struct {
	Rect
	Color color.RGBA
}

// MapDefinition describes one arena layout.
type MapDefinition struct {
	ID          int
	Background  color.RGBA
	Grid        color.RGBA
	Decorations []Decoration
}

var (
	greyBlock   = color.RGBA{0x4a, 0x4a, 0x4a, 0xff}
	redBlock    = color.RGBA{0x5a, 0x3a, 0x3a, 0xff}
	blueBlock   = color.RGBA{0x3a, 0x3a, 0x5a, 0xff}
	purpleBlock = color.RGBA{0x59, 0x3a, 0x70, 0xff}
)

// MapLibrary holds the built-in maps in selection order. The first map is
// used at game start.
var MapLibrary = []MapDefinition{
	{
		ID:         1,
		Background: color.RGBA{0x1a, 0x1a, 0x1a, 0xff},
		Grid:       color.RGBA{0x33, 0x33, 0x33, 0xff},
		Decorations: []Decoration{
			{Rect: Rect{X: 100, Y: 100, W: 50, H: 150}, Color: greyBlock},
			{Rect: Rect{X: 650, Y: 350, W: 50, H: 150}, Color: greyBlock},
			{Rect: Rect{X: 300, Y: 250, W: 200, H: 50}, Color: greyBlock},
		},
	},
	{
		ID:         2,
		Background: color.RGBA{0x2a, 0x0a, 0x0a, 0xff},
		Grid:       color.RGBA{0x44, 0x22, 0x22, 0xff},
		Decorations: []Decoration{
			{Rect: Rect{X: 200, Y: 200, W: 100, H: 100}, Color: redBlock},
			{Rect: Rect{X: 500, Y: 300, W: 100, H: 100}, Color: redBlock},
		},
	},
	{
		ID:         3,
		Background: color.RGBA{0x0a, 0x2a, 0x0a, 0xff},
		Grid:       color.RGBA{0x22, 0x44, 0x22, 0xff},
	},
	{
		ID:         4,
		Background: color.RGBA{0x0a, 0x0a, 0x2a, 0xff},
		Grid:       color.RGBA{0x22, 0x22, 0x44, 0xff},
		Decorations: []Decoration{
			{Rect: Rect{X: 0, Y: 275, W: 800, H: 50}, Color: blueBlock},
		},
	},
	{
		ID:         5,
		Background: color.RGBA{0x2d, 0x0b, 0x45, 0xff},
		Grid:       color.RGBA{0x48, 0x22, 0x64, 0xff},
		Decorations: []Decoration{
			{Rect: Rect{X: 150, Y: 150, W: 100, H: 100}, Color: purpleBlock},
			{Rect: Rect{X: 550, Y: 150, W: 100, H: 100}, Color: color.RGBA{0x59, 0x3a, 0x3a, 0x70}},
			{Rect: Rect{X: 150, Y: 350, W: 100, H: 100}, Color: purpleBlock},
			{Rect: Rect{X: 550, Y: 350, W: 100, H: 100}, Color: purpleBlock},
		},
	},
}

// ExitSide names the arena edge a portal sits on.
type ExitSide string

const (
	ExitTop    ExitSide = "top"
	ExitBottom ExitSide = "bottom"
	ExitLeft   ExitSide = "left"
	ExitRight  ExitSide = "right"
)

// Exit is a portal zone revealed during exit selection.
type Exit struct {
	Rect
	Side ExitSide
}

// ExitPortals returns the four portals at the edge midpoints of a
// width x height arena.
func ExitPortals(width, height, size float64) []Exit {
	half := size / 2
	return []Exit{
		{Rect: Rect{X: width/2 - half, Y: 0, W: size, H: half}, Side: ExitTop},
		{Rect: Rect{X: width/2 - half, Y: height - half, W: size, H: half}, Side: ExitBottom},
		{Rect: Rect{X: 0, Y: height/2 - half, W: half, H: size}, Side: ExitLeft},
		{Rect: Rect{X: width - half, Y: height/2 - half, W: half, H: size}, Side: ExitRight},
	}
}

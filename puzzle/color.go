package puzzle

import "strconv"

// Color is the fill token written into board cells. The zero value is Empty.
// Once a piece is placed only its Color remains on the board.
type Color uint8

const (
	Empty Color = iota
	Yellow
	Cyan
	Purple
	Red
	Emerald
	Pink
	Indigo
	Blue
	Orange
	Green
)

var colorNames = [...]string{
	Empty:   "empty",
	Yellow:  "yellow",
	Cyan:    "cyan",
	Purple:  "purple",
	Red:     "red",
	Emerald: "emerald",
	Pink:    "pink",
	Indigo:  "indigo",
	Blue:    "blue",
	Orange:  "orange",
	Green:   "green",
}

var colorRGB = [...][3]uint8{
	Empty:   {51, 65, 85},
	Yellow:  {250, 204, 21},
	Cyan:    {34, 211, 238},
	Purple:  {168, 85, 247},
	Red:     {239, 68, 68},
	Emerald: {52, 211, 153},
	Pink:    {219, 39, 119},
	Indigo:  {79, 70, 229},
	Blue:    {96, 165, 250},
	Orange:  {234, 88, 12},
	Green:   {132, 204, 22},
}

func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "color(" + strconv.Itoa(int(c)) + ")"
}

// Filled reports whether the token marks an occupied cell.
func (c Color) Filled() bool {
	return c != Empty
}

// Glyph returns a single rune used when printing boards.
func (c Color) Glyph() rune {
	if c == Empty {
		return '.'
	}
	if int(c) >= len(colorNames) {
		return '#'
	}
	return rune(colorNames[c][0] - 'a' + 'A')
}

// RGB returns the display color renderers use for the token.
func (c Color) RGB() [3]uint8 {
	if int(c) < len(colorRGB) {
		return colorRGB[c]
	}
	return [3]uint8{255, 255, 255}
}

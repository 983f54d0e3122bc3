// Package glyph holds the pixel-art alphabet and lays text out as particles.
package glyph

import "fmt"

// Rows is the height of every glyph.
const Rows = 5

// Glyph is an immutable grid of lit cells.
type Glyph struct {
	cells [][]bool
}

// Width returns the column count.
func (g Glyph) Width() int {
	if len(g.cells) == 0 {
		return 0
	}
	return len(g.cells[0])
}

// Height returns the row count.
func (g Glyph) Height() int { return len(g.cells) }

// Lit reports whether the cell at (row, col) is part of the shape.
func (g Glyph) Lit(row, col int) bool {
	return g.cells[row][col]
}

// Lookup returns the glyph for r. Space and unknown runes have none.
func Lookup(r rune) (Glyph, bool) {
	g, ok := glyphs[r]
	return g, ok
}

// Supported reports whether r has a glyph.
func Supported(r rune) bool {
	_, ok := glyphs[r]
	return ok
}

var glyphs = make(map[rune]Glyph, len(shapes))

func init() {
	for r, rows := range shapes {
		width := len(rows[0])
		cells := make([][]bool, Rows)
		for i, row := range rows {
			if len(row) != width {
				panic(fmt.Sprintf("glyph %q: row %d is %d wide, want %d", r, i, len(row), width))
			}
			cells[i] = make([]bool, width)
			for j := 0; j < width; j++ {
				cells[i][j] = row[j] == '#'
			}
		}
		glyphs[r] = Glyph{cells: cells}
	}
}

// shapes is the alphabet. '#' is a lit cell.
var shapes = map[rune][Rows]string{
	'A': {".###.", "#...#", "#####", "#...#", "#...#"},
	'B': {"####.", "#...#", "####.", "#...#", "####."},
	'C': {".####", "#....", "#....", "#....", ".####"},
	'D': {"####.", "#...#", "#...#", "#...#", "####."},
	'E': {"#####", "#....", "####.", "#....", "#####"},
	'F': {"#####", "#....", "####.", "#....", "#...."},
	'G': {".####", "#....", "#..##", "#...#", ".####"},
	'H': {"#...#", "#...#", "#####", "#...#", "#...#"},
	'I': {"###", ".#.", ".#.", ".#.", "###"},
	'J': {"..###", "...#.", "...#.", "#..#.", ".##.."},
	'K': {"#...#", "#..#.", "###..", "#..#.", "#...#"},
	'L': {"#....", "#....", "#....", "#....", "#####"},
	'M': {"#...#", "##.##", "#.#.#", "#...#", "#...#"},
	'N': {"#...#", "##..#", "#.#.#", "#..##", "#...#"},
	'O': {".###.", "#...#", "#...#", "#...#", ".###."},
	'P': {"####.", "#...#", "####.", "#....", "#...."},
	'Q': {".###.", "#...#", "#.#.#", "#..#.", ".##.#"},
	'R': {"####.", "#...#", "####.", "#..#.", "#...#"},
	'S': {".####", "#....", ".###.", "....#", "####."},
	'T': {"#####", "..#..", "..#..", "..#..", "..#.."},
	'U': {"#...#", "#...#", "#...#", "#...#", ".###."},
	'V': {"#...#", "#...#", "#...#", ".#.#.", "..#.."},
	'W': {"#...#", "#...#", "#.#.#", "##.##", "#...#"},
	'X': {"#...#", ".#.#.", "..#..", ".#.#.", "#...#"},
	'Y': {"#...#", ".#.#.", "..#..", "..#..", "..#.."},
	'Z': {"#####", "...#.", "..#..", ".#...", "#####"},

	'0': {".###.", "#..##", "#.#.#", "##..#", ".###."},
	'1': {".#.", "##.", ".#.", ".#.", "###"},
	'2': {"####.", "....#", ".###.", "#....", "#####"},
	'3': {"####.", "....#", ".###.", "....#", "####."},
	'4': {"#..#.", "#..#.", "#####", "...#.", "...#."},
	'5': {"#####", "#....", "####.", "....#", "####."},
	'6': {".###.", "#....", "####.", "#...#", ".###."},
	'7': {"#####", "....#", "...#.", "..#..", "..#.."},
	'8': {".###.", "#...#", ".###.", "#...#", ".###."},
	'9': {".###.", "#...#", ".####", "....#", ".###."},

	'.':  {".", ".", ".", ".", "#"},
	',':  {"..", "..", "..", ".#", "#."},
	'!':  {"#", "#", "#", ".", "#"},
	'?':  {"###.", "...#", ".##.", "....", ".#.."},
	'-':  {"...", "...", "###", "...", "..."},
	':':  {".", "#", ".", "#", "."},
	'\'': {"#", "#", ".", ".", "."},
	'"':  {"#.#", "#.#", "...", "...", "..."},
	'&':  {".##..", "#..#.", ".##.#", "#..#.", ".##.#"},
	'/':  {"....#", "...#.", "..#..", ".#...", "#...."},
	'(':  {".#", "#.", "#.", "#.", ".#"},
	')':  {"#.", ".#", ".#", ".#", "#."},
	'+':  {"...", ".#.", "###", ".#.", "..."},
	'=':  {"...", "###", "...", "###", "..."},
	'#':  {".#.#.", "#####", ".#.#.", "#####", ".#.#."},
}

package board

// direction is a step in (layer, row, col) space.
type direction struct {
	dl, dr, dc int
}

var (
	// intraLayerDirections are scanned on every layer.
	intraLayerDirections = []direction{
		{0, 0, 1},  // horizontal
		{0, 1, 0},  // vertical
		{0, 1, 1},  // diagonal
		{0, 1, -1}, // anti-diagonal
	}

	// crossLayerDirections advance one layer per step.
	crossLayerDirections = []direction{
		{1, 0, 0},
		{1, 1, 1},
		{1, 1, -1},
		{1, -1, 1},
		{1, -1, -1},
	}
)

func (that *Board) directions() []direction {
	if !that.is3D || that.layers < that.winCondition {
		return intraLayerDirections
	}

	dirs := make([]direction, 0, len(intraLayerDirections)+len(crossLayerDirections))
	dirs = append(dirs, intraLayerDirections...)

	return append(dirs, crossLayerDirections...)
}

// enumerateLines collects the cell indices of every line of winCondition
// cells that fits on the board, for every direction and start cell.
func (that *Board) enumerateLines() [][]int {
	var lines [][]int

	for _, dir := range that.directions() {
		for layer := range that.layers {
			for row := range that.size {
				for col := range that.size {
					start := Move{Row: row, Col: col, Layer: layer}
					if line, ok := that.line(start, dir); ok {
						lines = append(lines, line)
					}
				}
			}
		}
	}

	return lines
}

// line walks winCondition cells from start along dir.
func (that *Board) line(start Move, dir direction) ([]int, bool) {
	last := that.winCondition - 1
	end := Move{
		Row:   start.Row + last*dir.dr,
		Col:   start.Col + last*dir.dc,
		Layer: start.Layer + last*dir.dl,
	}
	if !that.IsValidPosition(end) {
		return nil, false
	}

	line := make([]int, that.winCondition)
	for i := range line {
		line[i] = that.index(Move{
			Row:   start.Row + i*dir.dr,
			Col:   start.Col + i*dir.dc,
			Layer: start.Layer + i*dir.dl,
		})
	}

	return line, true
}

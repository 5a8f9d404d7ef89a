package universe

//Wrap returns the position reached from (row, col) by moving dRow rows and dCol columns
//on a width x height torus. Any delta is accepted, including ones larger than the grid.
func Wrap(row, col, dRow, dCol, width, height int) (int, int) {
	return wrapAxis(row+dRow, height), wrapAxis(col+dCol, width)
}

func wrapAxis(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

//neighbourDeltas lists the 8 surrounding positions, always all 8 of them:
//on grids narrower than 3 the same cell is counted more than once
var neighbourDeltas = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

//liveNeighbours counts the Alive cells around (row, col) in the current generation
func (u *Universe) liveNeighbours(row, col int) int {
	n := 0
	for _, d := range neighbourDeltas {
		r, c := Wrap(row, col, d[0], d[1], u.width, u.height)
		n += int(u.cells[r*u.width+c])
	}
	return n
}

//nextState applies B3/S23 to a cell with n live neighbours
func nextState(c Cell, n int) Cell {
	switch {
	case n == 3:
		return Alive
	case n == 2 && c == Alive:
		return Alive
	}
	return Dead
}

package universe

import (
	"fmt"
	"math/rand"
	"strings"
	"unsafe"
)

//Universe is a fixed-size toroidal grid of cells
//cells are stored row-major, offset = row*width + col
//A Universe is not safe for concurrent use, the host has to serialise access
type Universe struct {
	width  int
	height int
	cells  []Cell
	next   []Cell //scratch buffer, swapped with cells on every tick
}

//New creates the universe with the default deterministic pattern:
//the cell at index i is alive when i is even or divisible by 7
func New(width int, height int) (*Universe, error) {
	u, err := NewBlank(width, height)
	if err != nil {
		return nil, err
	}
	for i := range u.cells {
		if i%2 == 0 || i%7 == 0 {
			u.cells[i] = Alive
		}
	}
	return u, nil
}

//NewBlank creates the universe with all cells dead
func NewBlank(width int, height int) (*Universe, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %d x %d", ErrInvalidDimensions, width, height)
	}
	return &Universe{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
		next:   make([]Cell, width*height),
	}, nil
}

//FromCells creates the universe from a saved generation, the buffer is copied
func FromCells(width int, height int, cells []Cell) (*Universe, error) {
	u, err := NewBlank(width, height)
	if err != nil {
		return nil, err
	}
	if len(cells) != width*height {
		return nil, fmt.Errorf("%w: got %d cells for %d x %d", ErrInvalidCells, len(cells), width, height)
	}
	for i, c := range cells {
		if c != Dead && c != Alive {
			return nil, fmt.Errorf("%w: value %d at offset %d", ErrInvalidCells, c, i)
		}
	}
	copy(u.cells, cells)
	return u, nil
}

//Width returns the number of columns
func (u *Universe) Width() int {
	return u.width
}

//Height returns the number of rows
func (u *Universe) Height() int {
	return u.height
}

//Cells returns the current generation without copying.
//The slice is only valid until the next Tick, ToggleCell, Randomize, Clear or SetCells call.
func (u *Universe) Cells() []Cell {
	return u.cells
}

//Bytes returns the current generation as raw bytes, 0 dead and 1 alive, without copying.
//It shares the memory of Cells and has the same validity.
func (u *Universe) Bytes() []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(u.cells))), len(u.cells))
}

//Snapshot returns a copy of the current generation
func (u *Universe) Snapshot() []Cell {
	s := make([]Cell, len(u.cells))
	copy(s, u.cells)
	return s
}

//Index returns the offset of (row, col) in the cell buffer
func (u *Universe) Index(row int, col int) (int, error) {
	if row < 0 || col < 0 || row >= u.height || col >= u.width {
		return 0, fmt.Errorf("%w: (%d, %d) in %d x %d", ErrOutOfRange, row, col, u.width, u.height)
	}
	return row*u.width + col, nil
}

//Tick computes the next generation for every cell from the current one
//and replaces the whole grid at once.
//It returns the number of live cells in the new generation and whether anything changed.
func (u *Universe) Tick() (live int, changed bool) {
	for row := 0; row < u.height; row++ {
		for col := 0; col < u.width; col++ {
			idx := row*u.width + col
			c := u.cells[idx]
			n := nextState(c, u.liveNeighbours(row, col))
			if n == Alive {
				live++
			}
			changed = changed || n != c
			u.next[idx] = n
		}
	}
	u.cells, u.next = u.next, u.cells
	return
}

//ToggleCell flips the cell at (row, col), neighbours are not touched
func (u *Universe) ToggleCell(row int, col int) error {
	idx, err := u.Index(row, col)
	if err != nil {
		return err
	}
	u.cells[idx].Toggle()
	return nil
}

//SetCells marks every listed (row, col) alive.
//Coordinates are validated first, on error the grid is left untouched.
func (u *Universe) SetCells(coords [][2]int) error {
	idxs := make([]int, 0, len(coords))
	for _, rc := range coords {
		idx, err := u.Index(rc[0], rc[1])
		if err != nil {
			return err
		}
		idxs = append(idxs, idx)
	}
	for _, idx := range idxs {
		u.cells[idx] = Alive
	}
	return nil
}

//Randomize makes each cell alive with probability 1/2.
//r may be nil, then the math/rand global source is used.
func (u *Universe) Randomize(r *rand.Rand) {
	intn := rand.Intn
	if r != nil {
		intn = r.Intn
	}
	for i := range u.cells {
		u.cells[i] = Cell(intn(2))
	}
}

//Clear kills all cells
func (u *Universe) Clear() {
	for i := range u.cells {
		u.cells[i] = Dead
	}
}

//LiveCells counts the alive cells of the current generation
func (u *Universe) LiveCells() int {
	n := 0
	for _, c := range u.cells {
		n += int(c)
	}
	return n
}

//String renders the grid one row per line using ◻ for dead and ◼ for alive cells
func (u *Universe) String() string {
	var b strings.Builder
	for row := 0; row < u.height; row++ {
		for _, c := range u.cells[row*u.width : (row+1)*u.width] {
			b.WriteString(c.String())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

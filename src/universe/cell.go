package universe

//Cell is the state of one grid position, stored as a single byte
//so a host can scan the buffer without translation
type Cell uint8

const (
	Dead  Cell = 0
	Alive Cell = 1
)

//Toggle flips the cell between Dead and Alive
func (c *Cell) Toggle() {
	if *c == Alive {
		*c = Dead
	} else {
		*c = Alive
	}
}

//IsAlive reports whether the cell is Alive
func (c Cell) IsAlive() bool {
	return c == Alive
}

func (c Cell) String() string {
	if c == Alive {
		return "◼"
	}
	return "◻"
}

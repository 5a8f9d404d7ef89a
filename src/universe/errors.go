package universe

import "errors"

var (
	//ErrInvalidDimensions is returned when width or height is not positive
	ErrInvalidDimensions = errors.New("invalid universe dimensions")
	//ErrOutOfRange is returned for a (row, col) outside the grid
	ErrOutOfRange = errors.New("cell coordinates out of range")
	//ErrInvalidCells is returned when a cell buffer does not fit the grid
	ErrInvalidCells = errors.New("invalid cell buffer")
)

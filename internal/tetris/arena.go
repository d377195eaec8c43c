package tetris

const (
	Width  = 12
	Height = 20

	rowPoints = 10
)

type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Arena - the occupancy grid, indexed [y][x] with row 0 at the top.
type Arena Matrix

func NewArena(width, height int) Arena {
	arena := make(Arena, height)
	for y := range arena {
		arena[y] = make([]int, width)
	}

	return arena
}

func (that Arena) Width() int {
	if len(that) == 0 {
		return 0
	}

	return len(that[0])
}

// Collides - reports whether piece at pos overlaps an occupied cell.
// Cells outside the arena, including above the top row, count as occupied.
func (that Arena) Collides(piece Matrix, pos Point) bool {
	for y, row := range piece {
		for x, value := range row {
			if value == 0 {
				continue
			}

			ay, ax := y+pos.Y, x+pos.X
			if ay < 0 || ay >= len(that) || ax < 0 || ax >= len(that[ay]) {
				return true
			}

			if that[ay][ax] != 0 {
				return true
			}
		}
	}

	return false
}

// Merge - copies the occupied cells of piece into the arena.
func (that Arena) Merge(piece Matrix, pos Point) {
	for y, row := range piece {
		for x, value := range row {
			if value != 0 {
				that[y+pos.Y][x+pos.X] = value
			}
		}
	}
}

// Sweep - removes every full row, shifting the rows above down and inserting
// an empty row at the top. Each removed row is worth twice the previous one
// within a single pass: 10, 20, 40...
func (that Arena) Sweep() (rows int, points int) {
	multiplier := 1

	for y := len(that) - 1; y >= 0; {
		if !isFull(that[y]) {
			y--
			continue
		}

		copy(that[1:y+1], that[:y])
		that[0] = make([]int, len(that[y]))

		rows++
		points += multiplier * rowPoints
		multiplier *= 2
	}

	return rows, points
}

func (that Arena) Clear() {
	for _, row := range that {
		clear(row)
	}
}

func (that Arena) Clone() Arena {
	return Arena(Matrix(that).Clone())
}

func isFull(row []int) bool {
	if len(row) == 0 {
		return false
	}

	for _, value := range row {
		if value == 0 {
			return false
		}
	}

	return true
}

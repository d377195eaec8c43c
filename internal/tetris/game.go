// Package tetris is the local falling-piece simulation of one player.
// It is not safe for concurrent use; the owning session serialises access.
package tetris

import "time"

const DefaultDropInterval = 500 * time.Millisecond

// DropResult - what a single gravity step did.
type DropResult struct {
	Locked    bool `json:"locked"`
	Cleared   int  `json:"cleared"`
	Points    int  `json:"points"`
	ToppedOut bool `json:"toppedOut"`
}

// Frame - render snapshot: the arena with the active piece drawn in.
type Frame struct {
	Cells Matrix `json:"cells"`
	Score int    `json:"score"`
	Over  bool   `json:"over"`
}

type Game struct {
	arena  Arena
	piece  Matrix
	pos    Point
	score  int
	over   bool
	source PieceSource

	dropInterval time.Duration
	dropCounter  time.Duration
}

func NewGame(source PieceSource, dropInterval time.Duration) *Game {
	if dropInterval <= 0 {
		dropInterval = DefaultDropInterval
	}

	game := &Game{
		arena:        NewArena(Width, Height),
		source:       source,
		dropInterval: dropInterval,
	}
	game.spawn()

	return game
}

func (that *Game) Score() int {
	return that.score
}

func (that *Game) IsOver() bool {
	return that.over
}

func (that *Game) Position() Point {
	return that.pos
}

func (that *Game) Piece() Matrix {
	return that.piece.Clone()
}

func (that *Game) Arena() Arena {
	return that.arena.Clone()
}

// Advance - accumulates elapsed time and runs a gravity step once the
// accumulator exceeds the drop interval.
func (that *Game) Advance(delta time.Duration) (DropResult, bool) {
	if that.over {
		return DropResult{}, false
	}

	that.dropCounter += delta
	if that.dropCounter <= that.dropInterval {
		return DropResult{}, false
	}

	return that.Drop(), true
}

// Drop - moves the piece one row down. On collision the piece is locked,
// full rows are swept, the next piece spawns and a top-out clears the arena.
func (that *Game) Drop() DropResult {
	that.dropCounter = 0

	if that.over {
		return DropResult{}
	}

	that.pos.Y++
	if !that.arena.Collides(that.piece, that.pos) {
		return DropResult{}
	}

	that.pos.Y--
	that.arena.Merge(that.piece, that.pos)

	rows, points := that.arena.Sweep()
	that.score += points

	result := DropResult{Locked: true, Cleared: rows, Points: points}

	if !that.spawn() {
		that.arena.Clear()
		that.over = true
		result.ToppedOut = true
	}

	return result
}

// Move - shifts the piece horizontally by dir, undone on collision.
func (that *Game) Move(dir int) bool {
	if that.over {
		return false
	}

	that.pos.X += dir
	if that.arena.Collides(that.piece, that.pos) {
		that.pos.X -= dir
		return false
	}

	return true
}

// Rotate - rotates the piece in place, undone on collision.
func (that *Game) Rotate() bool {
	if that.over {
		return false
	}

	rotated := that.piece.Rotated()
	if that.arena.Collides(rotated, that.pos) {
		return false
	}

	that.piece = rotated

	return true
}

func (that *Game) Frame() Frame {
	cells := Matrix(that.arena.Clone())

	if !that.over {
		for y, row := range that.piece {
			for x, value := range row {
				ay, ax := y+that.pos.Y, x+that.pos.X
				if value != 0 && ay >= 0 && ay < len(cells) && ax >= 0 && ax < len(cells[ay]) {
					cells[ay][ax] = value
				}
			}
		}
	}

	return Frame{Cells: cells, Score: that.score, Over: that.over}
}

// spawn - places the next piece at the top centre and reports whether it fits.
func (that *Game) spawn() bool {
	that.piece = that.source.Next()
	that.pos = Point{X: that.arena.Width() / 2, Y: 0}

	return !that.arena.Collides(that.piece, that.pos)
}

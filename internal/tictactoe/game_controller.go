package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/duel-arcade/internal/apperror"
	"github.com/rocketscienceinc/duel-arcade/internal/entity"
)

// Outcome - result of evaluating a board.
type Outcome struct {
	Winner string
	Draw   bool
}

func (that Outcome) IsOver() bool {
	return that.Winner != "" || that.Draw
}

// Text - popup text for a finished board.
func (that Outcome) Text() string {
	switch {
	case that.Winner != "":
		return fmt.Sprintf("Player %s wins!", that.Winner)
	case that.Draw:
		return "Draw!"
	default:
		return ""
	}
}

// PlaceMark - returns board with mark placed in cell, or the reason the move is rejected.
func PlaceMark(board entity.Board, turn, mark string, cell int, over bool) (entity.Board, error) {
	if over {
		return board, apperror.ErrGameFinished
	}

	if err := validateMove(board, turn, mark, cell); err != nil {
		return board, fmt.Errorf("invalid turn: %w", err)
	}

	board[cell] = mark

	return board, nil
}

// validateMove - checks if the move is valid.
func validateMove(board entity.Board, turn, mark string, cell int) error {
	if cell < 0 || cell >= len(board) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if board[cell] != entity.EmptyCell {
		return apperror.ErrCellOccupied
	}

	if mark == "" || turn != mark {
		return apperror.ErrNotYourTurn
	}

	return nil
}

// DetermineGameResult - the winning mark, PlayerTie for a full board, or "" while the game goes on.
func DetermineGameResult(board entity.Board) string {
	for _, combo := range entity.WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != entity.EmptyCell && a == b && b == c {
			return a
		}
	}

	// the game will continue until all the squares are full
	if !board.IsFull() {
		return ""
	}

	return entity.PlayerTie
}

func Evaluate(board entity.Board) Outcome {
	switch result := DetermineGameResult(board); result {
	case entity.PlayerX, entity.PlayerO:
		return Outcome{Winner: result}
	case entity.PlayerTie:
		return Outcome{Draw: true}
	default:
		return Outcome{}
	}
}

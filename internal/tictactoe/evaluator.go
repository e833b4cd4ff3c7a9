package tictactoe

import "github.com/crosszero/tictactoe-backend/internal/entity"

// Evaluate - scans the board for a contiguous run of runLength equal symbols.
// It returns the winning symbol, WinnerDraw when the board is full without a
// run, or the empty cell while the game continues.
//
// The scan order is fixed: rows, then columns, then top-left to bottom-right
// diagonals, then top-right to bottom-left diagonals. In normal play only one
// symbol can complete a run per move, but a fixed order keeps the result
// reproducible for any board.
func Evaluate(board []entity.Cell, fieldSize, runLength int) entity.Cell {
	if winner := scanRows(board, fieldSize, runLength); winner != entity.EmptyCell {
		return winner
	}

	if winner := scanColumns(board, fieldSize, runLength); winner != entity.EmptyCell {
		return winner
	}

	if winner := scanDiagonalsDown(board, fieldSize, runLength); winner != entity.EmptyCell {
		return winner
	}

	if winner := scanDiagonalsUp(board, fieldSize, runLength); winner != entity.EmptyCell {
		return winner
	}

	for _, cell := range board {
		if cell == entity.EmptyCell {
			return entity.EmptyCell
		}
	}

	return entity.WinnerDraw
}

func scanRows(board []entity.Cell, fieldSize, runLength int) entity.Cell {
	for row := 0; row < fieldSize; row++ {
		for col := 0; col <= fieldSize-runLength; col++ {
			if symbol := runAt(board, row*fieldSize+col, 1, runLength); symbol != entity.EmptyCell {
				return symbol
			}
		}
	}

	return entity.EmptyCell
}

func scanColumns(board []entity.Cell, fieldSize, runLength int) entity.Cell {
	for col := 0; col < fieldSize; col++ {
		for row := 0; row <= fieldSize-runLength; row++ {
			if symbol := runAt(board, row*fieldSize+col, fieldSize, runLength); symbol != entity.EmptyCell {
				return symbol
			}
		}
	}

	return entity.EmptyCell
}

func scanDiagonalsDown(board []entity.Cell, fieldSize, runLength int) entity.Cell {
	for row := 0; row <= fieldSize-runLength; row++ {
		for col := 0; col <= fieldSize-runLength; col++ {
			if symbol := runAt(board, row*fieldSize+col, fieldSize+1, runLength); symbol != entity.EmptyCell {
				return symbol
			}
		}
	}

	return entity.EmptyCell
}

func scanDiagonalsUp(board []entity.Cell, fieldSize, runLength int) entity.Cell {
	for row := 0; row <= fieldSize-runLength; row++ {
		for col := runLength - 1; col < fieldSize; col++ {
			if symbol := runAt(board, row*fieldSize+col, fieldSize-1, runLength); symbol != entity.EmptyCell {
				return symbol
			}
		}
	}

	return entity.EmptyCell
}

// runAt - checks the run of runLength cells starting at index with the given
// stride. Anchoring is the caller's job; every index touched here is in
// bounds by construction.
func runAt(board []entity.Cell, index, stride, runLength int) entity.Cell {
	symbol := board[index]
	if symbol == entity.EmptyCell {
		return entity.EmptyCell
	}

	for i := 1; i < runLength; i++ {
		if board[index+i*stride] != symbol {
			return entity.EmptyCell
		}
	}

	return symbol
}

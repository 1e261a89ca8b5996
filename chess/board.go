// Package chess 中国象棋的棋盘和对局状态,不包含任何界面代码
package chess

import "fmt"

const (
	Rows = 10 // 行数,红方在第0行
	Cols = 9  // 列数
)

// 底线从左到右的棋子
var backRank = [Cols]Kind{Chariot, Horse, Elephant, Advisor, King, Advisor, Elephant, Horse, Chariot}

// Board 10x9 的格子,每个格子最多一个棋子
type Board struct {
	cells [Rows][Cols]*Piece
}

func NewEmptyBoard() *Board {
	return new(Board)
}

// NewBoard 标准开局,红方占0~3行,黑方占6~9行
func NewBoard() *Board {
	b := NewEmptyBoard()
	for _, s := range []struct {
		side               Side
		back, cannon, pawn int
	}{
		{side: Red, back: 0, cannon: 2, pawn: 3},
		{side: Black, back: Rows - 1, cannon: Rows - 3, pawn: Rows - 4},
	} {
		for col, k := range backRank {
			b.put(NewPiece(s.side, k, s.back, col))
		}
		b.put(NewPiece(s.side, Cannon, s.cannon, 1))
		b.put(NewPiece(s.side, Cannon, s.cannon, Cols-2))
		for col := 0; col < Cols; col += 2 {
			b.put(NewPiece(s.side, Pawn, s.pawn, col))
		}
	}
	return b
}

func InBounds(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Cols
}

func (b *Board) PieceAt(row, col int) (*Piece, error) {
	if !InBounds(row, col) {
		return nil, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, row, col)
	}
	return b.cells[row][col], nil
}

// Place 只改格子,棋子自身坐标由调用方维护
func (b *Board) Place(p *Piece, row, col int) error {
	if !InBounds(row, col) {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, row, col)
	}
	b.cells[row][col] = p
	return nil
}

func (b *Board) Clear(row, col int) error {
	if !InBounds(row, col) {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, row, col)
	}
	b.cells[row][col] = nil
	return nil
}

// Pieces 按行优先返回棋盘上所有棋子
func (b *Board) Pieces() []*Piece {
	ps := make([]*Piece, 0, 32)
	for i := 0; i < Rows; i++ {
		for j := 0; j < Cols; j++ {
			if p := b.cells[i][j]; p != nil {
				ps = append(ps, p)
			}
		}
	}
	return ps
}

func (b *Board) Count() int {
	n := 0
	for i := 0; i < Rows; i++ {
		for j := 0; j < Cols; j++ {
			if b.cells[i][j] != nil {
				n++
			}
		}
	}
	return n
}

// put 按棋子自身坐标放置,用于开局和解析fen
func (b *Board) put(p *Piece) {
	b.cells[p.row][p.col] = p
}

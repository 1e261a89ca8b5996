package chess

import "fmt"

type Side int8

const (
	NoSide Side = -1
	Red    Side = 0 // 红方,先行
	Black  Side = 1
)

func (s Side) Opponent() Side {
	switch s {
	case Red:
		return Black
	case Black:
		return Red
	}
	return NoSide
}

func (s Side) String() string {
	switch s {
	case Red:
		return "red"
	case Black:
		return "black"
	}
	return "none"
}

type Kind int8

const (
	King     Kind = iota // 帅/将
	Advisor              // 仕/士
	Elephant             // 相/象
	Horse                // 马
	Chariot              // 车
	Cannon               // 炮
	Pawn                 // 兵/卒
	kindCount
)

var kindNames = [kindCount]string{"king", "advisor", "elephant", "horse", "chariot", "cannon", "pawn"}

func (k Kind) String() string {
	if k >= 0 && k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", int8(k))
}

//goland:noinspection SpellCheckingInspection
var (
	// 棋子字形,下标为 [Side][Kind]
	glyphs = [2][kindCount]rune{
		{'帅', '仕', '相', '马', '车', '炮', '兵'},
		{'将', '士', '象', '马', '车', '炮', '卒'},
	}
	// fen 字母,红方大写,黑方小写
	letters = [2][kindCount]byte{
		{'K', 'A', 'B', 'N', 'R', 'C', 'P'},
		{'k', 'a', 'b', 'n', 'r', 'c', 'p'},
	}
)

// Piece 棋子,开局时创建,被吃后只是从棋盘上摘掉
type Piece struct {
	kind     Kind
	side     Side
	row, col int
}

func NewPiece(side Side, kind Kind, row, col int) *Piece {
	return &Piece{kind: kind, side: side, row: row, col: col}
}

func (p *Piece) Kind() Kind { return p.kind }
func (p *Piece) Side() Side { return p.side }
func (p *Piece) Row() int   { return p.row }
func (p *Piece) Col() int   { return p.col }
func (p *Piece) Pos() Pos   { return Pos{Row: p.row, Col: p.col} }

// Glyph 界面上显示的汉字
func (p *Piece) Glyph() rune { return glyphs[p.side][p.kind] }

// Letter fen 中的字母
func (p *Piece) Letter() byte { return letters[p.side][p.kind] }

// String 形如 r_king, b_pawn
func (p *Piece) String() string {
	if p == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%c_%s", p.side.String()[0], p.kind)
}

type Pos struct {
	Row, Col int
}

func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

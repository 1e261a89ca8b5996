package chess

import (
	"fmt"
	"strings"
)

/*
fen介绍: https://www.xqbase.com/protocol/cchess_fen.htm

	红: 帅-K,仕-A,相-B,马-N,车-R,炮-C,兵-P
	黑: 将-k,士-a,象-b,马-n,车-r,炮-c,卒-p

数字代表连续空位,"w"红方走,"b"黑方走,后面的 "- - 0 1" 在中国象棋中没有意义.
fen 第一段是黑方底线,对应本棋盘第9行,最后一段对应第0行.
*/
const StartFEN = "rnbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RNBAKABNR w - - 0 1"

var letterKind = map[byte]Kind{
	'k': King, 'a': Advisor, 'b': Elephant, 'n': Horse, 'r': Chariot, 'c': Cannon, 'p': Pawn,
}

func Encode(b *Board, turn Side) string {
	var sb strings.Builder
	for i := Rows - 1; i >= 0; i-- {
		if i < Rows-1 {
			sb.WriteByte('/')
		}
		empty := 0
		for j := 0; j < Cols; j++ {
			p := b.cells[i][j]
			if p == nil {
				empty++ // 统计连续空位数
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(p.Letter())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
	if turn == Black {
		sb.WriteString(" b - - 0 1")
	} else {
		sb.WriteString(" w - - 0 1")
	}
	return sb.String()
}

// Decode 解析fen,只检查格式,不判断局面是否合理.缺省走棋方时红方先行
func Decode(fen string) (*Board, Side, error) {
	fields := strings.Fields(fen)
	if len(fields) == 0 {
		return nil, NoSide, fmt.Errorf("%w: empty", ErrInvalidFEN)
	}
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != Rows {
		return nil, NoSide, fmt.Errorf("%w: %d ranks", ErrInvalidFEN, len(ranks))
	}

	b := NewEmptyBoard()
	for i, rank := range ranks {
		row, col := Rows-1-i, 0
		for k := 0; k < len(rank); k++ {
			ch := rank[k]
			if ch >= '1' && ch <= '9' {
				col += int(ch - '0')
				continue
			}
			side, lower := Black, ch
			if ch >= 'A' && ch <= 'Z' {
				side, lower = Red, ch+'a'-'A'
			}
			kind, ok := letterKind[lower]
			if !ok {
				return nil, NoSide, fmt.Errorf("%w: unknown piece %q", ErrInvalidFEN, ch)
			}
			if col >= Cols {
				return nil, NoSide, fmt.Errorf("%w: rank %q too long", ErrInvalidFEN, rank)
			}
			b.put(NewPiece(side, kind, row, col))
			col++
		}
		if col != Cols {
			return nil, NoSide, fmt.Errorf("%w: rank %q has %d columns", ErrInvalidFEN, rank, col)
		}
	}

	turn := Red
	if len(fields) > 1 {
		switch fields[1] {
		case "w", "r":
		case "b":
			turn = Black
		default:
			return nil, NoSide, fmt.Errorf("%w: side %q", ErrInvalidFEN, fields[1])
		}
	}
	return b, turn, nil
}

package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/jan-bar/xiangqi/chess"
)

// 终端中每个交叉点占 4 列 2 行,左右留 2 列,上下留 1 行
var termLayout = chess.Layout{MarginX: 2, MarginY: 1, CellW: 4, CellH: 2}

var (
	boardStyle  = tcell.StyleDefault.Background(tcell.NewRGBColor(210, 180, 140)).Foreground(tcell.ColorBlack)
	lastXYStyle = boardStyle.Foreground(tcell.ColorNavy)

	// 下标为 chess.Side
	sideStyle = [2]tcell.Style{
		boardStyle.Foreground(tcell.ColorRed).Bold(true),
		boardStyle.Foreground(tcell.ColorBlack).Bold(true),
	}
)

// drawBoard 以 (ox,oy) 为左上角画整个棋盘,返回占用的宽高
func drawBoard(s tcell.Screen, ox, oy int, g *chess.Game) (int, int) {
	w, h := termLayout.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			s.SetContent(ox+x, oy+y, ' ', nil, boardStyle)
		}
	}

	var (
		board     = g.Board()
		last, has = g.LastMove()
	)
	for i := 0; i < chess.Rows; i++ {
		for j := 0; j < chess.Cols; j++ {
			x, y := termLayout.Point(i, j)
			x, y = x+ox, y+oy

			pc, _ := board.PieceAt(i, j)
			switch {
			case pc != nil:
				st := sideStyle[pc.Side()]
				if g.IsSelected(pc) {
					st = st.Background(tcell.ColorYellow)
				}
				s.SetContent(x, y, pc.Glyph(), nil, st) // 汉字占2列
				if j < chess.Cols-1 {
					s.SetContent(x+2, y, '─', nil, boardStyle)
					s.SetContent(x+3, y, '─', nil, boardStyle)
				}
			case has && last.From.Row == i && last.From.Col == j:
				// 该棋子上次所在位置,提示该棋子从哪里走
				s.SetContent(x, y, '○', nil, lastXYStyle)
				drawConnector(s, x, y, j)
			default:
				s.SetContent(x, y, gridRune(i, j), nil, boardStyle)
				drawConnector(s, x, y, j)
			}

			if i < chess.Rows-1 && !isRiver(i, j) {
				s.SetContent(x, y+1, '│', nil, boardStyle)
			}
		}
	}

	// 楚河汉界
	x, y := termLayout.Point(chess.Rows/2-1, 2)
	drawText(s, ox+x-1, oy+y+1, "楚 河", boardStyle)
	x, _ = termLayout.Point(chess.Rows/2-1, chess.Cols-3)
	drawText(s, ox+x-1, oy+y+1, "汉 界", boardStyle)
	return w, h
}

func drawConnector(s tcell.Screen, x, y, col int) {
	if col < chess.Cols-1 {
		for k := 1; k < termLayout.CellW; k++ {
			s.SetContent(x+k, y, '─', nil, boardStyle)
		}
	}
}

// 河界两侧只有最外面两列竖线相连
func isRiver(row, col int) bool {
	return row == chess.Rows/2-1 && col > 0 && col < chess.Cols-1
}

// gridRune 交叉点的制表符,河界两岸当作边线处理
func gridRune(row, col int) rune {
	var (
		isLeft   = col == 0
		isRight  = col == chess.Cols-1
		inner    = !isLeft && !isRight
		isTop    = row == 0 || (inner && row == chess.Rows/2)
		isBottom = row == chess.Rows-1 || (inner && row == chess.Rows/2-1)
	)
	switch {
	case isTop && isLeft:
		return '┌'
	case isTop && isRight:
		return '┐'
	case isBottom && isLeft:
		return '└'
	case isBottom && isRight:
		return '┘'
	case isTop:
		return '┬'
	case isBottom:
		return '┴'
	case isLeft:
		return '├'
	case isRight:
		return '┤'
	default:
		return '┼'
	}
}

func drawText(s tcell.Screen, x, y int, text string, st tcell.Style) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, st)
		if r > 0x7f {
			x += 2
		} else {
			x++
		}
	}
}

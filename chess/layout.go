package chess

import "math"

// Layout 棋盘交叉点在屏幕上的位置,第 row 行 col 列在
// (MarginX+col*CellW, MarginY+row*CellH)
type Layout struct {
	MarginX, MarginY int
	CellW, CellH     int
}

// Cell 屏幕坐标转换为最近的交叉点,ok 为 false 表示不在棋盘内,不应交给 Game.
// 格子宽高不是正数时没有交叉点可言,总是返回 false
func (l Layout) Cell(x, y int) (row, col int, ok bool) {
	if l.CellW <= 0 || l.CellH <= 0 {
		return -1, -1, false
	}
	col = roundDiv(x-l.MarginX, l.CellW)
	row = roundDiv(y-l.MarginY, l.CellH)
	return row, col, InBounds(row, col)
}

func (l Layout) Point(row, col int) (x, y int) {
	return l.MarginX + col*l.CellW, l.MarginY + row*l.CellH
}

// Size 刚好容纳整个棋盘及两侧边距的宽高
func (l Layout) Size() (w, h int) {
	return 2*l.MarginX + (Cols-1)*l.CellW, 2*l.MarginY + (Rows-1)*l.CellH
}

// 四舍六入五成双
func roundDiv(a, b int) int {
	return int(math.RoundToEven(float64(a) / float64(b)))
}

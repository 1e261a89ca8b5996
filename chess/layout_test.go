package chess

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutCell(t *testing.T) {
	l := Layout{MarginX: 30, MarginY: 30, CellW: 60, CellH: 60}

	tests := []struct {
		name     string
		x, y     int
		row, col int
		ok       bool
	}{
		{"Origin", 30, 30, 0, 0, true},
		{"NearOrigin", 59, 31, 0, 0, true},
		{"HalfRoundsDownToEven", 60, 30, 0, 0, true},
		{"HalfRoundsUpToEven", 120, 30, 0, 2, true},
		{"Next", 91, 30, 0, 1, true},
		{"WindowCorner", 0, 0, 0, 0, true},
		{"LastCell", 510, 570, 9, 8, true},
		{"LastCellFuzzy", 535, 595, 9, 8, true},
		{"LeftOfBoard", -1, 30, 0, -1, false},
		{"AboveBoard", 30, -31, -1, 0, false},
		{"BelowBoard", 30, 630, 10, 0, false},
		{"RightOfBoard", 570, 30, 0, 9, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, col, ok := l.Cell(tt.x, tt.y)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.row, row)
			assert.Equal(t, tt.col, col)
		})
	}
}

func TestLayoutPointRoundTrip(t *testing.T) {
	l := Layout{MarginX: 2, MarginY: 1, CellW: 4, CellH: 2}
	for i := 0; i < Rows; i++ {
		for j := 0; j < Cols; j++ {
			x, y := l.Point(i, j)
			row, col, ok := l.Cell(x, y)
			require.True(t, ok)
			require.Equal(t, Pos{i, j}, Pos{row, col})

			// 点在交叉点右下方一点也算这个交叉点
			row, col, ok = l.Cell(x+1, y)
			require.True(t, ok)
			require.Equal(t, Pos{i, j}, Pos{row, col})
		}
	}

	w, h := l.Size()
	assert.Equal(t, 36, w)
	assert.Equal(t, 20, h)
}

func TestLayoutCellZeroSize(t *testing.T) {
	for _, l := range []Layout{{}, {MarginX: 2, MarginY: 1, CellW: 4}, {CellW: -4, CellH: 2}} {
		for _, pt := range [][2]int{{0, 0}, {1, 1}, {-3, 7}} {
			_, _, ok := l.Cell(pt[0], pt[1])
			assert.False(t, ok, "%+v at %v", l, pt)
		}
	}
}

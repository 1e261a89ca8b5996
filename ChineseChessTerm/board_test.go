package main

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jan-bar/xiangqi/chess"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	t.Cleanup(s.Fini)
	s.SetSize(60, 30)
	return s
}

func newEngine(t *testing.T) *chess.Game {
	t.Helper()
	g, err := chess.NewGame(chess.Options{})
	require.NoError(t, err)
	return g
}

func runeAt(s tcell.Screen, x, y int) rune {
	r, _, _, _ := s.GetContent(x, y)
	return r
}

func TestDrawBoard(t *testing.T) {
	s, g := newScreen(t), newEngine(t)

	w, h := drawBoard(s, 0, 0, g)
	assert.Equal(t, 36, w)
	assert.Equal(t, 20, h)

	x, y := termLayout.Point(0, 0)
	assert.Equal(t, '车', runeAt(s, x, y))
	assert.Equal(t, '─', runeAt(s, x+2, y))
	assert.Equal(t, '│', runeAt(s, x, y+1))

	x, y = termLayout.Point(9, 4)
	assert.Equal(t, '将', runeAt(s, x, y))

	x, y = termLayout.Point(4, 4)
	assert.Equal(t, '┴', runeAt(s, x, y))
	assert.Equal(t, ' ', runeAt(s, x, y+1), "no vertical line across the river")

	x, y = termLayout.Point(4, 0)
	assert.Equal(t, '│', runeAt(s, x, y+1))

	// 棋盘偏移
	drawBoard(s, 5, 3, g)
	x, y = termLayout.Point(0, 0)
	assert.Equal(t, '车', runeAt(s, x+5, y+3))
}

func TestDrawSelectionAndLastMove(t *testing.T) {
	s, g := newScreen(t), newEngine(t)

	require.Equal(t, chess.ActionSelect, g.OnCellClicked(0, 0))
	drawBoard(s, 0, 0, g)
	x, y := termLayout.Point(0, 0)
	_, _, st, _ := s.GetContent(x, y)
	_, bg, _ := st.Decompose()
	assert.Equal(t, tcell.ColorYellow, bg)

	require.Equal(t, chess.ActionMove, g.OnCellClicked(1, 0))
	drawBoard(s, 0, 0, g)
	assert.Equal(t, '○', runeAt(s, x, y))
	_, _, st, _ = s.GetContent(x, y+2)
	_, bg, _ = st.Decompose()
	assert.NotEqual(t, tcell.ColorYellow, bg)
	assert.Equal(t, '车', runeAt(s, x, y+2))
}

func TestGridRune(t *testing.T) {
	tests := []struct {
		row, col int
		want     rune
	}{
		{0, 0, '┌'},
		{0, 4, '┬'},
		{0, 8, '┐'},
		{9, 0, '└'},
		{9, 8, '┘'},
		{1, 1, '┼'},
		{4, 0, '├'},
		{4, 8, '┤'},
		{4, 3, '┴'},
		{5, 3, '┬'},
		{5, 0, '├'},
	}
	for _, tt := range tests {
		assert.Equal(t, string(tt.want), string(gridRune(tt.row, tt.col)), "(%d,%d)", tt.row, tt.col)
	}
}

func TestBoardUIClick(t *testing.T) {
	g := newEngine(t)
	ui := newBoardUI(tview.NewApplication(), g, zap.NewNop())
	ui.ox, ui.oy = 1, 1

	x, y := termLayout.Point(0, 0)
	ui.click(x+1, y+1)
	assert.Equal(t, chess.ActionSelect, ui.action)
	require.NotNil(t, g.Selected())
	assert.Equal(t, chess.Pos{Row: 0, Col: 0}, g.Selected().Pos())

	x, y = termLayout.Point(1, 0)
	ui.click(x+1, y+1)
	assert.Equal(t, chess.ActionMove, ui.action)
	assert.Equal(t, chess.Black, g.CurrentPlayer())
	assert.Contains(t, ui.hint.GetText(true), "黑方")
	assert.Contains(t, ui.hint.GetText(true), "move")

	// 棋盘外的点击被丢弃
	fen := g.FEN()
	ui.click(100, 100)
	assert.Equal(t, fen, g.FEN())
	assert.Equal(t, chess.ActionMove, ui.action)
}

func TestBoardUIRestartAfterGameOver(t *testing.T) {
	g, err := chess.NewGame(chess.Options{FEN: "9/9/9/9/9/9/9/9/3k5/3K5 w", WinRule: chess.WinOnKingCapture})
	require.NoError(t, err)
	ui := newBoardUI(tview.NewApplication(), g, zap.NewNop())

	require.Equal(t, chess.ActionSelect, g.OnCellClicked(0, 3))
	require.Equal(t, chess.ActionCapture, g.OnCellClicked(1, 3))
	require.True(t, g.GameOver())
	ui.refreshHint()
	assert.Contains(t, ui.hint.GetText(true), "红方 胜")

	id := g.ID()
	ui.click(0, 0)
	assert.False(t, g.GameOver())
	assert.NotEqual(t, id, g.ID())
	assert.Equal(t, chess.ActionNone, ui.action)
}

func TestStatusText(t *testing.T) {
	g := newEngine(t)
	text := statusText(g, chess.ActionNone)
	assert.Contains(t, text, "当前回合: [red]红方[-]")
	assert.NotContains(t, text, "[gray]")

	text = statusText(g, chess.ActionDeselect)
	assert.Contains(t, text, "[gray](deselect)[-]")
}

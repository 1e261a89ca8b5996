package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/jan-bar/xiangqi/chess"
)

// loadResources 棋盘和棋子图片都在启动时画好,每帧只需要贴图
func (g *chessGame) loadResources() {
	g.images[imgChessBoard] = drawBoard()

	sel := ebiten.NewImage(cellSize, cellSize)
	vector.DrawFilledCircle(sel, cellSize/2, cellSize/2, selectRadius, highlightColor, true)
	g.images[imgSelect] = sel

	last := ebiten.NewImage(cellSize, cellSize)
	vector.StrokeCircle(last, cellSize/2, cellSize/2, pieceRadius, 2, lastXYColor, true)
	g.images[imgLastXY] = last

	for _, side := range []chess.Side{chess.Red, chess.Black} {
		for k := chess.King; k <= chess.Pawn; k++ {
			g.pieces[side][k] = drawPiece(chess.NewPiece(side, k, 0, 0))
		}
	}
}

func drawBoard() *ebiten.Image {
	img := ebiten.NewImage(boardWidth, boardHeight)
	img.Fill(boardColor)
	vector.DrawFilledRect(img, 0, 0, boardWidth, topBar, barColor, false)

	line := func(r0, c0, r1, c1 int) {
		x0, y0 := layout.Point(r0, c0)
		x1, y1 := layout.Point(r1, c1)
		vector.StrokeLine(img, float32(x0), float32(y0), float32(x1), float32(y1), 2, lineColor, true)
	}
	for i := 0; i < chess.Rows; i++ {
		line(i, 0, i, chess.Cols-1) // 横线
	}
	for j := 0; j < chess.Cols; j++ {
		line(0, j, chess.Rows-1, j) // 竖线
	}
	// 九宫斜线
	line(0, 3, 2, 5)
	line(0, 5, 2, 3)
	line(chess.Rows-3, 3, chess.Rows-1, 5)
	line(chess.Rows-3, 5, chess.Rows-1, 3)

	// 楚河汉界,遮住中间的竖线
	x, y := layout.Point(chess.Rows/2-1, 0)
	vector.DrawFilledRect(img, float32(x+1), float32(y+1), cellSize*(chess.Cols-1)-2, cellSize-2, boardColor, false)
	ebitenutil.DebugPrintAt(img, "CHU HE", x+cellSize, y+cellSize/2-8)
	ebitenutil.DebugPrintAt(img, "HAN JIE", x+cellSize*(chess.Cols-3), y+cellSize/2-8)
	return img
}

// drawPiece 圆形棋子,中间写上fen字母(调试字体只有ascii字符)
func drawPiece(p *chess.Piece) *ebiten.Image {
	img := ebiten.NewImage(cellSize, cellSize)
	vector.DrawFilledCircle(img, cellSize/2, cellSize/2, pieceRadius, sideColor[p.Side()], true)
	vector.StrokeCircle(img, cellSize/2, cellSize/2, pieceRadius-3, 1, boardColor, true)
	// 调试字体每个字符 6x16
	ebitenutil.DebugPrintAt(img, string(p.Letter()), cellSize/2-3, cellSize/2-8)
	return img
}

package main

import (
	"image/color"

	"github.com/jan-bar/xiangqi/chess"
)

const (
	imgChessBoard = iota // 棋盘
	imgSelect            // 选中
	imgLastXY            // 上一步棋的起点
	imgLength            // 图片总长度
)

const (
	cellSize = 60 // 交叉点间距
	margin   = 30 // 边界大小
	topBar   = 30 // 顶部显示提示信息

	pieceRadius  = cellSize / 3
	selectRadius = cellSize/2 - 5

	// 窗口宽高
	boardWidth  = margin + cellSize*(chess.Cols-1) + margin
	boardHeight = topBar + margin + cellSize*(chess.Rows-1) + margin
)

// 第0行交叉点在 topBar+margin 处
var layout = chess.Layout{MarginX: margin, MarginY: topBar + margin, CellW: cellSize, CellH: cellSize}

var (
	boardColor     = color.RGBA{R: 210, G: 180, B: 140, A: 0xff}
	lineColor      = color.RGBA{A: 0xff}
	highlightColor = color.NRGBA{R: 0xff, G: 0xff, A: 100}
	lastXYColor    = color.RGBA{R: 0x30, G: 0x60, B: 0xc0, A: 0xff}
	barColor       = color.RGBA{R: 0x40, G: 0x30, B: 0x20, A: 0xff}

	// 下标为 chess.Side
	sideColor = [2]color.Color{
		color.RGBA{R: 0xff, A: 0xff}, // 红方
		color.RGBA{A: 0xff},          // 黑方
	}
)

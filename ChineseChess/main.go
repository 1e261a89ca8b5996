package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/jan-bar/xiangqi/chess"
	"github.com/jan-bar/xiangqi/config"
)

/*
界面思路来自下面项目
https://github.com/Capricornwqh/ChineseChess
*/

func main() {
	cfg, err := config.Parse("ChineseChess", os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger, err := cfg.NewLogger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	//goland:noinspection GoUnhandledErrorResult
	defer logger.Sync()

	eng, err := chess.NewGame(cfg.GameOptions(logger))
	if err != nil {
		logger.Fatal("new game", zap.Error(err))
	}

	game := &chessGame{engine: eng, log: logger}
	game.loadResources()

	ebiten.SetWindowSize(boardWidth, boardHeight)
	ebiten.SetWindowTitle("中国象棋")
	if err = ebiten.RunGame(game); err != nil {
		logger.Fatal("run game", zap.Error(err))
	}
}

type chessGame struct {
	images [imgLength]*ebiten.Image         // 棋盘,选中,上一步
	pieces [2][chess.Pawn + 1]*ebiten.Image // 棋子图片,下标 [Side][Kind]

	engine *chess.Game
	// 上次点击的结果,显示在提示信息中
	action chess.Action

	log *zap.Logger
}

func (g *chessGame) Layout(_, _ int) (int, int) {
	return boardWidth, boardHeight
}

func (g *chessGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination // 退出,不保存任何状态
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		return g.reset()
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if g.engine.GameOver() {
			return g.reset()
		}
		// 鼠标坐标转换为最近的交叉点,不在棋盘内的点击直接丢弃
		if row, col, ok := layout.Cell(ebiten.CursorPosition()); ok {
			g.action = g.engine.OnCellClicked(row, col)
		}
	}
	return nil
}

func (g *chessGame) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.images[imgChessBoard], nil)

	var (
		op = &ebiten.DrawImageOptions{}

		// 图片左上角对齐到以交叉点为中心的格子
		geoMReset = func(row, col int) {
			op.GeoM.Reset()
			x, y := layout.Point(row, col)
			op.GeoM.Translate(float64(x-cellSize/2), float64(y-cellSize/2))
		}
	)

	if mv, ok := g.engine.LastMove(); ok {
		// 该棋子上次所在位置,圈起来,提示该棋子从哪里走
		geoMReset(mv.From.Row, mv.From.Col)
		screen.DrawImage(g.images[imgLastXY], op)
	}

	for _, p := range g.engine.Board().Pieces() {
		geoMReset(p.Row(), p.Col())
		if g.engine.IsSelected(p) {
			screen.DrawImage(g.images[imgSelect], op)
		}
		screen.DrawImage(g.pieces[p.Side()][p.Kind()], op)
	}

	var show0, show1 string
	if g.engine.GameOver() {
		if g.engine.Winner() == chess.Red {
			show0 = "Red Win"
		} else {
			show0 = "Black Win"
		}
		show1 = "Click Mouse To Restart"
	} else {
		if g.engine.CurrentPlayer() == chess.Red {
			show0 = "Turn: Red"
		} else {
			show0 = "Turn: Black"
		}
		if g.action != chess.ActionNone {
			show0 += " (" + g.action.String() + ")"
		}
		show1 = "Space To Restart, Esc To Quit"
	}
	ebitenutil.DebugPrintAt(screen, show0, margin, 7)
	ebitenutil.DebugPrintAt(screen, show1, boardWidth/2, 7)
}

func (g *chessGame) reset() error {
	g.action = chess.ActionNone
	if err := g.engine.Reset(); err != nil {
		g.log.Error("reset", zap.Error(err))
		return err
	}
	return nil
}

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"go.uber.org/zap"

	"github.com/jan-bar/xiangqi/chess"
	"github.com/jan-bar/xiangqi/config"
)

func main() {
	cfg, err := config.Parse("ChineseChessTerm", os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if cfg.LogFile == "" {
		cfg.LogFile = os.DevNull // 终端被界面占用,不指定文件时丢弃日志
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

	app := tview.NewApplication()
	ui := newBoardUI(app, eng, logger)
	if err = app.SetRoot(ui.root, true).EnableMouse(true).Run(); err != nil {
		logger.Fatal("run terminal ui", zap.Error(err))
	}
}

type boardUI struct {
	app  *tview.Application
	root *tview.Flex
	box  *tview.Box
	hint *tview.TextView

	engine *chess.Game
	action chess.Action
	// 棋盘左上角的屏幕坐标,画棋盘时记录,鼠标点击时换算
	ox, oy int

	log *zap.Logger
}

func newBoardUI(app *tview.Application, eng *chess.Game, logger *zap.Logger) *boardUI {
	ui := &boardUI{
		app:    app,
		box:    tview.NewBox(),
		hint:   tview.NewTextView().SetDynamicColors(true),
		engine: eng,
		log:    logger,
	}
	ui.box.SetBorder(true).SetTitle(" 中国象棋 ")
	ui.box.SetDrawFunc(func(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
		// 边框内画棋盘
		ui.ox, ui.oy = x+1, y+1
		w, h := drawBoard(screen, ui.ox, ui.oy, ui.engine)
		return ui.ox, ui.oy, w, h
	})
	ui.box.SetMouseCapture(func(action tview.MouseAction, event *tcell.EventMouse) (tview.MouseAction, *tcell.EventMouse) {
		if action != tview.MouseLeftClick {
			return action, event
		}
		x, y := event.Position()
		ui.click(x, y)
		return tview.MouseConsumed, nil
	})

	w, h := termLayout.Size()
	ui.root = tview.NewFlex().
		AddItem(tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(ui.box, h+2, 0, true).
			AddItem(ui.hint, 4, 0, false), w+2, 0, true).
		AddItem(nil, 0, 1, false)

	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch {
		case event.Key() == tcell.KeyEscape, event.Rune() == 'q':
			app.Stop() // 退出,不保存任何状态
			return nil
		case event.Rune() == 'r':
			ui.reset()
			return nil
		}
		return event
	})

	ui.refreshHint()
	return ui
}

// click 屏幕坐标换算成交叉点,不在棋盘内的点击直接丢弃
func (ui *boardUI) click(x, y int) {
	if ui.engine.GameOver() {
		ui.reset()
		return
	}
	if row, col, ok := termLayout.Cell(x-ui.ox, y-ui.oy); ok {
		ui.action = ui.engine.OnCellClicked(row, col)
	}
	ui.refreshHint()
}

func (ui *boardUI) reset() {
	ui.action = chess.ActionNone
	if err := ui.engine.Reset(); err != nil {
		ui.log.Error("reset", zap.Error(err))
	}
	ui.refreshHint()
}

func (ui *boardUI) refreshHint() {
	ui.hint.SetText(statusText(ui.engine, ui.action))
}

func statusText(g *chess.Game, action chess.Action) string {
	if g.GameOver() {
		return fmt.Sprintf(" %s 胜\n\n click to restart   q quit", sideName(g.Winner()))
	}
	text := fmt.Sprintf(" 当前回合: %s", sideName(g.CurrentPlayer()))
	if action != chess.ActionNone {
		text += fmt.Sprintf(" [gray](%s)[-]", action)
	}
	return text + "\n\n click select/move   r restart   q quit"
}

func sideName(s chess.Side) string {
	if s == chess.Red {
		return "[red]红方[-]"
	}
	return "[white]黑方[-]"
}

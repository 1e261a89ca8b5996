package chess

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// WinRule 判断胜负的方式
type WinRule uint8

const (
	// WinOnMoverKind 默认规则,落子后检查目标格子上的棋子是否为对方将帅.
	// 目标格子上只会是走棋方自己的棋子,所以该规则永远不会结束对局
	WinOnMoverKind WinRule = iota
	// WinOnKingCapture 吃掉对方将帅即获胜
	WinOnKingCapture
)

func (r WinRule) String() string {
	switch r {
	case WinOnMoverKind:
		return "legacy"
	case WinOnKingCapture:
		return "capture"
	}
	return fmt.Sprintf("winrule(%d)", uint8(r))
}

func ParseWinRule(s string) (WinRule, error) {
	switch s {
	case "", "legacy":
		return WinOnMoverKind, nil
	case "capture":
		return WinOnKingCapture, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownWinRule, s)
}

// Action 一次点击产生的结果,界面可以据此播放音效
type Action uint8

const (
	ActionNone     Action = iota // 点击被忽略
	ActionSelect                 // 选中棋子
	ActionSwitch                 // 切换选中的棋子
	ActionDeselect               // 取消选中
	ActionMove                   // 走到空位
	ActionCapture                // 吃子
)

var actionNames = [...]string{"none", "select", "switch", "deselect", "move", "capture"}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return fmt.Sprintf("action(%d)", uint8(a))
}

// Move 一步棋,Captured 为空表示没有吃子
type Move struct {
	From, To Pos
	Piece    *Piece
	Captured *Piece
}

type Options struct {
	FEN     string   // 开局局面,为空时用标准开局
	WinRule WinRule  // 零值为 WinOnMoverKind
	Rule    MoveRule // 为空时用 StepRule
	Logger  *zap.Logger
}

// Game 对局状态机,界面把点击的格子交给 OnCellClicked,每帧读取状态绘制.
// 不能并发使用
type Game struct {
	id    string
	board *Board
	turn  Side

	selected *Piece // 只引用棋盘上的棋子,不拥有它
	gameOver bool
	winner   Side

	last  *Move
	moves int

	opts Options
	log  *zap.Logger
}

func NewGame(opts Options) (*Game, error) {
	if opts.Rule == nil {
		opts.Rule = StepRule{}
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	g := &Game{opts: opts, log: opts.Logger}
	if err := g.Reset(); err != nil {
		return nil, err
	}
	return g, nil
}

// Reset 重新开局
func (g *Game) Reset() error {
	b, turn := NewBoard(), Red
	if g.opts.FEN != "" {
		var err error
		if b, turn, err = Decode(g.opts.FEN); err != nil {
			return err
		}
	}

	g.id = uuid.NewString()
	g.board, g.turn = b, turn
	g.selected, g.gameOver, g.winner = nil, false, NoSide
	g.last, g.moves = nil, 0

	g.log.Info("new game",
		zap.String("game", g.id),
		zap.Stringer("turn", g.turn),
		zap.Stringer("win_rule", g.opts.WinRule),
		zap.String("fen", g.FEN()))
	return nil
}

func (g *Game) ID() string { return g.id }
func (g *Game) Board() *Board { return g.board }
func (g *Game) CurrentPlayer() Side { return g.turn }
func (g *Game) Selected() *Piece { return g.selected }
func (g *Game) IsSelected(p *Piece) bool { return p != nil && p == g.selected }
func (g *Game) GameOver() bool { return g.gameOver }
func (g *Game) Winner() Side { return g.winner }
func (g *Game) Moves() int { return g.moves }
func (g *Game) FEN() string { return Encode(g.board, g.turn) }

func (g *Game) LastMove() (Move, bool) {
	if g.last == nil {
		return Move{}, false
	}
	return *g.last, true
}

// OnCellClicked 处理点击棋盘格子
//
//	未选中: 点击己方棋子则选中,否则忽略
//	已选中: 能走则走棋并换边;点击己方其他棋子则切换选中;其余情况取消选中
func (g *Game) OnCellClicked(row, col int) Action {
	if g.gameOver {
		return ActionNone // 对局结束,不再接受走棋
	}

	pc, err := g.board.PieceAt(row, col)
	if err != nil {
		g.log.Debug("click outside board", zap.String("game", g.id), zap.Error(err))
	}

	p := g.selected
	if p == nil {
		if pc != nil && pc.side == g.turn {
			g.selected = pc
			g.log.Debug("select", g.pieceFields(pc)...)
			return ActionSelect
		}
		return ActionNone
	}

	if g.IsValidMove(p, row, col) {
		from, mover := p.Pos(), g.turn
		captured := g.movePiece(p, row, col)
		g.selected = nil
		g.turn = g.turn.Opponent() // 切换角色

		action := ActionMove
		if captured != nil {
			action = ActionCapture
		}
		g.log.Info("move",
			zap.String("game", g.id),
			zap.Stringer("side", mover),
			zap.Stringer("piece", p),
			zap.Stringer("from", from),
			zap.Stringer("to", p.Pos()),
			zap.Stringer("action", action),
			zap.String("fen", g.FEN()))
		if g.gameOver {
			g.log.Info("game over", zap.String("game", g.id), zap.Stringer("winner", g.winner))
		}
		return action
	}

	if pc != nil && pc != p && pc.side == g.turn {
		g.selected = pc
		g.log.Debug("switch selection", g.pieceFields(pc)...)
		return ActionSwitch
	}

	// 点空位,点对方棋子但走不到,点自己,都是取消选中
	g.selected = nil
	g.log.Debug("deselect", g.pieceFields(p)...)
	return ActionDeselect
}

// IsValidMove 依次检查越界,目标是否己方棋子,走法规则
func (g *Game) IsValidMove(p *Piece, row, col int) bool {
	if !InBounds(row, col) {
		return false
	}
	if t := g.board.cells[row][col]; t != nil && t.side == p.side {
		return false // 不能吃己方棋子,也不能原地不动
	}
	return g.opts.Rule.CanMove(g.board, p, row, col)
}

// movePiece 走棋,目标格子上的对方棋子被直接覆盖,返回被吃的棋子
func (g *Game) movePiece(p *Piece, row, col int) *Piece {
	from := p.Pos()
	captured := g.board.cells[row][col]

	// 坐标已经在 IsValidMove 中检查过,直接改格子
	g.board.cells[from.Row][from.Col] = nil
	p.row, p.col = row, col
	g.board.cells[row][col] = p

	g.last = &Move{From: from, To: p.Pos(), Piece: p, Captured: captured}
	g.moves++

	// 用换边前的走棋方判断胜负
	switch g.opts.WinRule {
	case WinOnMoverKind:
		if t := g.board.cells[row][col]; t != nil && t.kind == King && t.side == g.turn.Opponent() {
			g.gameOver, g.winner = true, g.turn
		}
	case WinOnKingCapture:
		if captured != nil && captured.kind == King && captured.side == g.turn.Opponent() {
			g.gameOver, g.winner = true, g.turn
		}
	}
	return captured
}

func (g *Game) pieceFields(p *Piece) []zap.Field {
	return []zap.Field{
		zap.String("game", g.id),
		zap.Stringer("side", g.turn),
		zap.Stringer("piece", p),
		zap.Stringer("at", p.Pos()),
	}
}

package chess

// MoveRule 判断棋子能否走到目标格子.
// 越界和吃己方棋子已在 Game.IsValidMove 中排除,这里只管走法
type MoveRule interface {
	CanMove(b *Board, p *Piece, row, col int) bool
}

// StepRule 简化规则: 任意棋子向周围8个方向走一格
type StepRule struct{}

func (StepRule) CanMove(_ *Board, p *Piece, row, col int) bool {
	return abs(p.row-row) <= 1 && abs(p.col-col) <= 1
}

// KindRules 按棋子种类分派走法,没有登记的种类用 Default,Default 为空时用 StepRule
type KindRules struct {
	Rules   map[Kind]MoveRule
	Default MoveRule
}

func (kr KindRules) CanMove(b *Board, p *Piece, row, col int) bool {
	if r, ok := kr.Rules[p.kind]; ok && r != nil {
		return r.CanMove(b, p, row, col)
	}
	if kr.Default != nil {
		return kr.Default.CanMove(b, p, row, col)
	}
	return StepRule{}.CanMove(b, p, row, col)
}

// MoveRuleFunc 让普通函数实现 MoveRule
type MoveRuleFunc func(b *Board, p *Piece, row, col int) bool

func (f MoveRuleFunc) CanMove(b *Board, p *Piece, row, col int) bool { return f(b, p, row, col) }

func abs(a int) int {
	if a >= 0 {
		return a
	}
	return -a
}

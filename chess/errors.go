package chess

import "errors"

var (
	ErrOutOfBounds    = errors.New("out of bounds")
	ErrInvalidFEN     = errors.New("invalid FEN")
	ErrUnknownWinRule = errors.New("unknown win rule")
)

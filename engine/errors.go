package engine

import "fmt"

// Kind classifies an Error into one of a small closed set of
// categories, mirroring how goosemg/fen.go reports malformed input as
// a plain errors.New but generalized into a typed taxonomy a caller
// can branch on with errors.Is/errors.As.
type Kind int

const (
	KindFenParse Kind = iota
	KindInvalidPosition
	KindIllegalMove
	KindEngineBusy
	KindInternal
)

func (k Kind) String() string {
	switch k {
	case KindFenParse:
		return "fen_parse"
	case KindInvalidPosition:
		return "invalid_position"
	case KindIllegalMove:
		return "illegal_move"
	case KindEngineBusy:
		return "engine_busy"
	case KindInternal:
		return "internal"
	default:
		return "unknown"
	}
}

// Error is the engine package's single error type: a Kind plus a
// human-readable message and, where relevant, the underlying cause.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("engine: %s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("engine: %s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is one of the package's sentinel Kind
// markers, so callers can write errors.Is(err, engine.ErrIllegalMove)
// without needing to know about the Error struct.
func (e *Error) Is(target error) bool {
	sentinel, ok := target.(*Error)
	return ok && sentinel.Err == nil && sentinel.Msg == "" && sentinel.Kind == e.Kind
}

// Sentinel error values for errors.Is comparisons. Each carries only a
// Kind; wrap it with newError to attach a message and cause.
var (
	ErrFenParse        = &Error{Kind: KindFenParse}
	ErrInvalidPosition = &Error{Kind: KindInvalidPosition}
	ErrIllegalMove     = &Error{Kind: KindIllegalMove}
	ErrEngineBusy      = &Error{Kind: KindEngineBusy}
	ErrInternal        = &Error{Kind: KindInternal}
)

func newError(kind Kind, msg string, cause error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: cause}
}

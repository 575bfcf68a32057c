package engine

// Status is the result of the game so far.
type Status int

const (
	InProgress Status = iota
	WhiteWins
	BlackWins
	Draw
)

// String returns the result in the form used by game records.
func (s Status) String() string {
	switch s {
	case WhiteWins:
		return "1-0"
	case BlackWins:
		return "0-1"
	case Draw:
		return "1/2-1/2"
	default:
		return "-"
	}
}

// Termination is the reason a game ended.
type Termination int

const (
	NotTerminated Termination = iota
	Checkmate
	Stalemate
	Repetition
	FiftyMoveRule
)

func (t Termination) String() string {
	switch t {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case Repetition:
		return "repetition"
	case FiftyMoveRule:
		return "fifty-move rule"
	default:
		return "none"
	}
}

package move

// Status classifies the outcome of a single move.
type Status int

const (
	Moved Status = iota
	Unchanged
	Failed
)

// String returns the report label for the status.
func (s Status) String() string {
	switch s {
	case Moved:
		return "move"
	case Unchanged:
		return "same"
	case Failed:
		return "fail"
	default:
		return "unknown"
	}
}

// Result is the outcome of one move. Message is set only for Failed.
type Result struct {
	Status  Status
	Message string
}

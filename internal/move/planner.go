package move

// Move is one planned rename.
type Move struct {
	Source      string
	Destination string
}

// Plan builds the move for source. The destination is dir + "/" + name when
// dir is non-empty and name otherwise; no normalization is applied.
func Plan(source, dir, name string) Move {
	dst := name
	if dir != "" {
		dst = dir + "/" + name
	}
	return Move{Source: source, Destination: dst}
}

package extract

// number hands out consecutive integers, one per call. The counter advances
// on every call, whether or not the composed name is used.
type number struct {
	next int64
}

func newNumber(s Settings) (Extractor, error) {
	return &number{next: s.Number}, nil
}

func (n *number) Placeholders(string) (Values, error) {
	v := Values{"n": n.next}
	n.next++
	return v, nil
}

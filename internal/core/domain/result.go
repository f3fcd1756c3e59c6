package domain

// VideoResult is the outcome of one line of the input list.
type VideoResult struct {
	URL     string
	VideoID string
	Title   string
	Path    string
	Err     error
}

func (r VideoResult) OK() bool {
	return r.Err == nil
}

type BatchSummary struct {
	Results []VideoResult
}

func (s BatchSummary) Exported() int {
	n := 0
	for _, r := range s.Results {
		if r.OK() {
			n++
		}
	}
	return n
}

func (s BatchSummary) Failed() int {
	return len(s.Results) - s.Exported()
}

package ports

// VideoLink is one line of the input list. Err is set when no video id could
// be extracted from URL.
type VideoLink struct {
	URL     string
	VideoID string
	Err     error
}

type LinkSourcePort interface {
	ReadLinks() ([]VideoLink, error)
}

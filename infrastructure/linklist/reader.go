package linklist

import (
	"YT_comment_export/internal/core/domain"
	"YT_comment_export/internal/core/ports"
	"bufio"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"
)

type fileLinkSource struct {
	path string
}

// NewFileLinkSource reads one video URL per line from path.
func NewFileLinkSource(path string) ports.LinkSourcePort {
	if path == "" {
		path = "links.txt"
	}
	return &fileLinkSource{path: path}
}

func (s *fileLinkSource) ReadLinks() ([]ports.VideoLink, error) {
	file, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("falha ao abrir lista de links %s: %w", s.path, err)
	}
	defer file.Close()

	links, err := ParseLinks(file)
	if err != nil {
		return nil, fmt.Errorf("falha ao ler lista de links %s: %w", s.path, err)
	}

	return links, nil
}

// ParseLinks skips blank lines and lines starting with '#'.
func ParseLinks(r io.Reader) ([]ports.VideoLink, error) {
	var links []ports.VideoLink

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		id, err := VideoID(line)
		links = append(links, ports.VideoLink{URL: line, VideoID: id, Err: err})
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return links, nil
}

// VideoID returns the "v" query parameter of a watch URL. Anything the URL
// parser cannot handle falls back to the text after the last "v=".
func VideoID(rawURL string) (string, error) {
	if parsed, err := url.Parse(rawURL); err == nil {
		if id := parsed.Query().Get("v"); id != "" {
			return id, nil
		}
	}

	idx := strings.LastIndex(rawURL, "v=")
	if idx < 0 || idx+2 == len(rawURL) {
		return "", fmt.Errorf("%w: %q has no v= parameter", domain.ErrInvalidVideoURL, rawURL)
	}

	return rawURL[idx+2:], nil
}

// Package text cleans the HTML-flavoured strings the YouTube API returns in
// textDisplay fields and makes titles safe to use as file names.
package text

import (
	"regexp"

	"golang.org/x/net/html"
)

var (
	lineBreakTag   = regexp.MustCompile(`<br>`)
	markupTag      = regexp.MustCompile(`<.*?>`)
	fileNameUnsafe = regexp.MustCompile(`[\\/:*?"<>|]`)
)

// CleanComment turns <br> into newlines, strips every other tag and decodes
// HTML entities. Malformed tags are stripped by the same pattern.
func CleanComment(raw string) string {
	withNewlines := lineBreakTag.ReplaceAllString(raw, "\n")
	withoutTags := markupTag.ReplaceAllString(withNewlines, "")
	return html.UnescapeString(withoutTags)
}

// FileName replaces the characters Windows refuses in file names with '_'.
func FileName(title string) string {
	return fileNameUnsafe.ReplaceAllString(title, "_")
}

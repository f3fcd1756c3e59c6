package tui

import (
	"YT_comment_export/internal/core/domain"
	"fmt"
)

// ResultLine is the one-line confirmation (or failure) printed per video.
func ResultLine(r domain.VideoResult) string {
	if r.OK() {
		return successStyle.Render("Saved all data to ") + pathStyle.Render(r.Path)
	}

	name := r.URL
	if name == "" {
		name = r.VideoID
	}
	return errorMessageStyle.Render(fmt.Sprintf("Failed %s: %v", name, r.Err))
}

func SummaryLine(s domain.BatchSummary) string {
	line := fmt.Sprintf("%d exported, %d failed", s.Exported(), s.Failed())
	if s.Failed() > 0 {
		return errorMessageStyle.Render(line)
	}
	return successStyle.Render(line)
}

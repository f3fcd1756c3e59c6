package ports

import "YT_comment_export/internal/core/domain"

// SpreadsheetPort writes one workbook per video and returns its path.
type SpreadsheetPort interface {
	Export(metadata domain.VideoMetadata, comments []domain.CommentRecord) (string, error)
}

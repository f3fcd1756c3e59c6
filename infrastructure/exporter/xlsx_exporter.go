package exporter

import (
	"YT_comment_export/internal/core/domain"
	"YT_comment_export/internal/core/ports"
	"YT_comment_export/internal/text"
	"YT_comment_export/internal/timeconv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"
)

const (
	DetailsSheet  = "Video Details"
	CommentsSheet = "Video Comments"

	fileTimeLayout = "02-01-2006 15:04:05"
	fileExtension  = ".xlsx"
)

var detailsHeader = []string{
	"title_english",
	"title_original",
	"date_uploaded",
	"date_uploaded_local",
	"video_link",
	"duration",
	"duration_seconds",
	"description",
	"view_count",
	"like_count",
	"comment_count",
}

type xlsxExporter struct {
	outputDir  string
	normalizer *timeconv.Normalizer
	log        ports.LoggerPort
	now        func() time.Time
}

func NewXLSXExporter(outputDir string, normalizer *timeconv.Normalizer, logger ports.LoggerPort) ports.SpreadsheetPort {
	return newXLSXExporter(outputDir, normalizer, logger, time.Now)
}

func newXLSXExporter(outputDir string, normalizer *timeconv.Normalizer, logger ports.LoggerPort, now func() time.Time) *xlsxExporter {
	if outputDir == "" {
		outputDir = "results"
	}

	return &xlsxExporter{
		outputDir:  outputDir,
		normalizer: normalizer,
		log:        logger,
		now:        now,
	}
}

func (e *xlsxExporter) Export(metadata domain.VideoMetadata, comments []domain.CommentRecord) (string, error) {
	exportedAt := e.now()

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			e.log.Error("error while closing workbook", err)
		}
	}()

	//a planilha padrão vira a de detalhes, assim não sobra "Sheet1"
	if err := f.SetSheetName(f.GetSheetName(0), DetailsSheet); err != nil {
		return "", fmt.Errorf("error while naming details sheet: %w", err)
	}

	if err := e.writeDetails(f, metadata); err != nil {
		return "", err
	}

	if _, err := f.NewSheet(CommentsSheet); err != nil {
		return "", fmt.Errorf("error while creating comments sheet: %w", err)
	}

	if err := e.writeComments(f, comments, e.normalizer.ZoneAbbreviation(exportedAt)); err != nil {
		return "", err
	}

	f.SetActiveSheet(0)

	if err := os.MkdirAll(e.outputDir, 0755); err != nil {
		return "", fmt.Errorf("error while creating output directory '%s': %w", e.outputDir, err)
	}

	path, err := e.freePath(metadata.TitleOriginal, exportedAt)
	if err != nil {
		return "", err
	}

	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("error while saving workbook '%s': %w", path, err)
	}

	return path, nil
}

func (e *xlsxExporter) writeDetails(f *excelize.File, m domain.VideoMetadata) error {
	values := []interface{}{
		m.TitleEnglish,
		m.TitleOriginal,
		m.UploadedAt,
		m.UploadedAtLocal.Format(timeconv.NaiveLayout),
		m.Link,
		m.Duration,
		m.DurationSeconds,
		m.Description,
		m.ViewCount,
		m.LikeCount,
		m.CommentCount,
	}

	if err := f.SetSheetRow(DetailsSheet, "A1", &detailsHeader); err != nil {
		return fmt.Errorf("error while writing details header: %w", err)
	}

	if err := f.SetSheetRow(DetailsSheet, "A2", &values); err != nil {
		return fmt.Errorf("error while writing details values: %w", err)
	}

	return nil
}

func CommentsHeader(zone string) []string {
	return []string{
		"Comment No.",
		"Top-Level Comment Username",
		"Comment Date (UTC)",
		fmt.Sprintf("Comment Date (%s)", zone),
		"Comment Text",
		"Comment Likes",
		"Number of Replies",
		"Reply No.",
		"Reply Username",
		"Reply Date (UTC)",
		fmt.Sprintf("Reply Date (%s)", zone),
		"Reply Text",
		"Reply Likes",
	}
}

// CommentRows flattens comments into one row per (comment, reply). A comment
// without replies produces one row whose reply columns are blank.
func CommentRows(comments []domain.CommentRecord) [][]interface{} {
	var rows [][]interface{}

	for _, c := range comments {
		top := []interface{}{
			c.Number,
			c.Username,
			c.PublishedAt,
			c.PublishedLocal.Format(timeconv.NaiveLayout),
			c.Text,
			c.LikeCount,
			c.ReplyCount,
		}

		if len(c.Replies) == 0 {
			rows = append(rows, append(top, "", "", "", "", "", ""))
			continue
		}

		for _, r := range c.Replies {
			row := make([]interface{}, 0, len(top)+6)
			row = append(row, top...)
			row = append(row,
				r.Number,
				r.Username,
				r.PublishedAt,
				r.PublishedLocal.Format(timeconv.NaiveLayout),
				r.Text,
				r.LikeCount,
			)
			rows = append(rows, row)
		}
	}

	return rows
}

func (e *xlsxExporter) writeComments(f *excelize.File, comments []domain.CommentRecord, zone string) error {
	header := CommentsHeader(zone)
	if err := f.SetSheetRow(CommentsSheet, "A1", &header); err != nil {
		return fmt.Errorf("error while writing comments header: %w", err)
	}

	for i, row := range CommentRows(comments) {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("error while addressing comment row %d: %w", i+2, err)
		}

		if err := f.SetSheetRow(CommentsSheet, cell, &row); err != nil {
			return fmt.Errorf("error while writing comment row %d: %w", i+2, err)
		}
	}

	return nil
}

// freePath builds "<title> scraped on <DD-MM-YYYY HH:MM:SS>.xlsx" and adds a
// counter when a file with that name already exists.
func (e *xlsxExporter) freePath(title string, at time.Time) (string, error) {
	base := fmt.Sprintf("%s scraped on %s", text.FileName(title), at.Format(fileTimeLayout))

	path := filepath.Join(e.outputDir, base+fileExtension)
	for n := 2; ; n++ {
		_, err := os.Stat(path)
		if errors.Is(err, os.ErrNotExist) {
			return path, nil
		}
		if err != nil {
			return "", fmt.Errorf("error while checking output file '%s': %w", path, err)
		}
		path = filepath.Join(e.outputDir, fmt.Sprintf("%s (%d)%s", base, n, fileExtension))
	}
}

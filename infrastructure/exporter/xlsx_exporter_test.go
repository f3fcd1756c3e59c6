package exporter

import (
	"YT_comment_export/internal/core/domain"
	"YT_comment_export/internal/timeconv"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type nopLogger struct{}

func (nopLogger) Info(string)         {}
func (nopLogger) Error(string, error) {}
func (nopLogger) Warning(string)      {}
func (nopLogger) Debug(string)        {}
func (nopLogger) Close()              {}

var kst = time.FixedZone("KST", 9*60*60)

func fixedClock() time.Time {
	return time.Date(2024, 3, 5, 14, 7, 9, 0, time.Local)
}

func local(s string) time.Time {
	t, _ := time.Parse(time.RFC3339, s)
	return t.In(kst)
}

func sampleVideo() domain.VideoMetadata {
	return domain.VideoMetadata{
		ID:              "abc",
		TitleEnglish:    "N/A",
		TitleOriginal:   `What? A "video": part 1/2`,
		UploadedAt:      "2023-01-01T00:00:00Z",
		UploadedAtLocal: local("2023-01-01T00:00:00Z"),
		Link:            "https://www.youtube.com/watch?v=abc",
		Duration:        "PT4M13S",
		DurationSeconds: 253,
		Description:     "line1\nline2",
		ViewCount:       1000,
		LikeCount:       20,
	}
}

func sampleComments() []domain.CommentRecord {
	return []domain.CommentRecord{
		{
			Number: 1, Username: "@alice", PublishedAt: "2023-01-01T00:00:00Z",
			PublishedLocal: local("2023-01-01T00:00:00Z"), Text: "first", LikeCount: 3,
			Replies: []domain.ReplyRecord{},
		},
		{
			Number: 2, Username: "@bob", PublishedAt: "2023-01-02T00:00:00Z",
			PublishedLocal: local("2023-01-02T00:00:00Z"), Text: "second", LikeCount: 1, ReplyCount: 2,
			Replies: []domain.ReplyRecord{
				{Number: 1, Username: "@carol", PublishedAt: "2023-01-02T01:00:00Z", PublishedLocal: local("2023-01-02T01:00:00Z"), Text: "r1", LikeCount: 0},
				{Number: 2, Username: "@dave", PublishedAt: "2023-01-02T02:00:00Z", PublishedLocal: local("2023-01-02T02:00:00Z"), Text: "r2", LikeCount: 4},
			},
		},
	}
}

func pad(row []string, n int) []string {
	for len(row) < n {
		row = append(row, "")
	}
	return row
}

func TestExportWritesBothSheets(t *testing.T) {
	dir := t.TempDir()
	e := newXLSXExporter(dir, timeconv.NewNormalizer(kst), nopLogger{}, fixedClock)

	path, err := e.Export(sampleVideo(), sampleComments())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, `What_ A _video__ part 1_2 scraped on 05-03-2024 14:07:09.xlsx`), path)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{DetailsSheet, CommentsSheet}, f.GetSheetList())

	details, err := f.GetRows(DetailsSheet)
	require.NoError(t, err)
	require.Len(t, details, 2)
	assert.Equal(t, detailsHeader, details[0])
	assert.Equal(t, []string{
		"N/A", `What? A "video": part 1/2`, "2023-01-01T00:00:00Z", "2023-01-01 09:00:00",
		"https://www.youtube.com/watch?v=abc", "PT4M13S", "253", "line1\nline2", "1000", "20", "0",
	}, details[1])

	rows, err := f.GetRows(CommentsSheet)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, CommentsHeader("KST"), rows[0])
	assert.Equal(t, "Comment Date (KST)", rows[0][3])

	first := pad(rows[1], 13)
	assert.Equal(t, []string{"1", "@alice", "2023-01-01T00:00:00Z", "2023-01-01 09:00:00", "first", "3", "0"}, first[:7])
	assert.Equal(t, []string{"", "", "", "", "", ""}, first[7:])

	second, third := pad(rows[2], 13), pad(rows[3], 13)
	assert.Equal(t, second[:7], third[:7])
	assert.Equal(t, []string{"1", "@carol", "2023-01-02T01:00:00Z", "2023-01-02 10:00:00", "r1", "0"}, second[7:])
	assert.Equal(t, []string{"2", "@dave", "2023-01-02T02:00:00Z", "2023-01-02 11:00:00", "r2", "4"}, third[7:])
}

func TestExportAvoidsCollision(t *testing.T) {
	dir := t.TempDir()
	e := newXLSXExporter(dir, timeconv.NewNormalizer(kst), nopLogger{}, fixedClock)

	first, err := e.Export(sampleVideo(), nil)
	require.NoError(t, err)
	second, err := e.Export(sampleVideo(), nil)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.Contains(t, second, "14:07:09 (2).xlsx")
}

func TestExportNoComments(t *testing.T) {
	e := newXLSXExporter(t.TempDir(), timeconv.NewNormalizer(kst), nopLogger{}, fixedClock)

	path, err := e.Export(sampleVideo(), nil)
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(CommentsSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestCommentRows(t *testing.T) {
	rows := CommentRows(sampleComments())

	require.Len(t, rows, 3)
	for _, row := range rows {
		assert.Len(t, row, 13)
	}
	assert.Equal(t, "", rows[0][7])
	assert.Equal(t, 1, rows[1][7])
	assert.Equal(t, 2, rows[2][7])
}

package domain

import "time"

const titlePlaceholder = "N/A"

type VideoMetadata struct {
	ID              string
	TitleEnglish    string
	TitleOriginal   string
	UploadedAt      string
	UploadedAtLocal time.Time
	Link            string
	Duration        string
	DurationSeconds int64
	Description     string
	ViewCount       uint64
	LikeCount       uint64
	CommentCount    uint64
}

// VideoLookup is the result of a metadata fetch. Callers must check Found
// before reading Metadata.
type VideoLookup struct {
	Found    bool
	Metadata VideoMetadata
}

func NotFound() VideoLookup {
	return VideoLookup{}
}

func Found(metadata VideoMetadata) VideoLookup {
	return VideoLookup{Found: true, Metadata: metadata}
}

// LocalizedTitle returns the title or the placeholder used when the video has
// no localization for the requested language.
func LocalizedTitle(title string) string {
	if title == "" {
		return titlePlaceholder
	}
	return title
}

func WatchURL(videoID string) string {
	return "https://www.youtube.com/watch?v=" + videoID
}

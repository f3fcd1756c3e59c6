package usecases

import (
	"YT_comment_export/internal/core/domain"
	"YT_comment_export/internal/core/ports"
	"YT_comment_export/internal/timeconv"
	"context"
)

const pageSize = 100

type Options struct {
	MaxResults      int
	Order           domain.OrderMode
	ContinueOnError bool
}

type scrapeUseCase struct {
	service    ports.YoutubePort
	sheet      ports.SpreadsheetPort
	normalizer *timeconv.Normalizer
	log        ports.LoggerPort
	opts       Options
}

type ScrapeUseCase interface {
	GetVideoDetails(ctx context.Context, videoID string) (domain.VideoLookup, error)
	FetchComments(ctx context.Context, videoID string) ([]domain.CommentRecord, error)
	ExportVideo(ctx context.Context, link ports.VideoLink) domain.VideoResult
	RunBatch(ctx context.Context, links []ports.VideoLink, report func(domain.VideoResult)) domain.BatchSummary
}

func NewScrapeUseCase(
	service ports.YoutubePort,
	sheet ports.SpreadsheetPort,
	normalizer *timeconv.Normalizer,
	logger ports.LoggerPort,
	opts Options,
) ScrapeUseCase {
	if opts.MaxResults <= 0 {
		opts.MaxResults = pageSize
	}

	return &scrapeUseCase{
		service:    service,
		sheet:      sheet,
		normalizer: normalizer,
		log:        logger,
		opts:       opts,
	}
}

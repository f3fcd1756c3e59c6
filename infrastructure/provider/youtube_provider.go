package provider

import (
	"YT_comment_export/internal/core/domain"
	"YT_comment_export/internal/core/ports"
	"context"
	"errors"
	"fmt"
	"github.com/sosodev/duration"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

const repliesPageSize = 100

var (
	videoParts   = []string{"snippet", "contentDetails", "statistics", "localizations"}
	commentParts = []string{"snippet"}
)

type youtubeProvider struct {
	log     ports.LoggerPort
	service *youtube.Service
}

// NewYoutubeProvider builds the API client once; opts carry the credential
// (API key or token source) and, in tests, the endpoint.
func NewYoutubeProvider(ctx context.Context, logger ports.LoggerPort, opts ...option.ClientOption) (ports.YoutubePort, error) {
	service, err := youtube.NewService(ctx, opts...)
	if err != nil {
		logger.Error("error while create youtube service", err)
		return nil, fmt.Errorf("error while create youtube service: %w", err)
	}

	logger.Info("Create youtube service completed")

	return &youtubeProvider{
		log:     logger,
		service: service,
	}, nil
}

func (s *youtubeProvider) GetVideoDetails(ctx context.Context, videoID string) (domain.VideoLookup, error) {
	//uma única chamada traz snippet, duração, estatísticas e traduções
	call := s.service.Videos.List(videoParts).Id(videoID).Context(ctx)

	response, err := call.Do()
	if err != nil {
		s.log.Error("error while call youtube service", err)
		return domain.NotFound(), fmt.Errorf("error in call youtube api: %w", describe(err))
	}

	if len(response.Items) == 0 {
		s.log.Warning(fmt.Sprintf("No youtube video found for id %s", videoID))
		return domain.NotFound(), nil
	}

	item := response.Items[0]

	metadata := domain.VideoMetadata{
		ID:           videoID,
		TitleEnglish: domain.LocalizedTitle(item.Localizations["en"].Title),
		Link:         domain.WatchURL(videoID),
	}

	if item.Snippet != nil {
		metadata.TitleOriginal = item.Snippet.Title
		metadata.UploadedAt = item.Snippet.PublishedAt
		metadata.Description = item.Snippet.Description
	}

	if item.ContentDetails != nil {
		metadata.Duration = item.ContentDetails.Duration
		metadata.DurationSeconds = s.durationSeconds(videoID, item.ContentDetails.Duration)
	}

	if item.Statistics != nil {
		metadata.ViewCount = item.Statistics.ViewCount
		metadata.LikeCount = item.Statistics.LikeCount
		metadata.CommentCount = item.Statistics.CommentCount
	}

	return domain.Found(metadata), nil
}

func (s *youtubeProvider) durationSeconds(videoID, encoded string) int64 {
	if encoded == "" {
		return 0
	}

	parsed, err := duration.Parse(encoded)
	if err != nil {
		s.log.Warning(fmt.Sprintf("error while parsing duration %q of video %s: %v", encoded, videoID, err))
		return 0
	}

	return int64(parsed.ToTimeDuration().Seconds())
}

func (s *youtubeProvider) ListCommentThreads(ctx context.Context, videoID string, order domain.OrderMode, pageSize int64, pageToken string) (domain.ThreadPage, error) {
	call := s.service.CommentThreads.List(commentParts).
		VideoId(videoID).
		MaxResults(pageSize).
		Order(order.APIValue()).
		Context(ctx)
	if pageToken != "" {
		call = call.PageToken(pageToken)
	}

	response, err := call.Do()
	if err != nil {
		s.log.Error("error while listing comment threads", err)
		return domain.ThreadPage{}, fmt.Errorf("error in call youtube api: %w", describe(err))
	}

	threads := make([]domain.RawThread, 0, len(response.Items))
	for _, item := range response.Items {
		if item.Snippet == nil || item.Snippet.TopLevelComment == nil {
			continue
		}

		threads = append(threads, domain.RawThread{
			ID:              item.Id,
			TopLevel:        toRawComment(item.Snippet.TopLevelComment),
			TotalReplyCount: item.Snippet.TotalReplyCount,
		})
	}

	s.log.Debug(fmt.Sprintf("Comment threads page of %s: %d items", videoID, len(threads)))

	return domain.ThreadPage{Threads: threads, NextPageToken: response.NextPageToken}, nil
}

func (s *youtubeProvider) ListReplies(ctx context.Context, parentID string, pageToken string) (domain.ReplyPage, error) {
	call := s.service.Comments.List(commentParts).
		ParentId(parentID).
		MaxResults(repliesPageSize).
		Context(ctx)
	if pageToken != "" {
		call = call.PageToken(pageToken)
	}

	response, err := call.Do()
	if err != nil {
		s.log.Error("error while listing replies", err)
		return domain.ReplyPage{}, fmt.Errorf("error in call youtube api: %w", describe(err))
	}

	replies := make([]domain.RawComment, 0, len(response.Items))
	for _, item := range response.Items {
		if item.Snippet == nil {
			continue
		}
		replies = append(replies, toRawComment(item))
	}

	return domain.ReplyPage{Replies: replies, NextPageToken: response.NextPageToken}, nil
}

func toRawComment(c *youtube.Comment) domain.RawComment {
	raw := domain.RawComment{ID: c.Id}
	if c.Snippet != nil {
		raw.Author = c.Snippet.AuthorDisplayName
		raw.PublishedAt = c.Snippet.PublishedAt
		raw.TextDisplay = c.Snippet.TextDisplay
		raw.LikeCount = c.Snippet.LikeCount
	}
	return raw
}

// describe adds the API reason (quotaExceeded, commentsDisabled, ...) to the
// error text while keeping the original error in the chain.
func describe(err error) error {
	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return err
	}

	if len(apiErr.Errors) > 0 && apiErr.Errors[0].Reason != "" {
		return fmt.Errorf("status %d (%s): %w", apiErr.Code, apiErr.Errors[0].Reason, err)
	}

	return fmt.Errorf("status %d: %w", apiErr.Code, err)
}

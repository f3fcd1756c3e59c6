package usecases

import (
	"YT_comment_export/internal/core/domain"
	"context"
	"fmt"
)

// commentStrategy decides how pages are requested and how the cap is applied.
// The two orderings differ: relevance stops early and keeps the
// first results, chronological reads everything and keeps the last results.
type commentStrategy interface {
	collect(ctx context.Context, videoID string, maxResults int) ([]domain.CommentRecord, error)
}

func (uc *scrapeUseCase) strategyFor(order domain.OrderMode) commentStrategy {
	if order == domain.OrderTime {
		return chronologicalStrategy{uc: uc}
	}
	return relevanceStrategy{uc: uc}
}

type relevanceStrategy struct {
	uc *scrapeUseCase
}

func (s relevanceStrategy) collect(ctx context.Context, videoID string, maxResults int) ([]domain.CommentRecord, error) {
	var comments []domain.CommentRecord
	pageToken := ""
	number := 1

	for len(comments) < maxResults {
		size := int64(min(pageSize, maxResults-len(comments)))

		page, err := s.uc.service.ListCommentThreads(ctx, videoID, domain.OrderRelevance, size, pageToken)
		if err != nil {
			return nil, fmt.Errorf("error in comment threads page: %w", err)
		}

		for _, thread := range page.Threads {
			comment, err := s.uc.buildComment(ctx, thread, number)
			if err != nil {
				return nil, err
			}
			comments = append(comments, comment)
			number++
		}

		if page.NextPageToken == "" {
			break
		}

		pageToken = page.NextPageToken
	}

	if len(comments) > maxResults {
		comments = comments[:maxResults]
	}

	return comments, nil
}

type chronologicalStrategy struct {
	uc *scrapeUseCase
}

func (s chronologicalStrategy) collect(ctx context.Context, videoID string, maxResults int) ([]domain.CommentRecord, error) {
	var comments []domain.CommentRecord
	pageToken := ""
	number := 1

	for {
		page, err := s.uc.service.ListCommentThreads(ctx, videoID, domain.OrderTime, pageSize, pageToken)
		if err != nil {
			return nil, fmt.Errorf("error in comment threads page: %w", err)
		}

		for _, thread := range page.Threads {
			comment, err := s.uc.buildComment(ctx, thread, number)
			if err != nil {
				return nil, err
			}
			comments = append(comments, comment)
			number++
		}

		if page.NextPageToken == "" {
			break
		}

		pageToken = page.NextPageToken
	}

	// numbers are kept as assigned, so a truncated result starts above 1
	if len(comments) > maxResults {
		comments = comments[len(comments)-maxResults:]
	}

	return comments, nil
}

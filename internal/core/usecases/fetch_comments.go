package usecases

import (
	"YT_comment_export/internal/core/domain"
	"YT_comment_export/internal/text"
	"context"
	"fmt"
)

func (uc *scrapeUseCase) FetchComments(ctx context.Context, videoID string) ([]domain.CommentRecord, error) {
	uc.log.Info(fmt.Sprintf("Init Fetch Comments for %s (order=%s, max=%d)", videoID, uc.opts.Order, uc.opts.MaxResults))

	strategy := uc.strategyFor(uc.opts.Order)
	comments, err := strategy.collect(ctx, videoID, uc.opts.MaxResults)
	if err != nil {
		uc.log.Error("Failed to fetch comments", err)
		return nil, fmt.Errorf("error while fetching comments of %s: %w", videoID, err)
	}

	uc.log.Info(fmt.Sprintf("Fetch Comments completed: %d comments", len(comments)))

	return comments, nil
}

// buildComment converts one thread and, when the API reports replies, pages
// through all of them before returning.
func (uc *scrapeUseCase) buildComment(ctx context.Context, thread domain.RawThread, number int) (domain.CommentRecord, error) {
	local, err := uc.normalizer.ToLocal(thread.TopLevel.PublishedAt)
	if err != nil {
		return domain.CommentRecord{}, fmt.Errorf("error while converting date of comment %s: %w", thread.ID, err)
	}

	comment := domain.CommentRecord{
		Number:         number,
		ThreadID:       thread.ID,
		Username:       thread.TopLevel.Author,
		PublishedAt:    thread.TopLevel.PublishedAt,
		PublishedLocal: local,
		Text:           text.CleanComment(thread.TopLevel.TextDisplay),
		LikeCount:      thread.TopLevel.LikeCount,
		ReplyCount:     thread.TotalReplyCount,
		Replies:        []domain.ReplyRecord{},
	}

	if thread.TotalReplyCount > 0 {
		replies, err := uc.fetchReplies(ctx, thread.ID)
		if err != nil {
			return domain.CommentRecord{}, err
		}
		comment.Replies = replies
	}

	return comment, nil
}

func (uc *scrapeUseCase) fetchReplies(ctx context.Context, parentID string) ([]domain.ReplyRecord, error) {
	replies := []domain.ReplyRecord{}
	pageToken := ""
	number := 1

	for {
		page, err := uc.service.ListReplies(ctx, parentID, pageToken)
		if err != nil {
			return nil, fmt.Errorf("error while getting replies of %s: %w", parentID, err)
		}

		for _, raw := range page.Replies {
			local, err := uc.normalizer.ToLocal(raw.PublishedAt)
			if err != nil {
				return nil, fmt.Errorf("error while converting date of reply %s: %w", raw.ID, err)
			}

			replies = append(replies, domain.ReplyRecord{
				Number:         number,
				ID:             raw.ID,
				Username:       raw.Author,
				PublishedAt:    raw.PublishedAt,
				PublishedLocal: local,
				Text:           text.CleanComment(raw.TextDisplay),
				LikeCount:      raw.LikeCount,
			})
			number++
		}

		if page.NextPageToken == "" {
			break
		}

		pageToken = page.NextPageToken
	}

	uc.log.Debug(fmt.Sprintf("Fetched %d replies for thread %s", len(replies), parentID))

	return replies, nil
}

package ports

import (
	"YT_comment_export/internal/core/domain"
	"context"
)

type YoutubePort interface {
	GetVideoDetails(ctx context.Context, videoID string) (domain.VideoLookup, error)
	ListCommentThreads(ctx context.Context, videoID string, order domain.OrderMode, pageSize int64, pageToken string) (domain.ThreadPage, error)
	ListReplies(ctx context.Context, parentID string, pageToken string) (domain.ReplyPage, error)
}

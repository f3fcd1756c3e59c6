package usecases_test

import (
	"YT_comment_export/internal/core/domain"
	"context"
	"errors"
	"fmt"
	"strconv"
)

type nopLogger struct{}

func (nopLogger) Info(string)         {}
func (nopLogger) Error(string, error) {}
func (nopLogger) Warning(string)      {}
func (nopLogger) Debug(string)        {}
func (nopLogger) Close()              {}

type threadCall struct {
	order    domain.OrderMode
	pageSize int64
	token    string
}

// fakeYoutube serves threads and replies from memory; page tokens are the
// index of the next item.
type fakeYoutube struct {
	videos       map[string]domain.VideoMetadata
	threads      []domain.RawThread
	replies      map[string][]domain.RawComment
	replyPage    int
	threadErr    error
	videoErr     error
	threadCalls  []threadCall
	replyCalls   []string
	detailsCalls int
}

func newFakeYoutube(threads int) *fakeYoutube {
	f := &fakeYoutube{
		videos:    map[string]domain.VideoMetadata{},
		replies:   map[string][]domain.RawComment{},
		replyPage: 100,
	}
	for i := 1; i <= threads; i++ {
		f.threads = append(f.threads, domain.RawThread{
			ID: fmt.Sprintf("thread-%d", i),
			TopLevel: domain.RawComment{
				ID:          fmt.Sprintf("thread-%d", i),
				Author:      fmt.Sprintf("user%d", i),
				PublishedAt: "2023-01-01T00:00:00Z",
				TextDisplay: fmt.Sprintf("comment %d", i),
				LikeCount:   int64(i),
			},
		})
	}
	return f
}

func (f *fakeYoutube) withReplies(threadIndex int, reported int64, actual int) {
	id := f.threads[threadIndex].ID
	f.threads[threadIndex].TotalReplyCount = reported
	for i := 1; i <= actual; i++ {
		f.replies[id] = append(f.replies[id], domain.RawComment{
			ID:          fmt.Sprintf("%s.reply-%d", id, i),
			Author:      fmt.Sprintf("replier%d", i),
			PublishedAt: "2023-01-02T15:00:00Z",
			TextDisplay: fmt.Sprintf("reply<br>%d", i),
			LikeCount:   1,
		})
	}
}

func (f *fakeYoutube) GetVideoDetails(_ context.Context, videoID string) (domain.VideoLookup, error) {
	f.detailsCalls++
	if f.videoErr != nil {
		return domain.NotFound(), f.videoErr
	}
	meta, ok := f.videos[videoID]
	if !ok {
		return domain.NotFound(), nil
	}
	return domain.Found(meta), nil
}

func (f *fakeYoutube) ListCommentThreads(_ context.Context, _ string, order domain.OrderMode, pageSize int64, pageToken string) (domain.ThreadPage, error) {
	f.threadCalls = append(f.threadCalls, threadCall{order: order, pageSize: pageSize, token: pageToken})
	if f.threadErr != nil {
		return domain.ThreadPage{}, f.threadErr
	}

	start, end, next := window(pageToken, int(pageSize), len(f.threads))
	return domain.ThreadPage{Threads: f.threads[start:end], NextPageToken: next}, nil
}

func (f *fakeYoutube) ListReplies(_ context.Context, parentID string, pageToken string) (domain.ReplyPage, error) {
	f.replyCalls = append(f.replyCalls, parentID)
	all := f.replies[parentID]

	start, end, next := window(pageToken, f.replyPage, len(all))
	return domain.ReplyPage{Replies: all[start:end], NextPageToken: next}, nil
}

func window(token string, size, total int) (int, int, string) {
	start := 0
	if token != "" {
		start, _ = strconv.Atoi(token)
	}
	end := min(start+size, total)
	next := ""
	if end < total {
		next = strconv.Itoa(end)
	}
	return start, end, next
}

type fakeSheet struct {
	exported []domain.VideoMetadata
	comments [][]domain.CommentRecord
	err      error
}

func (s *fakeSheet) Export(metadata domain.VideoMetadata, comments []domain.CommentRecord) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.exported = append(s.exported, metadata)
	s.comments = append(s.comments, comments)
	return "results/" + metadata.TitleOriginal + ".xlsx", nil
}

var errQuota = errors.New("quotaExceeded")

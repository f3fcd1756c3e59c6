package domain

import "time"

type CommentRecord struct {
	Number         int
	ThreadID       string
	Username       string
	PublishedAt    string
	PublishedLocal time.Time
	Text           string
	LikeCount      int64
	ReplyCount     int64
	Replies        []ReplyRecord
}

type ReplyRecord struct {
	Number         int
	ID             string
	Username       string
	PublishedAt    string
	PublishedLocal time.Time
	Text           string
	LikeCount      int64
}

// RawComment is a comment as the API returns it, before text cleanup and
// timestamp conversion.
type RawComment struct {
	ID          string
	Author      string
	PublishedAt string
	TextDisplay string
	LikeCount   int64
}

type RawThread struct {
	ID              string
	TopLevel        RawComment
	TotalReplyCount int64
}

type ThreadPage struct {
	Threads       []RawThread
	NextPageToken string
}

type ReplyPage struct {
	Replies       []RawComment
	NextPageToken string
}

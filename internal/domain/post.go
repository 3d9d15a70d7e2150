package domain

import "time"

// RawPost is one fetched tweet, immutable once fetched.
type RawPost struct {
	ID          string
	CreatedAt   time.Time
	Text        string    // format is "{caption} {short url}"; if no caption the whole text is the url
	HasMedia    bool      // the feed flagged this post as media-bearing
	Media       []string  // ordered media URLs, feed order
	InReplyToID string    // empty when the post is not a reply
	Author      string    // screen name of the posting account
}

// MediaGroup is the consolidated unit submitted to the forum, possibly
// merged from a chain of reply posts.
type MediaGroup struct {
	TweetURL     string
	MediaURLs    []string // chronological post order, images within a post in feed order
	TextSegments []string // ordered caption strings from the chain, may be empty
	Date         time.Time
}

// UploadResult pairs an image-host identifier with its public URL.
type UploadResult struct {
	ID  string
	URL string
}

// SubmissionHandle identifies a forum submission.
type SubmissionHandle struct {
	Fullname  string // e.g. "t3_abc123"
	Permalink string
}

// CommentHandle identifies a forum comment.
type CommentHandle struct {
	Fullname  string // e.g. "t1_xyz789"
	Permalink string
}

// SubmissionRecord pairs a submission with its comment. Terminal output of a run.
type SubmissionRecord struct {
	PostID     string
	Submission SubmissionHandle
	Comment    CommentHandle
	CreatedAt  time.Time
}

package common

import (
	"context"
	"log"
	"strings"

	"blogbot/types"
)

// PostArchiver writes finished blog posts to S3 as markdown, keyed by the
// topic's slug under a configurable prefix.
type PostArchiver struct {
	s3     *S3
	bucket string
	prefix string
}

// NewPostArchiver creates an archiver targeting the given bucket. prefix may
// be empty; a trailing slash is normalized.
func NewPostArchiver(s3c *S3, bucket, prefix string) *PostArchiver {
	if prefix != "" {
		prefix = strings.Trim(prefix, "/") + "/"
	}
	return &PostArchiver{s3: s3c, bucket: bucket, prefix: prefix}
}

// Archive uploads the post body for the topic.
func (a *PostArchiver) Archive(ctx context.Context, topic, content string) error {
	key := a.prefix + "posts/" + types.Slug(topic) + ".md"
	if err := a.s3.Put(ctx, a.bucket, key, strings.NewReader(content), "text/markdown; charset=utf-8"); err != nil {
		return err
	}
	log.Printf("Archived blog post to s3://%s/%s", a.bucket, key)
	return nil
}

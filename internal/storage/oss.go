package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
)

// OSS stores objects in an Alibaba Cloud OSS bucket. Selected in production
// when the OSS_* environment variables are set.
type OSS struct {
	bucket    *oss.Bucket
	publicURL string
}

// NewOSS connects to the bucket and verifies the credentials work.
func NewOSS(endpoint, keyID, keySecret, bucketName, publicURL string) (*OSS, error) {
	client, err := oss.New(endpoint, keyID, keySecret)
	if err != nil {
		return nil, fmt.Errorf("oss client: %w", err)
	}
	bucket, err := client.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("oss bucket %s: %w", bucketName, err)
	}
	if publicURL == "" {
		publicURL = fmt.Sprintf("https://%s.%s", bucketName, endpoint)
	}
	return &OSS{bucket: bucket, publicURL: strings.TrimRight(publicURL, "/")}, nil
}

func (s *OSS) Save(_ context.Context, path string, data []byte, contentType string) (string, error) {
	err := s.bucket.PutObject(path, bytes.NewReader(data),
		oss.ContentType(contentType),
		oss.CacheControl("max-age=3600"),
	)
	if err != nil {
		return "", fmt.Errorf("oss put %s: %w", path, err)
	}
	return s.publicURL + "/" + path, nil
}

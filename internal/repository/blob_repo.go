package repository

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/encrypt"
)

// BlobRepo stores resume attachments in S3-compatible object storage.
// Objects are immutable once written; there is no update or delete path.
type BlobRepo struct {
	mc       *minio.Client
	endpoint string
	bucket   string
	region   string
	secure   bool
}

func NewBlobRepo(mc *minio.Client, endpoint, bucket, region string, secure bool) *BlobRepo {
	return &BlobRepo{mc: mc, endpoint: endpoint, bucket: bucket, region: region, secure: secure}
}

// EnsureBucket creates the bucket if it does not exist yet.
func (r *BlobRepo) EnsureBucket(ctx context.Context) error {
	exists, err := r.mc.BucketExists(ctx, r.bucket)
	if err != nil {
		return fmt.Errorf("check bucket %s: %w", r.bucket, err)
	}
	if exists {
		return nil
	}
	if err := r.mc.MakeBucket(ctx, r.bucket, minio.MakeBucketOptions{Region: r.region}); err != nil {
		return fmt.Errorf("create bucket %s: %w", r.bucket, err)
	}
	return nil
}

// Put writes one object with encryption at rest requested and the owner
// recorded in the object metadata.
func (r *BlobRepo) Put(ctx context.Context, key string, data []byte, contentType, ownerEmail string) error {
	_, err := r.mc.PutObject(ctx, r.bucket, key, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{
			ContentType:          contentType,
			ServerSideEncryption: encrypt.NewSSE(),
			UserMetadata: map[string]string{
				"applicant-email": ownerEmail,
				"uploaded-at":     time.Now().UTC().Format(time.RFC3339),
			},
		})
	if err != nil {
		return fmt.Errorf("put object %s: %w", key, err)
	}
	return nil
}

// URL builds the retrieval locator deterministically from the endpoint,
// bucket, and key. Nothing is queried back from storage. The configured
// endpoint host stands in for a region-templated hostname so the locator
// resolves against any S3-compatible deployment, not just AWS.
func (r *BlobRepo) URL(key string) string {
	scheme := "http"
	if r.secure {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, r.endpoint, r.bucket, key)
}

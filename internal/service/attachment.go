package service

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// MaxResumeSize caps the decoded resume payload, not its base64 transport form.
const MaxResumeSize = 5 << 20

// BlobStore is the object-storage collaborator for resume attachments.
type BlobStore interface {
	Put(ctx context.Context, key string, data []byte, contentType, ownerEmail string) error
	URL(key string) string
}

var blobKeyCharRe = regexp.MustCompile(`[^A-Za-z0-9.-]`)

// AttachmentService persists one immutable resume per submission under a
// timestamp-prefixed sanitized filename and returns its retrieval locator.
type AttachmentService struct {
	blobs BlobStore
	now   func() time.Time
}

func NewAttachmentService(blobs BlobStore) *AttachmentService {
	return &AttachmentService{blobs: blobs, now: time.Now}
}

// Store uploads the validated resume bytes. Filename and size checks are the
// caller's job; this only derives the key and performs the write.
func (s *AttachmentService) Store(ctx context.Context, data []byte, filename, contentType, ownerEmail string) (string, error) {
	if contentType == "" {
		contentType = detectContentType(filename)
	}

	key := fmt.Sprintf("resumes/%d-%s",
		s.now().UnixMilli(), blobKeyCharRe.ReplaceAllString(filename, "_"))

	if err := s.blobs.Put(ctx, key, data, contentType, ownerEmail); err != nil {
		return "", fmt.Errorf("store resume: %w", err)
	}
	return s.blobs.URL(key), nil
}

func detectContentType(fileName string) string {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".pdf":
		return "application/pdf"
	case ".doc":
		return "application/msword"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case ".txt":
		return "text/plain"
	}
	return "application/octet-stream"
}

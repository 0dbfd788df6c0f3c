package service

import (
	"context"
	"testing"
	"time"
)

type fakeBlobStore struct {
	gotKey         string
	gotContentType string
	gotOwner       string
}

func (f *fakeBlobStore) Put(_ context.Context, key string, _ []byte, contentType, ownerEmail string) error {
	f.gotKey = key
	f.gotContentType = contentType
	f.gotOwner = ownerEmail
	return nil
}

func (f *fakeBlobStore) URL(key string) string {
	return "https://storage.test/bucket/" + key
}

func TestAttachmentStore_KeyDerivation(t *testing.T) {
	blobs := &fakeBlobStore{}
	svc := NewAttachmentService(blobs)
	svc.now = func() time.Time { return time.UnixMilli(1700000000000) }

	url, err := svc.Store(context.Background(), []byte("data"), "my resume (final!).pdf", "application/pdf", "a@b.com")
	if err != nil {
		t.Fatalf("store: %v", err)
	}

	want := "resumes/1700000000000-my_resume__final__.pdf"
	if blobs.gotKey != want {
		t.Fatalf("key = %q, want %q", blobs.gotKey, want)
	}
	if url != "https://storage.test/bucket/"+want {
		t.Fatalf("unexpected locator %q", url)
	}
	if blobs.gotOwner != "a@b.com" {
		t.Fatalf("owner = %q", blobs.gotOwner)
	}
}

func TestAttachmentStore_ContentTypeFallback(t *testing.T) {
	blobs := &fakeBlobStore{}
	svc := NewAttachmentService(blobs)
	svc.now = func() time.Time { return time.UnixMilli(1) }

	if _, err := svc.Store(context.Background(), []byte("data"), "cv.docx", "", "a@b.com"); err != nil {
		t.Fatalf("store: %v", err)
	}
	want := "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	if blobs.gotContentType != want {
		t.Fatalf("content type = %q, want %q", blobs.gotContentType, want)
	}
}

package repository_test

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/strataworks/website-api/internal/db"
	"github.com/strataworks/website-api/internal/repository"
)

func newRepo(t *testing.T) *repository.ContentRepo {
	t.Helper()
	conn, err := db.Open(filepath.Join(t.TempDir(), "site.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return repository.NewContentRepo(conn)
}

func TestListByPartition_EmptyIsNotNil(t *testing.T) {
	repo := newRepo(t)

	items, err := repo.ListByPartition(context.Background(), repository.PartitionCareers)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if items == nil {
		t.Fatal("empty partition must return a non-nil slice")
	}
	if len(items) != 0 {
		t.Fatalf("expected no items, got %d", len(items))
	}
}

func TestPutAndListOrderedBySortKey(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	if err := repo.Put(ctx, repository.PartitionCareers, "JOB#2", map[string]any{"title": "second"}); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := repo.Put(ctx, repository.PartitionCareers, "JOB#1", map[string]any{"title": "first"}); err != nil {
		t.Fatalf("put: %v", err)
	}
	// Other partitions must not leak in.
	if err := repo.Put(ctx, repository.PartitionPartners, "PARTNER#1", map[string]any{"name": "acme"}); err != nil {
		t.Fatalf("put: %v", err)
	}

	items, err := repo.ListByPartition(ctx, repository.PartitionCareers)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}

	var first map[string]string
	if err := json.Unmarshal(items[0], &first); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if first["title"] != "first" {
		t.Fatalf("expected sort-key order, got %q first", first["title"])
	}
}

func TestPutUpserts(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	if err := repo.Put(ctx, repository.PartitionContent, "PAGE#home", map[string]any{"rev": 1}); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := repo.Put(ctx, repository.PartitionContent, "PAGE#home", map[string]any{"rev": 2}); err != nil {
		t.Fatalf("put again: %v", err)
	}

	items, err := repo.ListByPartition(ctx, repository.PartitionContent)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected upsert, got %d items", len(items))
	}

	var doc map[string]int
	if err := json.Unmarshal(items[0], &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if doc["rev"] != 2 {
		t.Fatalf("expected rev 2, got %d", doc["rev"])
	}
}

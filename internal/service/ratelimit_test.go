package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/strataworks/website-api/internal/models"
)

type fakeAttemptStore struct {
	count     int
	countErr  error
	recordErr error
	recorded  []models.AttemptRecord
	lastSince time.Time
}

func (f *fakeAttemptStore) CountSince(_ context.Context, _ string, since time.Time) (int, error) {
	f.lastSince = since
	return f.count, f.countErr
}

func (f *fakeAttemptStore) Record(_ context.Context, rec models.AttemptRecord) error {
	if f.recordErr != nil {
		return f.recordErr
	}
	f.recorded = append(f.recorded, rec)
	return nil
}

func TestCheckAndRecord_BelowCapAllowsAndRecords(t *testing.T) {
	store := &fakeAttemptStore{count: 2}
	svc := NewRateLimitService(store)

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	if !svc.CheckAndRecord(context.Background(), "a@b.com", "203.0.113.9") {
		t.Fatal("expected attempt to be allowed")
	}
	if len(store.recorded) != 1 {
		t.Fatalf("expected 1 record, got %d", len(store.recorded))
	}

	rec := store.recorded[0]
	if rec.Email != "a@b.com" || rec.Origin != "203.0.113.9" {
		t.Fatalf("unexpected record: %+v", rec)
	}
	if !rec.At.Equal(now) {
		t.Fatalf("expected attempt time %s, got %s", now, rec.At)
	}
	// The store derives its retention from ExpiresAt, so the record must
	// carry the full span.
	if rec.ExpiresAt.Sub(rec.At) != 24*time.Hour {
		t.Fatalf("expected 24h retention span, got %s", rec.ExpiresAt.Sub(rec.At))
	}
	if !store.lastSince.Equal(now.Add(-time.Hour)) {
		t.Fatalf("expected trailing 1h window, got since=%s", store.lastSince)
	}
}

func TestCheckAndRecord_AtCapDeniesWithoutWrite(t *testing.T) {
	store := &fakeAttemptStore{count: 3}
	svc := NewRateLimitService(store)

	if svc.CheckAndRecord(context.Background(), "a@b.com", "203.0.113.9") {
		t.Fatal("expected attempt to be denied")
	}
	if len(store.recorded) != 0 {
		t.Fatalf("denied attempt must not write, got %d records", len(store.recorded))
	}
}

func TestCheckAndRecord_CountErrorFailsOpen(t *testing.T) {
	store := &fakeAttemptStore{countErr: errors.New("store down")}
	svc := NewRateLimitService(store)

	if !svc.CheckAndRecord(context.Background(), "a@b.com", "203.0.113.9") {
		t.Fatal("store outage must admit the attempt")
	}
}

func TestCheckAndRecord_RecordErrorFailsOpen(t *testing.T) {
	store := &fakeAttemptStore{count: 0, recordErr: errors.New("write refused")}
	svc := NewRateLimitService(store)

	if !svc.CheckAndRecord(context.Background(), "a@b.com", "203.0.113.9") {
		t.Fatal("record failure must admit the attempt")
	}
}

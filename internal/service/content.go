package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/strataworks/website-api/internal/repository"
)

// ContentService serves the public read collections and records generic
// application documents. Reads are plain partition scans with no further
// logic; that is all the site needs.
type ContentService struct {
	repo *repository.ContentRepo
}

func NewContentService(repo *repository.ContentRepo) *ContentService {
	return &ContentService{repo: repo}
}

func (s *ContentService) Jobs(ctx context.Context) ([]json.RawMessage, error) {
	return s.repo.ListByPartition(ctx, repository.PartitionCareers)
}

func (s *ContentService) Content(ctx context.Context) ([]json.RawMessage, error) {
	return s.repo.ListByPartition(ctx, repository.PartitionContent)
}

func (s *ContentService) Solutions(ctx context.Context) ([]json.RawMessage, error) {
	return s.repo.ListByPartition(ctx, repository.PartitionSolutions)
}

func (s *ContentService) Partners(ctx context.Context) ([]json.RawMessage, error) {
	return s.repo.ListByPartition(ctx, repository.PartitionPartners)
}

func (s *ContentService) Employees(ctx context.Context) ([]json.RawMessage, error) {
	return s.repo.ListByPartition(ctx, repository.PartitionDirectory)
}

// RecordApplication stores an arbitrary application document under the
// APPLICATIONS partition and returns its generated id.
func (s *ContentService) RecordApplication(ctx context.Context, payload map[string]any) (string, error) {
	id := uuid.New().String()
	now := time.Now().UTC()

	doc := make(map[string]any, len(payload)+2)
	for k, v := range payload {
		doc[k] = v
	}
	doc["applicationId"] = id
	doc["receivedAt"] = now.Format(time.RFC3339)

	sk := "APP#" + now.Format(time.RFC3339Nano)
	if err := s.repo.Put(ctx, repository.PartitionApplications, sk, doc); err != nil {
		return "", fmt.Errorf("record application: %w", err)
	}
	return id, nil
}

package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// Partition keys of the single-table layout. The partition groups a logical
// collection; the sort key disambiguates items within it (JOB#..., APP#...).
const (
	PartitionCareers      = "CAREERS"
	PartitionContent      = "CONTENT#PUBLIC"
	PartitionSolutions    = "SOLUTIONS"
	PartitionPartners     = "PARTNERS"
	PartitionDirectory    = "EMPLOYEE#DIRECTORY"
	PartitionApplications = "APPLICATIONS"
)

type ContentRepo struct {
	db *sql.DB
}

func NewContentRepo(db *sql.DB) *ContentRepo {
	return &ContentRepo{db: db}
}

// ListByPartition returns every item in a partition ordered by sort key.
// Callers always get a non-nil slice so empty collections encode as [].
func (r *ContentRepo) ListByPartition(ctx context.Context, pk string) ([]json.RawMessage, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT data FROM site_items WHERE pk = ? ORDER BY sk`, pk)
	if err != nil {
		return nil, fmt.Errorf("query partition %s: %w", pk, err)
	}
	defer rows.Close()

	items := make([]json.RawMessage, 0)
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, json.RawMessage(data))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate partition %s: %w", pk, err)
	}
	return items, nil
}

// Put upserts one item under (pk, sk).
func (r *ContentRepo) Put(ctx context.Context, pk, sk string, doc any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal item %s/%s: %w", pk, sk, err)
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO site_items (pk, sk, data)
		VALUES (?, ?, ?)
		ON CONFLICT (pk, sk) DO UPDATE SET data = excluded.data`,
		pk, sk, string(data),
	)
	if err != nil {
		return fmt.Errorf("put item %s/%s: %w", pk, sk, err)
	}
	return nil
}

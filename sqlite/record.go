package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/fwojciec/shorts"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var (
	_ shorts.Exporter   = (*RecordService)(nil)
	_ shorts.RunService = (*RecordService)(nil)
)

// RecordService archives runs and their records.
type RecordService struct {
	db  *DB
	now func() time.Time
}

// NewRecordService creates a new RecordService.
func NewRecordService(db *DB) *RecordService {
	return &RecordService{db: db, now: time.Now}
}

// Export stores run and records in a single transaction. A run without an
// ID is assigned a new one, and CreatedAt is set when zero.
func (s *RecordService) Export(ctx context.Context, run *shorts.Run, records []*shorts.Record) error {
	if run == nil {
		return shorts.Errorf(shorts.EINVALID, "run required")
	}
	if shorts.NormalizeHashtag(run.Hashtag) == "" {
		return shorts.Errorf(shorts.EINVALID, "run hashtag required")
	}
	for _, rec := range records {
		if err := rec.Validate(); err != nil {
			return err
		}
	}

	if run.ID == "" {
		run.ID = uuid.New().String()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = s.now().UTC()
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (id, hashtag, listing_url, listing_hash, discovered, failed, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, run.ID, shorts.NormalizeHashtag(run.Hashtag), run.ListingURL, run.ListingHash,
		run.Discovered, run.Failed, run.CreatedAt.UTC().Format(timeFormat))
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return shorts.Errorf(shorts.ECONFLICT, "run %s already archived", run.ID)
		}
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO records (run_id, sequence, title, view_text, item_url, thumbnail_url, item_id)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, rec := range records {
		if _, err := stmt.ExecContext(ctx, run.ID, rec.Sequence, rec.Title, rec.ViewText,
			rec.ItemURL, rec.ThumbnailURL, rec.ItemID); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindRunByID retrieves a run by ID.
func (s *RecordService) FindRunByID(ctx context.Context, id string) (*shorts.Run, error) {
	runs, err := s.FindRuns(ctx, shorts.RunFilter{ID: &id, Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, shorts.Errorf(shorts.ENOTFOUND, "run not found")
	}
	return runs[0], nil
}

// FindRuns retrieves runs matching the filter, newest first.
func (s *RecordService) FindRuns(ctx context.Context, filter shorts.RunFilter) ([]*shorts.Run, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, hashtag, listing_url, listing_hash, discovered, failed, created_at FROM runs WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Hashtag != nil {
		query.WriteString(" AND hashtag = ?")
		args = append(args, shorts.NormalizeHashtag(*filter.Hashtag))
	}

	query.WriteString(" ORDER BY created_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	runs := []*shorts.Run{}
	for rows.Next() {
		var run shorts.Run
		var createdAt string

		if err := rows.Scan(&run.ID, &run.Hashtag, &run.ListingURL, &run.ListingHash,
			&run.Discovered, &run.Failed, &createdAt); err != nil {
			return nil, err
		}

		run.CreatedAt, err = parseTime(createdAt, "created_at")
		if err != nil {
			return nil, err
		}

		runs = append(runs, &run)
	}

	return runs, rows.Err()
}

// FindRecords retrieves the records of a run in sequence order.
// Returns ENOTFOUND if the run does not exist.
func (s *RecordService) FindRecords(ctx context.Context, runID string) ([]*shorts.Record, error) {
	if _, err := s.FindRunByID(ctx, runID); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT sequence, title, view_text, item_url, thumbnail_url, item_id
		FROM records
		WHERE run_id = ?
		ORDER BY sequence
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []*shorts.Record{}
	for rows.Next() {
		var rec shorts.Record
		if err := rows.Scan(&rec.Sequence, &rec.Title, &rec.ViewText,
			&rec.ItemURL, &rec.ThumbnailURL, &rec.ItemID); err != nil {
			return nil, err
		}
		records = append(records, &rec)
	}

	return records, rows.Err()
}

// DeleteRun removes a run. Its records are removed by cascade.
func (s *RecordService) DeleteRun(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM runs WHERE id = ?", id)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return shorts.Errorf(shorts.ENOTFOUND, "run not found")
	}
	return nil
}

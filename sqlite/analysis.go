package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/scholarly"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ scholarly.AnalysisService = (*AnalysisService)(nil)

const analysisColumns = "id, source_url, fields, profile, summary, summary_hash, created_at"

// AnalysisService implements scholarly.AnalysisService using SQLite.
type AnalysisService struct {
	db  *DB
	now func() time.Time
}

// NewAnalysisService creates a new AnalysisService.
func NewAnalysisService(db *DB) *AnalysisService {
	return &AnalysisService{db: db, now: time.Now}
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], xxhash.Sum64String(content))
	return hex.EncodeToString(b[:])
}

// CreateAnalysis stores a new analysis. CreatedAt is kept when already set.
func (s *AnalysisService) CreateAnalysis(ctx context.Context, a *scholarly.Analysis) error {
	if err := a.Validate(); err != nil {
		return err
	}

	profile, err := json.Marshal(a.Profile)
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}

	a.ID = uuid.New().String()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = s.now()
	}
	a.CreatedAt = a.CreatedAt.UTC().Truncate(time.Second)
	a.SummaryHash = hashContent(a.Summary)

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO analyses (`+analysisColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, a.ID, a.SourceURL, a.Fields.String(), string(profile), a.Summary, a.SummaryHash,
		a.CreatedAt.Format(time.RFC3339))

	return err
}

// FindAnalysisByID retrieves an analysis by ID.
func (s *AnalysisService) FindAnalysisByID(ctx context.Context, id string) (*scholarly.Analysis, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+analysisColumns+" FROM analyses WHERE id = ?", id)

	a, err := scanAnalysis(row)
	if err == sql.ErrNoRows {
		return nil, scholarly.Errorf(scholarly.ENOTFOUND, "analysis not found")
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

// FindAnalyses retrieves analyses matching the filter, newest first.
func (s *AnalysisService) FindAnalyses(ctx context.Context, filter scholarly.AnalysisFilter) ([]*scholarly.Analysis, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + analysisColumns + " FROM analyses WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}

	query.WriteString(" ORDER BY created_at DESC, rowid DESC")

	// SQLite requires LIMIT before OFFSET.
	if filter.Offset > 0 && filter.Limit <= 0 {
		query.WriteString(" LIMIT -1")
	}
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var analyses []*scholarly.Analysis
	for rows.Next() {
		a, err := scanAnalysis(rows)
		if err != nil {
			return nil, err
		}
		analyses = append(analyses, a)
	}

	return analyses, rows.Err()
}

// DeleteAnalysis permanently removes an analysis.
func (s *AnalysisService) DeleteAnalysis(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM analyses WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return scholarly.Errorf(scholarly.ENOTFOUND, "analysis not found")
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAnalysis(row scanner) (*scholarly.Analysis, error) {
	var a scholarly.Analysis
	var fields, profile, createdAt string

	if err := row.Scan(&a.ID, &a.SourceURL, &fields, &profile, &a.Summary, &a.SummaryHash, &createdAt); err != nil {
		return nil, err
	}

	if err := a.Fields.UnmarshalText([]byte(fields)); err != nil {
		return nil, fmt.Errorf("failed to parse fields: %w", err)
	}

	a.Profile = &scholarly.Profile{}
	if err := json.Unmarshal([]byte(profile), a.Profile); err != nil {
		return nil, fmt.Errorf("failed to decode profile: %w", err)
	}

	var err error
	a.CreatedAt, err = parseRFC3339(createdAt, "created_at")
	if err != nil {
		return nil, err
	}

	return &a, nil
}

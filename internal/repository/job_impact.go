package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Aditi2k5/ai-job-dashboard/internal/models"

	"gorm.io/gorm"
)

var (
	// ErrInvalidInput is returned for malformed identifiers; no query is made
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound is returned when no record matches the identifier
	ErrNotFound = errors.New("record not found")
	// ErrStorageFailure wraps any connectivity or query error from the store
	ErrStorageFailure = errors.New("storage failure")
)

// JobImpactRepository reads job impact records
type JobImpactRepository interface {
	GetByID(ctx context.Context, rawID string) (*models.JobImpactRecord, error)
	List(ctx context.Context, limit int) ([]models.JobImpactRecord, error)
}

// GormJobImpactRepository reads job impact records through gorm. Each call
// runs a single statement; the pooled connection is returned to the pool by
// database/sql once the rows are consumed, whatever the outcome.
type GormJobImpactRepository struct {
	db    *gorm.DB
	table string
}

// NewJobImpactRepository creates a repository over the given table, or the
// default jobs_tracker table when table is empty
func NewJobImpactRepository(db *gorm.DB, table string) *GormJobImpactRepository {
	if table == "" {
		table = models.JobImpactRecordTable
	}
	return &GormJobImpactRepository{
		db:    db,
		table: table,
	}
}

// Table returns the table the repository reads from
func (r *GormJobImpactRepository) Table() string {
	return r.table
}

// ParseID validates a record identifier
func ParseID(rawID string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(rawID), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: article id %q is not an integer", ErrInvalidInput, rawID)
	}
	return id, nil
}

// GetByID fetches one record by its identifier
func (r *GormJobImpactRepository) GetByID(ctx context.Context, rawID string) (*models.JobImpactRecord, error) {
	id, err := ParseID(rawID)
	if err != nil {
		return nil, err
	}

	var record models.JobImpactRecord
	err = r.db.WithContext(ctx).
		Table(r.table).
		Where("id = ?", id).
		Take(&record).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: article %d", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to fetch article %d: %w", ErrStorageFailure, id, err)
	}

	return &record, nil
}

// List fetches records newest first. A limit of zero or less returns every
// record.
func (r *GormJobImpactRepository) List(ctx context.Context, limit int) ([]models.JobImpactRecord, error) {
	query := r.db.WithContext(ctx).
		Table(r.table).
		Order("id DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	var records []models.JobImpactRecord
	if err := query.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("%w: failed to list articles: %w", ErrStorageFailure, err)
	}

	return records, nil
}

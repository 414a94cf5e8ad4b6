package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/jobscout/internal/types"
)

const jobColumns = `id, title, company, location, description, url, source,
	salary_min, salary_max, remote, created_at, times_seen, notified,
	digest_sent, notified_at`

// SaveJob inserts a job or, when the URL was already seen, bumps its
// times_seen counter. It returns the stored row either way.
func (db *DB) SaveJob(ctx context.Context, job *types.Job) (*types.Job, error) {
	if job.URL == "" {
		return nil, fmt.Errorf("job URL is required")
	}
	id := job.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	createdAt := job.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	row := db.pool.QueryRow(ctx,
		`INSERT INTO jobs (id, title, company, location, description, url, source,
		                   salary_min, salary_max, remote, created_at, times_seen)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, 1)
		 ON CONFLICT (url) DO UPDATE SET
		     times_seen = jobs.times_seen + 1,
		     description = EXCLUDED.description,
		     salary_min = EXCLUDED.salary_min,
		     salary_max = EXCLUDED.salary_max
		 RETURNING `+jobColumns,
		id, job.Title, job.Company, job.Location, job.Description, job.URL,
		job.Source, job.SalaryMin, job.SalaryMax, job.Remote, createdAt,
	)
	saved, err := scanJob(row)
	if err != nil {
		return nil, fmt.Errorf("failed to save job: %w", err)
	}
	return saved, nil
}

// GetJobByURL retrieves a job by its URL, or nil when it was never seen.
func (db *DB) GetJobByURL(ctx context.Context, url string) (*types.Job, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE url = $1`, url)
	job, err := scanJob(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return job, nil
}

// ListUnnotified returns jobs that have not been sent in a notification yet,
// oldest first.
func (db *DB) ListUnnotified(ctx context.Context, limit int) ([]*types.Job, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.pool.Query(ctx,
		`SELECT `+jobColumns+` FROM jobs
		 WHERE NOT notified ORDER BY created_at ASC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list unnotified jobs: %w", err)
	}
	defer rows.Close()
	return scanJobs(rows)
}

// MarkNotified records that a notification went out for the given jobs.
func (db *DB) MarkNotified(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := db.pool.Exec(ctx,
		`UPDATE jobs SET notified = TRUE, notified_at = NOW() WHERE id = ANY($1)`, ids)
	if err != nil {
		return fmt.Errorf("failed to mark jobs notified: %w", err)
	}
	return nil
}

// ListForDigest returns notified jobs not yet included in a digest, created
// on or after since.
func (db *DB) ListForDigest(ctx context.Context, since time.Time) ([]*types.Job, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+jobColumns+` FROM jobs
		 WHERE notified AND NOT digest_sent AND created_at >= $1
		 ORDER BY created_at ASC`, since)
	if err != nil {
		return nil, fmt.Errorf("failed to list digest jobs: %w", err)
	}
	defer rows.Close()
	return scanJobs(rows)
}

// MarkDigestSent records that the given jobs went out in a digest.
func (db *DB) MarkDigestSent(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := db.pool.Exec(ctx,
		`UPDATE jobs SET digest_sent = TRUE WHERE id = ANY($1)`, ids)
	if err != nil {
		return fmt.Errorf("failed to mark digest sent: %w", err)
	}
	return nil
}

func scanJob(row pgx.Row) (*types.Job, error) {
	var job types.Job
	err := row.Scan(&job.ID, &job.Title, &job.Company, &job.Location,
		&job.Description, &job.URL, &job.Source, &job.SalaryMin, &job.SalaryMax,
		&job.Remote, &job.CreatedAt, &job.TimesSeen, &job.Notified,
		&job.DigestSent, &job.NotifiedAt)
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func scanJobs(rows pgx.Rows) ([]*types.Job, error) {
	var jobs []*types.Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

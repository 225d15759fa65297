package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

// ResumesRepo reads resume records and applies the download-count increments
// delegated by the rendering pipeline.
type ResumesRepo struct {
	pool *pgxpool.Pool
}

func NewResumesRepo(pool *pgxpool.Pool) *ResumesRepo {
	return &ResumesRepo{pool: pool}
}

// GetForUser fetches a resume scoped to its owner. A missing resume and a
// resume owned by someone else both return domain.ErrResumeNotFound; the SQL
// ownership predicate makes the two indistinguishable.
func (r *ResumesRepo) GetForUser(ctx context.Context, resumeID, userID uuid.UUID) (*domain.ResumeDocument, error) {
	var (
		content          []byte
		selectedTemplate string
		downloadCount    int
	)
	err := r.pool.QueryRow(ctx,
		`SELECT content, selected_template, download_count
		 FROM resumes WHERE id = $1 AND user_id = $2`,
		resumeID, userID,
	).Scan(&content, &selectedTemplate, &downloadCount)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrResumeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query resume: %w", err)
	}

	if err := model.ValidateContent(content); err != nil {
		return nil, fmt.Errorf("resume %s content invalid: %w", resumeID, err)
	}

	var doc domain.ResumeDocument
	if err := json.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("decode resume content: %w", err)
	}
	doc.ID = resumeID
	doc.UserID = userID
	doc.SelectedTemplate = selectedTemplate
	doc.DownloadCount = downloadCount
	return &doc, nil
}

// IncrementDownloadCounters bumps the per-resume counter and the owning
// user's aggregate counter. Both updates run in one transaction; each UPDATE
// is atomic at the store level, which is the only concurrency guarantee the
// counters carry.
func (r *ResumesRepo) IncrementDownloadCounters(ctx context.Context, resumeID, userID uuid.UUID) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx,
		`UPDATE resumes SET download_count = download_count + 1, updated_at = now() WHERE id = $1`,
		resumeID,
	); err != nil {
		return fmt.Errorf("increment resume counter: %w", err)
	}
	if _, err := tx.Exec(ctx,
		`UPDATE users SET download_count = download_count + 1 WHERE id = $1`,
		userID,
	); err != nil {
		return fmt.Errorf("increment user counter: %w", err)
	}
	return tx.Commit(ctx)
}

// SaveNotification inserts an activity notification row.
func (r *ResumesRepo) SaveNotification(ctx context.Context, n *domain.Notification) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO notifications (id, user_id, type, message, read, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		n.ID, n.UserID, n.Type, n.Message, n.Read, n.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

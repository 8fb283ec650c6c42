package db

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/eventnav/backend/internal/model"
)

const feedbackColumns = `id::text, target_type, target_id, target_name, rating, comment, category, created_at`

func (db *Postgres) EnsureFeedbackSchema(ctx context.Context) error {
	if db.Pool == nil {
		return fmt.Errorf("postgres pool is nil")
	}
	queries := []string{
		`
		CREATE TABLE IF NOT EXISTS feedback (
			id BIGSERIAL PRIMARY KEY,
			target_type TEXT NOT NULL CHECK (target_type IN ('event', 'venue', 'poi')),
			target_id TEXT NOT NULL,
			target_name TEXT NOT NULL DEFAULT '',
			rating INT NOT NULL CHECK (rating BETWEEN 1 AND 5),
			comment TEXT NOT NULL DEFAULT '',
			category TEXT NOT NULL DEFAULT 'general',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
		`,
		`CREATE INDEX IF NOT EXISTS feedback_target_idx ON feedback(target_type, target_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS feedback_created_at_idx ON feedback(created_at DESC)`,
	}

	for _, query := range queries {
		if _, err := db.Pool.Exec(ctx, query); err != nil {
			return err
		}
	}
	return nil
}

func (db *Postgres) InsertFeedback(ctx context.Context, in model.FeedbackInput, createdAt time.Time) (*model.FeedbackRecord, error) {
	const op = "postgres.InsertFeedback"
	if err := db.ready(ctx, op); err != nil {
		return nil, err
	}

	query := `
		INSERT INTO feedback (target_type, target_id, target_name, rating, comment, category, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + feedbackColumns

	var r model.FeedbackRecord
	var targetType string
	err := db.Pool.QueryRow(ctx, query,
		string(in.TargetType), in.TargetID, in.TargetName, in.Rating, in.Comment, in.Category, createdAt,
	).Scan(&r.ID, &targetType, &r.TargetID, &r.TargetName, &r.Rating, &r.Comment, &r.Category, &r.Timestamp)
	if err != nil {
		return nil, remoteErr(op, err)
	}
	r.TargetType = model.TargetType(targetType)
	return &r, nil
}

func (db *Postgres) ListFeedback(ctx context.Context, q model.FeedbackQuery) ([]model.FeedbackRecord, error) {
	const op = "postgres.ListFeedback"
	if err := db.ready(ctx, op); err != nil {
		return nil, err
	}

	query, args := feedbackListQuery(q)
	rows, err := db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, remoteErr(op, err)
	}
	defer rows.Close()

	records := make([]model.FeedbackRecord, 0)
	for rows.Next() {
		var r model.FeedbackRecord
		var targetType string
		if err := rows.Scan(&r.ID, &targetType, &r.TargetID, &r.TargetName, &r.Rating, &r.Comment, &r.Category, &r.Timestamp); err != nil {
			return nil, remoteErr(op, err)
		}
		r.TargetType = model.TargetType(targetType)
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, remoteErr(op, err)
	}
	return records, nil
}

// 필터는 값이 있을 때만, 최신순, Limit 0은 제한 없음
func feedbackListQuery(q model.FeedbackQuery) (string, []any) {
	var (
		where []string
		args  []any
	)
	if q.TargetType != "" {
		args = append(args, string(q.TargetType))
		where = append(where, fmt.Sprintf("target_type = $%d", len(args)))
	}
	if q.TargetID != "" {
		args = append(args, q.TargetID)
		where = append(where, fmt.Sprintf("target_id = $%d", len(args)))
	}

	var b strings.Builder
	b.WriteString("SELECT " + feedbackColumns + " FROM feedback")
	if len(where) > 0 {
		b.WriteString(" WHERE " + strings.Join(where, " AND "))
	}
	b.WriteString(" ORDER BY created_at DESC, id DESC")
	if q.Limit > 0 {
		args = append(args, q.Limit)
		fmt.Fprintf(&b, " LIMIT $%d", len(args))
	}
	return b.String(), args
}

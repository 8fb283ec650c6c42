package db

import (
	"context"
	"fmt"
	"time"

	"github.com/eventnav/backend/internal/model"
)

func (db *Postgres) EnsureBuddySchema(ctx context.Context) error {
	if db.Pool == nil {
		return fmt.Errorf("postgres pool is nil")
	}
	queries := []string{
		`
		CREATE TABLE IF NOT EXISTS profiles (
			id TEXT PRIMARY KEY,
			email TEXT NOT NULL,
			name TEXT,
			avatar_url TEXT
		)
		`,
		`
		CREATE TABLE IF NOT EXISTS buddies (
			id BIGSERIAL PRIMARY KEY,
			requester_id TEXT NOT NULL,
			addressee_id TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'pending' CHECK (status IN ('pending', 'accepted', 'declined')),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
		`,
		`CREATE INDEX IF NOT EXISTS buddies_requester_idx ON buddies(requester_id)`,
		`CREATE INDEX IF NOT EXISTS buddies_addressee_idx ON buddies(addressee_id)`,
	}

	for _, query := range queries {
		if _, err := db.Pool.Exec(ctx, query); err != nil {
			return err
		}
	}
	return nil
}

// 양쪽 프로필을 모두 가져오고 상대방 선택은 서비스에서
func (db *Postgres) ListBuddies(ctx context.Context, userID string) ([]model.BuddyRelationship, error) {
	const op = "postgres.ListBuddies"
	if err := db.ready(ctx, op); err != nil {
		return nil, err
	}

	rows, err := db.Pool.Query(ctx, `
		SELECT b.id::text, b.requester_id, b.addressee_id, b.status, b.created_at,
			r.id, r.email, r.name, r.avatar_url,
			a.id, a.email, a.name, a.avatar_url
		FROM buddies b
		LEFT JOIN profiles r ON r.id = b.requester_id
		LEFT JOIN profiles a ON a.id = b.addressee_id
		WHERE b.requester_id = $1 OR b.addressee_id = $1
		ORDER BY b.created_at DESC
	`, userID)
	if err != nil {
		return nil, remoteErr(op, err)
	}
	defer rows.Close()

	buddies := make([]model.BuddyRelationship, 0)
	for rows.Next() {
		var (
			b         model.BuddyRelationship
			status    string
			createdAt time.Time
			requester profileColumns
			addressee profileColumns
		)
		if err := rows.Scan(
			&b.ID, &b.RequesterID, &b.AddresseeID, &status, &createdAt,
			&requester.id, &requester.email, &requester.name, &requester.avatarURL,
			&addressee.id, &addressee.email, &addressee.name, &addressee.avatarURL,
		); err != nil {
			return nil, remoteErr(op, err)
		}
		b.Status = model.BuddyStatus(status)
		b.CreatedAt = createdAt
		b.RequesterProfile = requester.toModel()
		b.AddresseeProfile = addressee.toModel()
		buddies = append(buddies, b)
	}
	if err := rows.Err(); err != nil {
		return nil, remoteErr(op, err)
	}
	return buddies, nil
}

const (
	updateBuddyStatusSQL = `UPDATE buddies SET status = $2 WHERE id::text = $1 AND addressee_id = $3`
	deleteBuddySQL       = `DELETE FROM buddies WHERE id::text = $1 AND (requester_id = $2 OR addressee_id = $2)`
)

// 받은 요청만 응답 가능. 대상 행이 없으면 ErrNotFound
func (db *Postgres) UpdateBuddyStatus(ctx context.Context, userID, relationshipID string, status model.BuddyStatus) error {
	const op = "postgres.UpdateBuddyStatus"
	if err := db.ready(ctx, op); err != nil {
		return err
	}
	tag, err := db.Pool.Exec(ctx, updateBuddyStatusSQL, relationshipID, string(status), userID)
	if err != nil {
		return remoteErr(op, err)
	}
	return affected(op, tag.RowsAffected())
}

func (db *Postgres) DeleteBuddy(ctx context.Context, userID, relationshipID string) error {
	const op = "postgres.DeleteBuddy"
	if err := db.ready(ctx, op); err != nil {
		return err
	}
	tag, err := db.Pool.Exec(ctx, deleteBuddySQL, relationshipID, userID)
	if err != nil {
		return remoteErr(op, err)
	}
	return affected(op, tag.RowsAffected())
}

// LEFT JOIN이라 프로필 컬럼은 모두 nullable
type profileColumns struct {
	id        *string
	email     *string
	name      *string
	avatarURL *string
}

func (p profileColumns) toModel() *model.BuddyProfile {
	if p.id == nil {
		return nil
	}
	return &model.BuddyProfile{
		ID:        *p.id,
		Email:     deref(p.email),
		Name:      deref(p.name),
		AvatarURL: deref(p.avatarURL),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

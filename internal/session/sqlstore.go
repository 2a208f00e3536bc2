package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type sqlStore struct {
	db *sqlx.DB
}

func NewSQLStore(db *sqlx.DB) Store {
	return &sqlStore{db: db}
}

func (s *sqlStore) Save(ctx context.Context, sess AuthSession) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM auth_token`); err != nil {
		return fmt.Errorf("failed to clear previous session: %w", err)
	}

	query := `
		INSERT INTO auth_token (id, token, user_id, user_email, user_name, expires_at, created_at)
		VALUES (1, ?, ?, ?, ?, ?, ?)
	`
	if _, err := tx.ExecContext(ctx, query,
		sess.Token, sess.UserID, sess.UserEmail, sess.UserName, sess.ExpiresAt, sess.CreatedAt,
	); err != nil {
		return fmt.Errorf("failed to insert session: %w", err)
	}

	return tx.Commit()
}

func (s *sqlStore) Get(ctx context.Context) (*AuthSession, error) {
	query := `
		SELECT token, user_id, user_email, user_name, expires_at, created_at
		FROM auth_token
		LIMIT 1
	`

	var sess AuthSession
	err := s.db.GetContext(ctx, &sess, query)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, err
	}

	return &sess, nil
}

func (s *sqlStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM auth_token`)
	return err
}

func (s *sqlStore) Exists(ctx context.Context) (bool, error) {
	var exists bool
	err := s.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM auth_token)`)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	return exists, err
}

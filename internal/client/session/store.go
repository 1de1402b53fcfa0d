// Package session persists the auth session (token + user) across restarts
// in a local sqlite database under fixed keys. An absent session means the
// client is unauthenticated.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"tripdeck/internal/client/models"
	"tripdeck/internal/dbx"
)

const (
	keyToken = "auth_token"
	keyUser  = "auth_user"
)

// Store reads and writes the persisted session. It also serves as the
// transport's TokenSource, so the token is read from storage on every
// request and written only by login/logout.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) repo(db dbx.DBTX) Repository {
	return NewSQLiteRepository(db)
}

// Save persists token and user atomically.
func (s *Store) Save(ctx context.Context, sess *models.Session) error {
	userJSON, err := json.Marshal(sess.User)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repo(tx)
		if err := repo.Set(ctx, keyToken, []byte(sess.Token)); err != nil {
			return err
		}
		return repo.Set(ctx, keyUser, userJSON)
	})
}

// Load returns the stored session, or (nil, nil) when none exists.
func (s *Store) Load(ctx context.Context) (*models.Session, error) {
	repo := s.repo(s.db)

	token, err := repo.Get(ctx, keyToken)
	if err != nil {
		return nil, err
	}
	if len(token) == 0 {
		return nil, nil
	}

	sess := &models.Session{Token: string(token)}
	userJSON, err := repo.Get(ctx, keyUser)
	if err != nil {
		return nil, err
	}
	if len(userJSON) > 0 {
		if err := json.Unmarshal(userJSON, &sess.User); err != nil {
			return nil, fmt.Errorf("decode stored user: %w", err)
		}
	}
	return sess, nil
}

// Clear wipes the persisted session (logout).
func (s *Store) Clear(ctx context.Context) error {
	return s.repo(s.db).Clear(ctx)
}

// Token implements the transport's TokenSource. An absent session yields "".
func (s *Store) Token(ctx context.Context) (string, error) {
	token, err := s.repo(s.db).Get(ctx, keyToken)
	if err != nil {
		return "", err
	}
	return string(token), nil
}

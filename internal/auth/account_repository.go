package auth

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
)

var ErrAccountNotFound = errors.New("account not found")

// Account is the optional local member record created at signup. Login
// against an existing account verifies the password; without one the
// mock authenticator accepts any valid credential.
type Account struct {
	ID           int       `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Email        string    `db:"email" json:"email"`
	Phone        string    `db:"phone" json:"phone"`
	PasswordHash string    `db:"password_hash" json:"-"`
	IDNumber     string    `db:"id_number" json:"id_number"`
	Address      *string   `db:"address" json:"address,omitempty"`
	MedicalInfo  *string   `db:"medical_info" json:"medical_info,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

type AccountRepository interface {
	Create(ctx context.Context, a Account) (*Account, error)
	FindByEmail(ctx context.Context, email string) (*Account, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

type accountRepository struct {
	db *sqlx.DB
}

func NewAccountRepository(db *sqlx.DB) AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) Create(ctx context.Context, a Account) (*Account, error) {
	query := `
		INSERT INTO accounts (name, email, phone, password_hash, id_number, address, medical_info)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING id, name, email, phone, password_hash, id_number, address, medical_info, created_at
	`

	var created Account
	err := r.db.GetContext(ctx, &created, query,
		a.Name, a.Email, a.Phone, a.PasswordHash, a.IDNumber, a.Address, a.MedicalInfo,
	)
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *accountRepository) FindByEmail(ctx context.Context, email string) (*Account, error) {
	query := `
		SELECT id, name, email, phone, password_hash, id_number, address, medical_info, created_at
		FROM accounts
		WHERE email = ?
	`

	var a Account
	err := r.db.GetContext(ctx, &a, query, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAccountNotFound
	}
	if err != nil {
		return nil, err
	}

	return &a, nil
}

func (r *accountRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM accounts WHERE email = ?)`, email)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	return exists, err
}

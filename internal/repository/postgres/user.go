package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"englearn/internal/domain"
	"englearn/internal/repository"
)

// UserRepo implements repository.UserRepository
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

const userColumns = `id, username, email, password, avatar, token, created_at, last_login`

// CreateUser stores a new account and returns its id
func (r *UserRepo) CreateUser(username, email, passwordHash string) (int, error) {
	query := `
		INSERT INTO users (username, email, password)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	var id int
	if err := r.db.QueryRow(query, username, email, passwordHash).Scan(&id); err != nil {
		return 0, mapError("create user", err)
	}
	return id, nil
}

// GetUserByID returns a user by primary key
func (r *UserRepo) GetUserByID(id int) (*domain.User, error) {
	return r.getUser(`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

// GetUserByUsername returns a user by username
func (r *UserRepo) GetUserByUsername(username string) (*domain.User, error) {
	return r.getUser(`SELECT `+userColumns+` FROM users WHERE username = $1`, username)
}

// GetUserByEmail returns a user by email
func (r *UserRepo) GetUserByEmail(email string) (*domain.User, error) {
	return r.getUser(`SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

// GetUserByToken returns the user holding the given login token
func (r *UserRepo) GetUserByToken(token string) (*domain.User, error) {
	return r.getUser(`SELECT `+userColumns+` FROM users WHERE token = $1`, token)
}

func (r *UserRepo) getUser(query string, arg interface{}) (*domain.User, error) {
	var (
		u         domain.User
		avatar    sql.NullString
		token     sql.NullString
		lastLogin sql.NullTime
	)

	err := r.db.QueryRow(query, arg).Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash,
		&avatar, &token, &u.CreatedAt, &lastLogin,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get user: %w", repository.ErrNotFound)
	}
	if err != nil {
		return nil, mapError("get user", err)
	}

	u.Avatar = avatar.String
	u.Token = token.String
	if lastLogin.Valid {
		u.LastLogin = &lastLogin.Time
	}

	return &u, nil
}

// UpdateToken stores a fresh login token and stamps last_login
func (r *UserRepo) UpdateToken(userID int, token string) error {
	query := `
		UPDATE users
		SET token = $1, last_login = NOW()
		WHERE id = $2
	`
	if _, err := r.db.Exec(query, token, userID); err != nil {
		return mapError("update token", err)
	}
	return nil
}

// ClearToken invalidates the user's login token
func (r *UserRepo) ClearToken(userID int) error {
	query := `UPDATE users SET token = NULL WHERE id = $1`
	if _, err := r.db.Exec(query, userID); err != nil {
		return mapError("clear token", err)
	}
	return nil
}

// UpdateProfile updates email and avatar; empty values leave the
// current ones untouched
func (r *UserRepo) UpdateProfile(userID int, email, avatar string) error {
	query := `
		UPDATE users
		SET email = COALESCE(NULLIF($1, ''), email),
			avatar = COALESCE(NULLIF($2, ''), avatar)
		WHERE id = $3
	`
	if _, err := r.db.Exec(query, email, avatar, userID); err != nil {
		return mapError("update profile", err)
	}
	return nil
}

// UpdatePassword replaces the stored password hash
func (r *UserRepo) UpdatePassword(userID int, passwordHash string) error {
	query := `UPDATE users SET password = $1 WHERE id = $2`
	if _, err := r.db.Exec(query, passwordHash, userID); err != nil {
		return mapError("update password", err)
	}
	return nil
}

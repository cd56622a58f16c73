package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rs/xid"

	"github.com/sakif/tuiter/internal/apperror"
	"github.com/sakif/tuiter/internal/model"
)

const userColumns = `id, username, password, first_name, last_name, email,
	profile_photo, header_image, biography, date_of_birth, account_type,
	marital_status, latitude, longitude, salary`

// CreateUser inserts a new user. user.Password must already be hashed.
func (db *DB) CreateUser(ctx context.Context, user *model.User) error {
	user.ID = xid.New().String()

	var dob sql.NullTime
	if user.DateOfBirth != nil {
		dob = sql.NullTime{Time: user.DateOfBirth.UTC(), Valid: true}
	}
	var lat, lng sql.NullFloat64
	if user.Location != nil {
		lat = sql.NullFloat64{Float64: user.Location.Latitude, Valid: true}
		lng = sql.NullFloat64{Float64: user.Location.Longitude, Valid: true}
	}

	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO users (`+userColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		user.ID,
		user.Username,
		user.Password,
		user.FirstName,
		user.LastName,
		user.Email,
		user.ProfilePhoto,
		user.HeaderImage,
		user.Biography,
		dob,
		user.AccountType,
		user.MaritalStatus,
		lat,
		lng,
		user.Salary,
	)
	if err != nil {
		return fmt.Errorf("sqlite: inserting user %q: %w", user.Username, err)
	}
	return nil
}

// GetUserByID returns apperror.ErrNotFound if no user has that id.
func (db *DB) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	row := db.conn.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id)

	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("user", id)
		}
		return nil, fmt.Errorf("sqlite: getting user %s: %w", id, err)
	}
	return &u, nil
}

// GetUserByUsername returns the first user with that username. Usernames
// are not unique, so the oldest id wins.
func (db *DB) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	row := db.conn.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = ? ORDER BY id LIMIT 1`, username)

	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("user", username)
		}
		return nil, fmt.Errorf("sqlite: getting user by username: %w", err)
	}
	return &u, nil
}

func (db *DB) ListUsers(ctx context.Context) ([]model.User, error) {
	return queryAll(ctx, db.conn, "listing users",
		func(rows *sql.Rows) (model.User, error) { return scanUser(rows) },
		`SELECT `+userColumns+` FROM users`)
}

func (db *DB) DeleteUser(ctx context.Context, id string) (int64, error) {
	return execCount(ctx, db.conn, "deleting user "+id,
		`DELETE FROM users WHERE id = ?`, id)
}

func (db *DB) DeleteUsersByUsername(ctx context.Context, username string) (int64, error) {
	return execCount(ctx, db.conn, "deleting users by username",
		`DELETE FROM users WHERE username = ?`, username)
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(s rowScanner) (model.User, error) {
	var (
		u        model.User
		dob      sql.NullTime
		lat, lng sql.NullFloat64
	)
	err := s.Scan(
		&u.ID,
		&u.Username,
		&u.Password,
		&u.FirstName,
		&u.LastName,
		&u.Email,
		&u.ProfilePhoto,
		&u.HeaderImage,
		&u.Biography,
		&dob,
		&u.AccountType,
		&u.MaritalStatus,
		&lat,
		&lng,
		&u.Salary,
	)
	if err != nil {
		return model.User{}, err
	}
	if dob.Valid {
		t := dob.Time.In(time.UTC)
		u.DateOfBirth = &t
	}
	if lat.Valid && lng.Valid {
		u.Location = &model.Location{Latitude: lat.Float64, Longitude: lng.Float64}
	}
	return u, nil
}

package sqlite

import (
	"context"
	"time"

	"github.com/heraldhq/herald/internal/herald/domain"
	"github.com/heraldhq/herald/internal/herald/store"
)

type usersRepo struct {
	q queryer
}

const userColumns = `id, email, password_hash, role, name, mobile, bio, available_from, available_to, created_at, updated_at`

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ?`, email)
	return scanUser(row)
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	now := time.Now().UTC()
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO users (id, email, password_hash, role, name, mobile, bio, available_from, available_to, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Email, u.PasswordHash, u.Role,
		u.Name, u.Mobile, u.Bio, u.AvailableFrom, u.AvailableTo,
		now, now,
	)
	return mapConflict(err)
}

func (r *usersRepo) UpdateProfile(ctx context.Context, userID string, p domain.Profile) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE users
		 SET name = ?, mobile = ?, bio = ?, available_from = ?, available_to = ?, updated_at = ?
		 WHERE id = ?`,
		p.Name, p.Mobile, p.Bio, p.AvailableFrom, p.AvailableTo,
		time.Now().UTC(), userID,
	)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *usersRepo) IsEmpty(ctx context.Context) (bool, error) {
	var count int64
	if err := r.q.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return false, err
	}
	return count == 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Role,
		&u.Name, &u.Mobile, &u.Bio, &u.AvailableFrom, &u.AvailableTo,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

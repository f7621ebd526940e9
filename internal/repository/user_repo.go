package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/arash-p/TeamTrackBack/internal/models"
)

type UserRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = "id, username, email, password_hash, role, full_name, phone, created_at, updated_at"

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (username, email, password_hash, role, full_name, phone)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(
		ctx,
		query,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.Role,
		user.FullName,
		user.Phone,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1`, userColumns)
	var user models.User
	if err := scanUser(r.db.QueryRow(ctx, query, id), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByIdentifier resolves a login identifier against username first, then
// email. Both columns are matched in one query.
func (r *UserRepository) GetByIdentifier(ctx context.Context, identifier string) (*models.User, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM users
		WHERE username = $1 OR email = $1
		ORDER BY (username = $1) DESC NULLS LAST, id ASC
		LIMIT 1
	`, userColumns)
	var user models.User
	if err := scanUser(r.db.QueryRow(ctx, query, identifier), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) List(ctx context.Context, search string, limit int) ([]models.User, error) {
	args := []any{limit}
	where := ""
	if q := strings.TrimSpace(search); q != "" {
		args = append(args, "%"+q+"%")
		where = `WHERE username ILIKE $2 OR email ILIKE $2 OR full_name ILIKE $2`
	}

	query := fmt.Sprintf(`
		SELECT %s FROM users
		%s
		ORDER BY id ASC
		LIMIT $1
	`, userColumns, where)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var user models.User
		if err := scanUser(rows, &user); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

type UpdateUserInput struct {
	Username     *string
	Email        *string
	FullName     *string
	Phone        *string
	Role         *string
	PasswordHash *string
}

// Update applies a partial update; unspecified fields retain their prior
// value. Returns the updated row.
func (r *UserRepository) Update(ctx context.Context, id int64, input UpdateUserInput) (*models.User, error) {
	setParts := []string{"updated_at = NOW()"}
	args := []any{id}

	appendSet := func(column string, value any) {
		args = append(args, value)
		setParts = append(setParts, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if input.Username != nil {
		appendSet("username", *input.Username)
	}
	if input.Email != nil {
		appendSet("email", *input.Email)
	}
	if input.FullName != nil {
		appendSet("full_name", *input.FullName)
	}
	if input.Phone != nil {
		appendSet("phone", *input.Phone)
	}
	if input.Role != nil {
		appendSet("role", *input.Role)
	}
	if input.PasswordHash != nil {
		appendSet("password_hash", *input.PasswordHash)
	}

	query := fmt.Sprintf(`
		UPDATE users
		SET %s
		WHERE id = $1
		RETURNING %s
	`, strings.Join(setParts, ", "), userColumns)

	var user models.User
	if err := scanUser(r.db.QueryRow(ctx, query, args...), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner, user *models.User) error {
	return row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.FullName,
		&user.Phone,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
}

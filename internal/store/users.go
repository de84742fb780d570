package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/coffeehouse/e2e/internal/models"
)

// UserRepo reads and updates the users table directly. It is the
// ground-truth oracle for user assertions and the escalation path the
// actor builder uses to change roles without going through the API.
type UserRepo struct {
	exec *Executor
	psql sq.StatementBuilderType
}

func NewUserRepo(exec *Executor) *UserRepo {
	return &UserRepo{
		exec: exec,
		psql: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *UserRepo) GetByID(ctx context.Context, id int64) (Row, error) {
	query, args, err := r.psql.Select("*").
		From("users").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}
	return r.exec.FetchOne(ctx, query, args...)
}

func (r *UserRepo) GetByUsername(ctx context.Context, username string) (Row, error) {
	query, args, err := r.psql.Select("*").
		From("users").
		Where(sq.Eq{"username": username}).
		ToSql()
	if err != nil {
		return nil, err
	}
	return r.exec.FetchOne(ctx, query, args...)
}

func (r *UserRepo) ListByRole(ctx context.Context, role models.Role) ([]Row, error) {
	normalized, err := models.ParseRole(role.String())
	if err != nil {
		return nil, err
	}

	query, args, err := r.psql.Select("*").
		From("users").
		Where(sq.Eq{"role": normalized.String()}).
		ToSql()
	if err != nil {
		return nil, err
	}
	return r.exec.FetchAll(ctx, query, args...)
}

// UpdateRole writes the role directly, bypassing backend authorization.
// Test setup only.
func (r *UserRepo) UpdateRole(ctx context.Context, id int64, role models.Role) error {
	normalized, err := models.ParseRole(role.String())
	if err != nil {
		return err
	}

	query, args, err := r.psql.Update("users").
		Set("role", normalized.String()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}
	return r.exec.Execute(ctx, query, args...)
}

package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
)

// IngredientRepo reads and updates the ingredients table directly.
type IngredientRepo struct {
	exec *Executor
	psql sq.StatementBuilderType
}

func NewIngredientRepo(exec *Executor) *IngredientRepo {
	return &IngredientRepo{
		exec: exec,
		psql: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *IngredientRepo) GetByID(ctx context.Context, id int64) (Row, error) {
	query, args, err := r.psql.Select("*").
		From("ingredients").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}
	return r.exec.FetchOne(ctx, query, args...)
}

func (r *IngredientRepo) List(ctx context.Context) ([]Row, error) {
	query, args, err := r.psql.Select("*").
		From("ingredients").
		OrderBy("name").
		ToSql()
	if err != nil {
		return nil, err
	}
	return r.exec.FetchAll(ctx, query, args...)
}

func (r *IngredientRepo) UpdateQuantity(ctx context.Context, id int64, quantity int) error {
	query, args, err := r.psql.Update("ingredients").
		Set("quantity", quantity).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}
	return r.exec.Execute(ctx, query, args...)
}

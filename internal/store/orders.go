package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/coffeehouse/e2e/internal/models"
)

// OrderRepo reads and updates the coffee_orders table directly.
type OrderRepo struct {
	exec *Executor
	psql sq.StatementBuilderType
}

func NewOrderRepo(exec *Executor) *OrderRepo {
	return &OrderRepo{
		exec: exec,
		psql: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *OrderRepo) GetByID(ctx context.Context, id int64) (Row, error) {
	query, args, err := r.psql.Select("*").
		From("coffee_orders").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}
	return r.exec.FetchOne(ctx, query, args...)
}

func (r *OrderRepo) ListByUser(ctx context.Context, userID int64) ([]Row, error) {
	query, args, err := r.psql.Select("*").
		From("coffee_orders").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, err
	}
	return r.exec.FetchAll(ctx, query, args...)
}

func (r *OrderRepo) UpdateStatus(ctx context.Context, id int64, status models.OrderStatus) error {
	normalized, err := models.ParseOrderStatus(status.String())
	if err != nil {
		return err
	}

	query, args, err := r.psql.Update("coffee_orders").
		Set("status", normalized.String()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}
	return r.exec.Execute(ctx, query, args...)
}

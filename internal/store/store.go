// Package store provides direct database access used both as a
// ground-truth oracle for assertions and for test-setup mutations the
// API would refuse.
package store

import "database/sql"

// Store bundles the table repositories over one shared pool.
type Store struct {
	db          *sql.DB
	users       *UserRepo
	ingredients *IngredientRepo
	orders      *OrderRepo
}

func NewStore(db *sql.DB) *Store {
	exec := NewExecutor(db)
	return &Store{
		db:          db,
		users:       NewUserRepo(exec),
		ingredients: NewIngredientRepo(exec),
		orders:      NewOrderRepo(exec),
	}
}

func (s *Store) Users() *UserRepo {
	return s.users
}

func (s *Store) Ingredients() *IngredientRepo {
	return s.ingredients
}

func (s *Store) Orders() *OrderRepo {
	return s.orders
}

func (s *Store) Close() error {
	return s.db.Close()
}

package store_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/coffeehouse/e2e/internal/models"
	"github.com/coffeehouse/e2e/internal/store"
)

var _ = Describe("Row", func() {
	It("reads integer columns across driver representations", func() {
		row := store.Row{"as_int64": int64(42), "as_int32": int32(7), "as_int": 3}

		Expect(row.Int64("as_int64")).To(Equal(int64(42)))
		Expect(row.Int64("as_int32")).To(Equal(int64(7)))
		Expect(row.Int64("as_int")).To(Equal(int64(3)))
	})

	It("returns zero for missing or non-numeric columns", func() {
		row := store.Row{"name": "latte"}

		Expect(row.Int64("missing")).To(BeZero())
		Expect(row.Int64("name")).To(BeZero())
	})

	It("reads text columns and falls back to empty", func() {
		row := store.Row{"status": "CREATED", "quantity": int64(5)}

		Expect(row.String("status")).To(Equal("CREATED"))
		Expect(row.String("missing")).To(BeEmpty())
		Expect(row.String("quantity")).To(BeEmpty())
	})
})

var _ = Describe("UserRepo", func() {
	It("rejects an unknown role before touching the database", func() {
		repo := store.NewUserRepo(store.NewExecutor(nil))

		err := repo.UpdateRole(context.Background(), 1, models.Role("BARISTA"))

		Expect(err).To(HaveOccurred())
	})

	It("rejects listing by an unknown role", func() {
		repo := store.NewUserRepo(store.NewExecutor(nil))

		_, err := repo.ListByRole(context.Background(), models.Role("nobody"))

		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("OrderRepo", func() {
	It("rejects an unknown status before touching the database", func() {
		repo := store.NewOrderRepo(store.NewExecutor(nil))

		err := repo.UpdateStatus(context.Background(), 1, models.OrderStatus("BREWING"))

		Expect(err).To(HaveOccurred())
	})
})

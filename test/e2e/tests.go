package main

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/coffeehouse/e2e/internal/actor"
	"github.com/coffeehouse/e2e/internal/client"
	"github.com/coffeehouse/e2e/internal/models"
	"github.com/coffeehouse/e2e/internal/store"
	srvErrors "github.com/coffeehouse/e2e/pkg/errors"
	"github.com/coffeehouse/e2e/pkg/wait"
)

var _ = Describe("Coffeehouse e2e tests", Ordered, func() {
	var (
		ctx     context.Context
		st      *store.Store
		auth    *client.AuthClient
		builder *actor.Builder
	)

	BeforeAll(func() {
		ctx = context.Background()

		db, err := store.NewDB(cfg.DatabaseURL)
		Expect(err).ToNot(HaveOccurred(), "failed to connect to database")
		st = store.NewStore(db)

		auth = client.NewAuthClient(cfg.BaseURL)
		builder = actor.NewBuilder(auth, st.Users(), cfg.BaseURL)
	})

	AfterAll(func() {
		if st != nil {
			_ = st.Close()
		}
	})

	Context("actor provisioning", func() {
		// Given a requested role
		// When an actor is built with that role
		// Then the actor, the database row, and the token all report it
		It("should build actors whose role matches the request for every role", func() {
			for _, role := range []models.Role{models.RoleCustomer, models.RoleSeller, models.RoleAdmin} {
				// Act
				a, err := builder.Create(ctx, role)

				// Assert
				Expect(err).ToNot(HaveOccurred(), "failed to build actor with role %s", role)
				Expect(a.Role).To(Equal(role))
				Expect(a.Token).ToNot(BeEmpty())
				Expect(a.Clients).ToNot(BeNil())

				row, err := st.Users().GetByID(ctx, a.ID)
				Expect(err).ToNot(HaveOccurred())
				Expect(row).ToNot(BeNil(), "user row missing from database")
				Expect(row.String("role")).To(Equal(role.String()))

				claim, err := actor.RoleClaim(a.Token)
				Expect(err).ToNot(HaveOccurred())
				Expect(claim).To(Equal(role), "token issued before escalation took effect")
			}
		})

		It("should generate pairwise distinct usernames across builds", func() {
			seen := map[string]bool{}
			for i := 0; i < 5; i++ {
				a, err := builder.Create(ctx, models.RoleCustomer)
				Expect(err).ToNot(HaveOccurred())
				Expect(seen[a.Username]).To(BeFalse(), "username %s collided", a.Username)
				seen[a.Username] = true
			}
		})

		// Escalating to the role the user already holds must not change
		// anything observable.
		It("should treat escalation to the current role as a no-op", func() {
			a, err := builder.Create(ctx, models.RoleCustomer)
			Expect(err).ToNot(HaveOccurred())

			err = st.Users().UpdateRole(ctx, a.ID, models.RoleCustomer)
			Expect(err).ToNot(HaveOccurred())

			row, err := st.Users().GetByID(ctx, a.ID)
			Expect(err).ToNot(HaveOccurred())
			Expect(row.String("role")).To(Equal(models.RoleCustomer.String()))
		})
	})

	Context("authentication", func() {
		// A stale password must fail loudly, never silently succeed.
		It("should reject login with a wrong password", func() {
			a, err := builder.Create(ctx, models.RoleCustomer)
			Expect(err).ToNot(HaveOccurred())

			req, err := models.NewAuthRequest(a.Username, a.Password+"-stale")
			Expect(err).ToNot(HaveOccurred())

			_, err = auth.Login(ctx, req)
			Expect(err).To(HaveOccurred())
			Expect(srvErrors.IsTransportError(err)).To(BeTrue(), "expected a transport failure, got: %v", err)
		})
	})

	Context("order workflow", func() {
		var (
			customer    *actor.Actor
			seller      *actor.Actor
			ingredients *actor.IngredientSet
		)

		BeforeAll(func() {
			var err error
			customer, err = builder.Create(ctx, models.RoleCustomer)
			Expect(err).ToNot(HaveOccurred())
			seller, err = builder.Create(ctx, models.RoleSeller)
			Expect(err).ToNot(HaveOccurred())

			ingredients = actor.NewIngredientSet(seller.Clients.Ingredients)
		})

		AfterAll(func() {
			if ingredients != nil {
				_ = ingredients.Cleanup(ctx)
			}
		})

		It("should run the full order cycle with database verification", func() {
			// Arrange: one ingredient with quantity 2, seller-owned.
			ids, err := ingredients.Provision(ctx, 1, 2)
			Expect(err).ToNot(HaveOccurred())
			Expect(ids).To(HaveLen(1))

			// Act: the customer places an order for it.
			comment := "Пожалуйста, побыстрее!"
			orderReq, err := models.NewCreateOrderRequest(ids, comment)
			Expect(err).ToNot(HaveOccurred())
			order, err := customer.Clients.Orders.Create(ctx, orderReq)
			Expect(err).ToNot(HaveOccurred())

			// Assert: the database row matches what the API reported.
			row, err := st.Orders().GetByID(ctx, order.ID)
			Expect(err).ToNot(HaveOccurred())
			Expect(row).ToNot(BeNil(), "order missing from database after creation")
			Expect(row.Int64("user_id")).To(Equal(customer.ID))
			Expect(row.String("status")).To(Equal(models.OrderStatusCreated.String()))
			Expect(row.String("comment")).To(Equal(comment))

			// Act: the seller moves the order to INPROGRESS.
			statusReq, err := models.NewUpdateOrderStatusRequest(models.OrderStatusInProgress)
			Expect(err).ToNot(HaveOccurred())
			_, err = seller.Clients.Orders.UpdateStatus(ctx, order.ID, statusReq)
			Expect(err).ToNot(HaveOccurred())

			// Assert: the database reflects the new status.
			row, err = st.Orders().GetByID(ctx, order.ID)
			Expect(err).ToNot(HaveOccurred())
			Expect(row.String("status")).To(Equal(models.OrderStatusInProgress.String()))

			// The customer is eventually notified about the state change.
			err = wait.For(ctx, 15*time.Second, time.Second, "order notification", func(ctx context.Context) (bool, error) {
				page, err := customer.Clients.Notifications.List(ctx, nil)
				if err != nil {
					return false, err
				}
				return len(page.Content) > 0, nil
			})
			Expect(err).ToNot(HaveOccurred())
		})

		It("should round-trip a provisioned ingredient through the database", func() {
			ids, err := ingredients.Provision(ctx, 1, 7)
			Expect(err).ToNot(HaveOccurred())

			row, err := st.Ingredients().GetByID(ctx, ids[0])
			Expect(err).ToNot(HaveOccurred())
			Expect(row).ToNot(BeNil())
			Expect(row.Int64("quantity")).To(Equal(int64(7)))
		})

		It("should delete exactly the provisioned ingredients on cleanup", func() {
			set := actor.NewIngredientSet(seller.Clients.Ingredients)
			ids, err := set.Provision(ctx, 2, 3)
			Expect(err).ToNot(HaveOccurred())

			// Mutate one record in between; cleanup still targets IDs.
			err = st.Ingredients().UpdateQuantity(ctx, ids[0], 99)
			Expect(err).ToNot(HaveOccurred())

			err = set.Cleanup(ctx)
			Expect(err).ToNot(HaveOccurred())

			for _, id := range ids {
				row, err := st.Ingredients().GetByID(ctx, id)
				Expect(err).ToNot(HaveOccurred())
				Expect(row).To(BeNil(), "ingredient %d survived cleanup", id)
			}
		})
	})

	Context("messaging", func() {
		It("should deliver a message between two actors", func() {
			sender, err := builder.Create(ctx, models.RoleCustomer)
			Expect(err).ToNot(HaveOccurred())
			receiver, err := builder.Create(ctx, models.RoleSeller)
			Expect(err).ToNot(HaveOccurred())

			req, err := models.NewMessageRequest(sender.ID, receiver.ID, "Двойной эспрессо готов?")
			Expect(err).ToNot(HaveOccurred())
			msg, err := sender.Clients.Messages.Create(ctx, req)
			Expect(err).ToNot(HaveOccurred())
			Expect(msg.ID).ToNot(BeZero())

			dialog, err := receiver.Clients.Messages.Dialog(ctx, sender.ID, receiver.ID)
			Expect(err).ToNot(HaveOccurred())

			var found bool
			for _, m := range dialog {
				if m.ID == msg.ID {
					found = true
					break
				}
			}
			Expect(found).To(BeTrue(), "created message missing from dialog")
		})
	})

	Context("users export", func() {
		It("should return an opaque non-empty payload", func() {
			admin, err := builder.Create(ctx, models.RoleAdmin)
			Expect(err).ToNot(HaveOccurred())

			payload, err := admin.Clients.Users.Export(ctx, "csv")
			Expect(err).ToNot(HaveOccurred())
			Expect(payload).ToNot(BeEmpty())
		})
	})
})

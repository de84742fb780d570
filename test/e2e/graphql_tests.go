package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/coffeehouse/e2e/internal/graphql"
	"github.com/coffeehouse/e2e/internal/models"
)

func gqlUserRequest(role models.Role) models.UserRequest {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:10]
	username := fmt.Sprintf("gql_%s_%s", strings.ToLower(role.String()), suffix)
	req, err := models.NewUserRequest(username, username+"@coffeehouse.test", "Pw1-"+suffix, role)
	Expect(err).ToNot(HaveOccurred())
	return req
}

var _ = Describe("Coffeehouse GraphQL tests", Ordered, func() {
	var (
		ctx         context.Context
		users       *graphql.UsersService
		ingredients *graphql.IngredientsService
	)

	BeforeAll(func() {
		ctx = context.Background()
		gql := graphql.New(cfg.GraphQLURL)
		users = graphql.NewUsersService(gql)
		ingredients = graphql.NewIngredientsService(gql)
	})

	Context("createUser", func() {
		It("should create users with each role", func() {
			for _, role := range []models.Role{models.RoleCustomer, models.RoleSeller, models.RoleAdmin} {
				req := gqlUserRequest(role)

				created, err := users.CreateUser(ctx, req)

				Expect(err).ToNot(HaveOccurred(), "failed to create %s via GraphQL", role)
				Expect(created.ID).ToNot(BeZero())
				Expect(created.Username).To(Equal(req.Username))
				Expect(created.Email).To(Equal(req.Email))
				Expect(created.Role).To(Equal(role))
			}
		})
	})

	Context("users by role", func() {
		// Given one freshly created CUSTOMER
		// When users are queried by that role
		// Then the new user is present and no other role leaks in
		It("should include the new user and only that role", func() {
			created, err := users.CreateUser(ctx, gqlUserRequest(models.RoleCustomer))
			Expect(err).ToNot(HaveOccurred())

			customers, err := users.UsersByRole(ctx, models.RoleCustomer)
			Expect(err).ToNot(HaveOccurred())
			Expect(customers).ToNot(BeEmpty())

			var found bool
			for _, u := range customers {
				Expect(u.Role).To(Equal(models.RoleCustomer), "role leakage for user %d", u.ID)
				if u.ID == created.ID {
					found = true
				}
			}
			Expect(found).To(BeTrue(), "created user %d missing from role query", created.ID)
		})
	})

	Context("ingredients", func() {
		It("should list inventory", func() {
			list, err := ingredients.Ingredients(ctx)
			Expect(err).ToNot(HaveOccurred())
			for _, ing := range list {
				Expect(ing.Name).ToNot(BeEmpty())
			}
		})
	})
})

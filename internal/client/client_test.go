package client_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/coffeehouse/e2e/internal/client"
	"github.com/coffeehouse/e2e/internal/models"
	srvErrors "github.com/coffeehouse/e2e/pkg/errors"
)

// recordedRequest captures what the backend fake saw for assertions.
type recordedRequest struct {
	Method string
	Path   string
	Query  string
	Auth   string
	Body   string
}

var _ = Describe("REST transport", func() {
	var (
		ctx      context.Context
		server   *httptest.Server
		recorded []recordedRequest
		status   int
		response string
	)

	BeforeEach(func() {
		ctx = context.Background()
		recorded = nil
		status = http.StatusOK
		response = `{}`

		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			recorded = append(recorded, recordedRequest{
				Method: r.Method,
				Path:   r.URL.Path,
				Query:  r.URL.RawQuery,
				Auth:   r.Header.Get("Authorization"),
				Body:   string(body),
			})
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(status)
			_, _ = w.Write([]byte(response))
		}))
	})

	AfterEach(func() {
		server.Close()
	})

	Context("bearer token", func() {
		It("should send the construction-time token on every request", func() {
			response = `[]`
			c := client.NewIngredientsClient(server.URL, "tok-123")

			_, err := c.List(ctx)
			Expect(err).ToNot(HaveOccurred())
			_, err = c.ListAvailable(ctx)
			Expect(err).ToNot(HaveOccurred())

			Expect(recorded).To(HaveLen(2))
			for _, req := range recorded {
				Expect(req.Auth).To(Equal("Bearer tok-123"))
			}
		})

		It("should send no Authorization header without a token", func() {
			response = `{"token":"t"}`
			c := client.NewAuthClient(server.URL)

			req, err := models.NewAuthRequest("user", "password")
			Expect(err).ToNot(HaveOccurred())
			_, err = c.Login(ctx, req)
			Expect(err).ToNot(HaveOccurred())

			Expect(recorded[0].Auth).To(BeEmpty())
		})
	})

	Context("success decoding", func() {
		It("should decode the typed result", func() {
			response = `{"id":42,"username":"u","email":"u@b.test","role":"CUSTOMER"}`
			c := client.NewAuthClient(server.URL)

			reg, err := models.NewRegisterRequest("customer_u", "u@b.test", "Pw1-secret9")
			Expect(err).ToNot(HaveOccurred())

			user, err := c.Register(ctx, reg)

			Expect(err).ToNot(HaveOccurred())
			Expect(user.ID).To(Equal(int64(42)))
			Expect(user.Role).To(Equal(models.RoleCustomer))
			Expect(recorded[0].Method).To(Equal(http.MethodPost))
			Expect(recorded[0].Path).To(Equal("/api/auth/register"))
		})

		It("should serialize the request payload as JSON", func() {
			response = `{"id":1,"userId":2,"status":"CREATED"}`
			c := client.NewOrdersClient(server.URL, "tok")

			req, err := models.NewCreateOrderRequest([]int64{5, 6}, "fast please")
			Expect(err).ToNot(HaveOccurred())
			_, err = c.Create(ctx, req)
			Expect(err).ToNot(HaveOccurred())

			var sent map[string]any
			Expect(json.Unmarshal([]byte(recorded[0].Body), &sent)).To(Succeed())
			Expect(sent["ingredientIds"]).To(HaveLen(2))
			Expect(sent["comment"]).To(Equal("fast please"))
		})

		It("should pass pagination parameters as query string", func() {
			response = `{"content":[],"totalElements":0,"totalPages":0,"number":1,"size":5}`
			c := client.NewOrdersClient(server.URL, "tok")

			_, err := c.List(ctx, &models.PageParams{Page: 1, Size: 5})
			Expect(err).ToNot(HaveOccurred())

			Expect(recorded[0].Query).To(ContainSubstring("page=1"))
			Expect(recorded[0].Query).To(ContainSubstring("size=5"))
		})

		It("should return opaque bytes from the export endpoint", func() {
			response = "id,username\n1,a\n"
			c := client.NewUsersClient(server.URL, "tok")

			payload, err := c.Export(ctx, "csv")

			Expect(err).ToNot(HaveOccurred())
			Expect(string(payload)).To(ContainSubstring("id,username"))
			Expect(recorded[0].Query).To(Equal("format=csv"))
		})
	})

	Context("failures", func() {
		It("should raise a transport error on a non-success status", func() {
			status = http.StatusUnauthorized
			response = `{"error":"bad credentials"}`
			c := client.NewAuthClient(server.URL)

			req, err := models.NewAuthRequest("user", "wrong")
			Expect(err).ToNot(HaveOccurred())

			_, err = c.Login(ctx, req)

			Expect(err).To(HaveOccurred())

			var terr *srvErrors.TransportError
			Expect(errors.As(err, &terr)).To(BeTrue())
			Expect(terr.StatusCode).To(Equal(http.StatusUnauthorized))
		})

		It("should raise a contract violation when the shape mismatches", func() {
			response = `{"id":"not-a-number"}`
			c := client.NewOrdersClient(server.URL, "tok")

			_, err := c.Get(ctx, 1)

			Expect(err).To(HaveOccurred())
			Expect(srvErrors.IsContractViolationError(err)).To(BeTrue())
			Expect(srvErrors.IsTransportError(err)).To(BeFalse())
		})

		It("should raise a transport error when the backend is unreachable", func() {
			server.Close()
			c := client.NewOrdersClient(server.URL, "tok")

			_, err := c.Get(ctx, 1)

			Expect(err).To(HaveOccurred())
			Expect(srvErrors.IsTransportError(err)).To(BeTrue())
		})
	})
})

var _ = Describe("Client set factory", func() {
	var server *httptest.Server

	BeforeEach(func() {
		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[]`))
		}))
	})

	AfterEach(func() {
		server.Close()
	})

	It("should wire every domain client", func() {
		set := client.NewSet(server.URL, "tok")

		Expect(set.Orders).ToNot(BeNil())
		Expect(set.Notifications).ToNot(BeNil())
		Expect(set.Ingredients).ToNot(BeNil())
		Expect(set.Messages).ToNot(BeNil())
		Expect(set.Users).ToNot(BeNil())
	})

	It("should produce fully independent sets per invocation", func() {
		a := client.NewSet(server.URL, "token-a")
		b := client.NewSet(server.URL, "token-b")

		Expect(a.Orders).ToNot(BeIdenticalTo(b.Orders))
		Expect(a.Ingredients).ToNot(BeIdenticalTo(b.Ingredients))
		Expect(a.Users).ToNot(BeIdenticalTo(b.Users))
	})
})

package actor_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/coffeehouse/e2e/internal/actor"
	"github.com/coffeehouse/e2e/internal/client"
	"github.com/coffeehouse/e2e/internal/models"
)

// fakeInventory emulates the ingredients endpoints with an in-memory
// record of live rows and deletions.
type fakeInventory struct {
	nextID     int64
	rows       map[int64]models.Ingredient
	deleted    []int64
	createFail bool
	deleteFail map[int64]bool
}

func newFakeInventory() *fakeInventory {
	return &fakeInventory{rows: map[int64]models.Ingredient{}, deleteFail: map[int64]bool{}}
}

func (f *fakeInventory) handler() http.Handler {
	// Method-and-wildcard mux patterns need Go 1.22; route by hand so the
	// fake works on older toolchains.
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/ingredients":
			if f.createFail && len(f.rows) >= 1 {
				http.Error(w, `{"error":"out of space"}`, http.StatusInternalServerError)
				return
			}
			var req models.IngredientRequest
			_ = json.NewDecoder(r.Body).Decode(&req)
			f.nextID++
			ing := models.Ingredient{ID: f.nextID, Name: req.Name, Quantity: req.Quantity}
			f.rows[ing.ID] = ing
			_ = json.NewEncoder(w).Encode(ing)

		case r.Method == http.MethodDelete && strings.HasPrefix(r.URL.Path, "/api/ingredients/"):
			id, _ := strconv.ParseInt(strings.TrimPrefix(r.URL.Path, "/api/ingredients/"), 10, 64)
			if f.deleteFail[id] {
				http.Error(w, `{"error":"locked"}`, http.StatusConflict)
				return
			}
			if _, ok := f.rows[id]; !ok {
				http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
				return
			}
			delete(f.rows, id)
			f.deleted = append(f.deleted, id)
			w.WriteHeader(http.StatusNoContent)

		default:
			http.NotFound(w, r)
		}
	})
}

var _ = Describe("IngredientSet", func() {
	var (
		ctx       context.Context
		inventory *fakeInventory
		server    *httptest.Server
		set       *actor.IngredientSet
	)

	BeforeEach(func() {
		ctx = context.Background()
		inventory = newFakeInventory()
		server = httptest.NewServer(inventory.handler())
		set = actor.NewIngredientSet(client.NewIngredientsClient(server.URL, "seller-token"))
	})

	AfterEach(func() {
		server.Close()
	})

	It("should create the requested count with unique names, in order", func() {
		ids, err := set.Provision(ctx, 3, 5)

		Expect(err).ToNot(HaveOccurred())
		Expect(ids).To(Equal([]int64{1, 2, 3}))

		names := map[string]bool{}
		for _, id := range ids {
			ing := inventory.rows[id]
			Expect(ing.Quantity).To(Equal(5))
			Expect(strings.HasPrefix(ing.Name, "ingredient-")).To(BeTrue())
			Expect(names[ing.Name]).To(BeFalse(), "duplicate name %s", ing.Name)
			names[ing.Name] = true
		}
	})

	It("should accumulate identifiers across provisioning calls", func() {
		_, err := set.Provision(ctx, 1, 2)
		Expect(err).ToNot(HaveOccurred())
		_, err = set.Provision(ctx, 2, 2)
		Expect(err).ToNot(HaveOccurred())

		Expect(set.Created()).To(Equal([]int64{1, 2, 3}))
	})

	It("should delete exactly the recorded identifiers on cleanup", func() {
		ids, err := set.Provision(ctx, 2, 4)
		Expect(err).ToNot(HaveOccurred())

		err = set.Cleanup(ctx)

		Expect(err).ToNot(HaveOccurred())
		Expect(inventory.deleted).To(Equal(ids))
		Expect(inventory.rows).To(BeEmpty())
		Expect(set.Created()).To(BeEmpty())
	})

	It("should keep already-created identifiers when a later create fails", func() {
		inventory.createFail = true

		ids, err := set.Provision(ctx, 3, 1)

		Expect(err).To(HaveOccurred())
		Expect(ids).To(HaveLen(1))
		Expect(set.Created()).To(Equal(ids), "partial creations must stay tracked for cleanup")

		Expect(set.Cleanup(ctx)).To(Succeed())
		Expect(inventory.rows).To(BeEmpty())
	})

	It("should report but survive a failed deletion", func() {
		ids, err := set.Provision(ctx, 2, 1)
		Expect(err).ToNot(HaveOccurred())

		// One record vanishes behind the harness's back.
		delete(inventory.rows, ids[0])

		err = set.Cleanup(ctx)

		Expect(err).To(HaveOccurred())
		Expect(inventory.deleted).To(ContainElement(ids[1]), "remaining record must still be cleaned")
	})

	It("should keep identifiers whose deletion failed for a later attempt", func() {
		ids, err := set.Provision(ctx, 2, 1)
		Expect(err).ToNot(HaveOccurred())

		inventory.deleteFail[ids[0]] = true

		err = set.Cleanup(ctx)
		Expect(err).To(HaveOccurred())
		Expect(set.Created()).To(Equal([]int64{ids[0]}), "failed deletion must stay recorded")

		// The lock clears and the second attempt finishes the job.
		inventory.deleteFail[ids[0]] = false

		Expect(set.Cleanup(ctx)).To(Succeed())
		Expect(set.Created()).To(BeEmpty())
		Expect(inventory.rows).To(BeEmpty())
	})
})

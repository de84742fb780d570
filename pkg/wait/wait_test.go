package wait_test

import (
	"context"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/coffeehouse/e2e/pkg/wait"
)

var _ = Describe("For", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	It("should return once the condition holds", func() {
		calls := 0
		err := wait.For(ctx, time.Second, time.Millisecond, "third call", func(ctx context.Context) (bool, error) {
			calls++
			return calls >= 3, nil
		})

		Expect(err).ToNot(HaveOccurred())
		Expect(calls).To(Equal(3))
	})

	It("should time out with the condition description", func() {
		err := wait.For(ctx, 20*time.Millisecond, 5*time.Millisecond, "a notification", func(ctx context.Context) (bool, error) {
			return false, nil
		})

		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("a notification"))
	})

	It("should abort immediately on a condition error", func() {
		boom := errors.New("boom")
		err := wait.For(ctx, time.Second, time.Millisecond, "never", func(ctx context.Context) (bool, error) {
			return false, boom
		})

		Expect(errors.Is(err, boom)).To(BeTrue())
	})

	It("should stop when the caller context is cancelled", func() {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		err := wait.For(cancelled, time.Second, 5*time.Millisecond, "never", func(ctx context.Context) (bool, error) {
			return false, nil
		})

		Expect(err).To(HaveOccurred())
	})
})

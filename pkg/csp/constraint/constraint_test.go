package constraint_test

import (
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Sarronnn/Algorithms-Date-Constraint/pkg/csp/constraint"

	"github.com/Sarronnn/Algorithms-Date-Constraint/pkg/csp"
)

func TestPkg(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Constraint Suite")
}

var _ = Describe("Constraint", func() {
	sep1 := csp.Date(2026, time.September, 1)
	sep2 := csp.Date(2026, time.September, 2)
	sep3 := csp.Date(2026, time.September, 3)

	Describe("UnaryConstraint", func() {
		It("should have arity 1", func() {
			Expect(constraint.Unary(0, csp.OpEqual, sep3).Arity()).To(Equal(1))
		})

		It("should hold exactly for dates in the operator's relation", func() {
			bound := constraint.Unary(2, csp.OpOnOrBefore, sep2)
			Expect(bound.SatisfiedBy(sep1)).To(BeTrue())
			Expect(bound.SatisfiedBy(sep2)).To(BeTrue())
			Expect(bound.SatisfiedBy(sep3)).To(BeFalse())
		})

		It("should truncate its date to a day", func() {
			pinned := constraint.Unary(0, csp.OpEqual, sep3.Add(14*time.Hour))
			Expect(pinned.Date).To(Equal(sep3))
			Expect(pinned).To(Equal(constraint.Unary(0, csp.OpEqual, sep3)))
		})

		It("should render as a comparison", func() {
			Expect(constraint.Unary(2, csp.OpNotEqual, sep3).String()).To(Equal("(2 != 2026-09-03)"))
		})
	})

	Describe("BinaryConstraint", func() {
		It("should have arity 2", func() {
			Expect(constraint.Binary(0, csp.OpBefore, 1).Arity()).To(Equal(2))
		})

		It("should hold exactly for date pairs in the operator's relation", func() {
			ordered := constraint.Binary(0, csp.OpBefore, 1)
			Expect(ordered.SatisfiedBy(sep1, sep2)).To(BeTrue())
			Expect(ordered.SatisfiedBy(sep2, sep1)).To(BeFalse())
			Expect(ordered.SatisfiedBy(sep1, sep1)).To(BeFalse())
		})

		It("should reverse into the mirrored constraint", func() {
			ordered := constraint.Binary(0, csp.OpOnOrBefore, 1)
			Expect(ordered.Reverse()).To(Equal(constraint.Binary(1, csp.OpOnOrAfter, 0)))
			Expect(ordered.Reverse().Reverse()).To(Equal(ordered))
		})

		It("should be equivalent to its reverse", func() {
			ordered := constraint.Binary(0, csp.OpBefore, 1)
			reversed := ordered.Reverse()
			for _, left := range []time.Time{sep1, sep2} {
				for _, right := range []time.Time{sep1, sep2} {
					Expect(ordered.SatisfiedBy(left, right)).To(Equal(reversed.SatisfiedBy(right, left)))
				}
			}
		})

		It("should allow a meeting to be related to itself", func() {
			Expect(constraint.Binary(1, csp.OpEqual, 1).SatisfiedBy(sep1, sep1)).To(BeTrue())
			Expect(constraint.Binary(1, csp.OpBefore, 1).SatisfiedBy(sep1, sep1)).To(BeFalse())
		})

		It("should render as a comparison", func() {
			Expect(constraint.Binary(0, csp.OpBefore, 1).String()).To(Equal("(0 < 1)"))
		})
	})
})

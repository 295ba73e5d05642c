package search_test

import (
	"math/rand"
	"slices"

	"github.com/google/go-cmp/cmp"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/bsviz/internal/search"
)

var classic = []int{2, 5, 8, 12, 16, 23, 38, 42, 56, 72, 91}

// checkTrace asserts every structural invariant a trace must satisfy.
func checkTrace(arr []int, target int, tr search.Trace[int]) {
	GinkgoHelper()

	Expect(tr.Len()).To(BeNumerically(">=", 1))
	Expect(tr.Len()).To(BeNumerically("<=", search.MaxSteps(len(arr))))

	first := tr.At(0)
	Expect(first.HasMid()).To(BeFalse())
	Expect(first.Eliminated.Len()).To(BeZero())
	Expect(first.Left).To(Equal(0))
	Expect(first.Right).To(Equal(len(arr) - 1))

	for i := 1; i < tr.Len(); i++ {
		Expect(tr.At(i - 1).Eliminated.SubsetOf(tr.At(i).Eliminated)).To(BeTrue(),
			"eliminated set shrank between steps %d and %d", i-1, i)
	}

	found := 0
	for i, st := range tr.Steps {
		if st.Found {
			found++
			Expect(i).To(Equal(tr.Len()-1), "found step must be last")
			Expect(arr[st.Mid]).To(Equal(target))
			Expect(st.Eliminated.Has(st.Mid)).To(BeFalse())
		}
		if st.HasMid() {
			Expect(st.Mid).To(BeNumerically(">=", st.Left))
			Expect(st.Mid).To(BeNumerically("<=", st.Right))
			Expect(st.Mid).To(Equal((st.Left + st.Right) / 2))
		}
	}
	Expect(found).To(BeNumerically("<=", 1))

	if found == 0 {
		last := tr.Last()
		Expect(last.HasMid()).To(BeFalse())
		Expect(last.Left).To(BeNumerically(">", last.Right))
		Expect(slices.Contains(arr, target)).To(BeFalse())
	} else {
		Expect(slices.Contains(arr, target)).To(BeTrue())
	}
}

var _ = Describe("Plan", func() {
	Context("on the classic eleven element array", func() {
		It("finds 72 at index 9 (scenario A)", func() {
			tr, err := search.Plan(classic, 72)
			Expect(err).NotTo(HaveOccurred())

			last := tr.Last()
			Expect(last.Found).To(BeTrue())
			Expect(last.Mid).To(Equal(9))
			Expect(tr.Array[9]).To(Equal(72))
			checkTrace(classic, 72, tr)
		})

		It("exhausts the window for 100 (scenario B)", func() {
			tr, err := search.Plan(classic, 100)
			Expect(err).NotTo(HaveOccurred())

			for _, st := range tr.Steps {
				Expect(st.Found).To(BeFalse())
			}
			last := tr.Last()
			Expect(last.Exhausted()).To(BeTrue())
			Expect(last.Left).To(Equal(11))
			Expect(last.Right).To(Equal(10))
			Expect(last.Eliminated.Len()).To(Equal(len(classic)))
			checkTrace(classic, 100, tr)
		})

		It("finds the first element at index 0 (scenario C)", func() {
			tr, err := search.Plan(classic, 2)
			Expect(err).NotTo(HaveOccurred())

			idx, ok := tr.Found()
			Expect(ok).To(BeTrue())
			Expect(idx).To(Equal(0))
			Expect(tr.Last().Eliminated.String()).To(Equal("{2-10}"))
			checkTrace(classic, 2, tr)
		})
	})

	Context("on a single element array", func() {
		It("emits initial and found steps when the element matches (scenario D)", func() {
			tr, err := search.Plan([]int{5}, 5)
			Expect(err).NotTo(HaveOccurred())
			Expect(tr.Len()).To(Equal(2))
			Expect(tr.At(0).HasMid()).To(BeFalse())
			Expect(tr.At(1).Found).To(BeTrue())
			Expect(tr.At(1).Mid).To(Equal(0))
		})

		DescribeTable("records the comparison before the exhausted step (scenario E)",
			func(target, wantLeft, wantRight int) {
				tr, err := search.Plan([]int{5}, target)
				Expect(err).NotTo(HaveOccurred())
				Expect(tr.Len()).To(Equal(3))

				cmpStep := tr.At(1)
				Expect(cmpStep.Mid).To(Equal(0))
				Expect(cmpStep.Found).To(BeFalse())
				Expect(cmpStep.Eliminated.Slice()).To(Equal([]int{0}))

				last := tr.Last()
				Expect(last.Exhausted()).To(BeTrue())
				Expect(last.Left).To(Equal(wantLeft))
				Expect(last.Right).To(Equal(wantRight))
			},
			Entry("target above", 9, 1, 0),
			Entry("target below", 1, 0, -1),
		)
	})

	Context("with duplicates", func() {
		It("reports some matching index", func() {
			arr := []int{1, 3, 3, 3, 3, 3, 9}
			tr, err := search.Plan(arr, 3)
			Expect(err).NotTo(HaveOccurred())

			idx, ok := tr.Found()
			Expect(ok).To(BeTrue())
			Expect(arr[idx]).To(Equal(3))
			checkTrace(arr, 3, tr)
		})
	})

	Context("with malformed input", func() {
		It("rejects an empty array", func() {
			_, err := search.Plan([]int{}, 1)
			Expect(err).To(MatchError(search.ErrEmptyArray))
		})

		It("rejects an unsorted array without producing steps", func() {
			tr, err := search.Plan([]int{3, 1, 2}, 1)
			Expect(err).To(MatchError(search.ErrUnsorted))
			Expect(tr.Steps).To(BeEmpty())
		})
	})

	It("is deterministic", func() {
		a, err := search.Plan(classic, 42)
		Expect(err).NotTo(HaveOccurred())
		b, err := search.Plan(classic, 42)
		Expect(err).NotTo(HaveOccurred())
		Expect(cmp.Diff(a, b)).To(BeEmpty())
	})

	It("holds every invariant over generated arrays", func() {
		rng := rand.New(rand.NewSource(7))
		for n := 1; n <= 64; n++ {
			arr := make([]int, n)
			for i := range arr {
				arr[i] = rng.Intn(3 * n)
			}
			slices.Sort(arr)

			targets := []int{arr[0] - 1, arr[n-1] + 1}
			for _, v := range arr {
				targets = append(targets, v, v+1)
			}
			for _, target := range targets {
				tr, err := search.Plan(arr, target)
				Expect(err).NotTo(HaveOccurred())
				checkTrace(arr, target, tr)

				again, err := search.Plan(arr, target)
				Expect(err).NotTo(HaveOccurred())
				Expect(cmp.Diff(tr, again)).To(BeEmpty())
			}
		}
	})
})

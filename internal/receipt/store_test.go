package receipt

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// sequenceIDGenerator returns a fixed sequence of identifiers, repeating
// the last entry once the sequence is exhausted
type sequenceIDGenerator struct {
	ids  []string
	next int
}

func (g *sequenceIDGenerator) Generate() string {
	id := g.ids[g.next]
	if g.next < len(g.ids)-1 {
		g.next++
	}
	return id
}

var _ = Describe("MemoryStore", func() {
	var store *MemoryStore

	BeforeEach(func() {
		store = NewMemoryStore()
	})

	Describe("Save", func() {
		It("should return a non-empty identifier", func() {
			id, err := store.Save(targetReceipt())
			Expect(err).NotTo(HaveOccurred())
			Expect(id).NotTo(BeEmpty())
		})

		It("should return the same identifier for identical content", func() {
			first, err := store.Save(targetReceipt())
			Expect(err).NotTo(HaveOccurred())

			second, err := store.Save(targetReceipt())
			Expect(err).NotTo(HaveOccurred())
			Expect(second).To(Equal(first))
		})

		It("should return different identifiers when any field differs", func() {
			first, err := store.Save(targetReceipt())
			Expect(err).NotTo(HaveOccurred())

			other := targetReceipt()
			other.PurchaseTime = "13:02"
			second, err := store.Save(other)
			Expect(err).NotTo(HaveOccurred())
			Expect(second).NotTo(Equal(first))
		})

		It("should retry identifier generation on collision", func() {
			store = NewMemoryStoreWithIDGenerator(&sequenceIDGenerator{
				ids: []string{"dup", "dup", "fresh"},
			})

			first, err := store.Save(targetReceipt())
			Expect(err).NotTo(HaveOccurred())
			Expect(first).To(Equal("dup"))

			other := targetReceipt()
			other.Retailer = "Walgreens"
			second, err := store.Save(other)
			Expect(err).NotTo(HaveOccurred())
			Expect(second).To(Equal("fresh"))
		})
	})

	Describe("Get", func() {
		It("should round-trip a stored receipt", func() {
			id, err := store.Save(targetReceipt())
			Expect(err).NotTo(HaveOccurred())

			got, err := store.Get(id)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(targetReceipt()))
		})

		It("should fail with a NotFoundError for an unknown identifier", func() {
			_, err := store.Get("never-issued")
			Expect(err).To(HaveOccurred())

			var nferr *NotFoundError
			Expect(errors.As(err, &nferr)).To(BeTrue())
			Expect(nferr.ID).To(Equal("never-issued"))
		})

		It("should fail with a NotFoundError for an empty identifier", func() {
			_, err := store.Get("")
			var nferr *NotFoundError
			Expect(errors.As(err, &nferr)).To(BeTrue())
		})
	})
})

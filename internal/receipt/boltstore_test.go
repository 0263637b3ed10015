package receipt

import (
	"errors"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("BoltStore", func() {
	var (
		path  string
		store *BoltStore
	)

	BeforeEach(func() {
		path = filepath.Join(GinkgoT().TempDir(), "receipts.db")
		var err error
		store, err = NewBoltStore(path)
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		Expect(store.Close()).To(Succeed())
	})

	Describe("Save", func() {
		It("should return the same identifier for identical content", func() {
			first, err := store.Save(targetReceipt())
			Expect(err).NotTo(HaveOccurred())

			second, err := store.Save(targetReceipt())
			Expect(err).NotTo(HaveOccurred())
			Expect(second).To(Equal(first))
		})

		It("should return different identifiers for different content", func() {
			first, err := store.Save(targetReceipt())
			Expect(err).NotTo(HaveOccurred())

			other := targetReceipt()
			other.Total = "35.36"
			second, err := store.Save(other)
			Expect(err).NotTo(HaveOccurred())
			Expect(second).NotTo(Equal(first))
		})

		It("should keep deduplicating after a reopen", func() {
			first, err := store.Save(targetReceipt())
			Expect(err).NotTo(HaveOccurred())
			Expect(store.Close()).To(Succeed())

			store, err = NewBoltStore(path)
			Expect(err).NotTo(HaveOccurred())

			second, err := store.Save(targetReceipt())
			Expect(err).NotTo(HaveOccurred())
			Expect(second).To(Equal(first))
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
		})
	})
})

package receipt

import (
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

const (
	receiptBucketName   = "receipts"
	canonicalBucketName = "canonical"
)

// BoltStore implements the Store interface using BoltDB, for deployments
// that want receipts to outlive the process. The canonical bucket maps each
// record's canonical form back to its identifier so dedup survives restarts.
type BoltStore struct {
	db    *bbolt.DB
	idGen IDGenerator
}

// NewBoltStore opens a bbolt-backed store, creating the file if needed
func NewBoltStore(path string) (*BoltStore, error) {
	return NewBoltStoreWithIDGenerator(path, uuidGenerator{})
}

// NewBoltStoreWithIDGenerator opens a bbolt-backed store with a custom
// identifier generator for testing
func NewBoltStoreWithIDGenerator(path string, idGen IDGenerator) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening boltdb: %w", err)
	}

	// Create buckets if they don't exist
	err = db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte(receiptBucketName)); err != nil {
			return err
		}
		if _, err := tx.CreateBucketIfNotExists([]byte(canonicalBucketName)); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating buckets: %w", err)
	}

	return &BoltStore{db: db, idGen: idGen}, nil
}

// Save stores a receipt, reusing the identifier of an existing record with
// the same canonical form. The dedup check and the insert share a single
// update transaction.
func (b *BoltStore) Save(rc *Receipt) (string, error) {
	canon := canonicalForm(rc)

	var id string
	err := b.db.Update(func(tx *bbolt.Tx) error {
		canonBucket := tx.Bucket([]byte(canonicalBucketName))
		if existing := canonBucket.Get([]byte(canon)); existing != nil {
			id = string(existing)
			return nil
		}

		receipts := tx.Bucket([]byte(receiptBucketName))
		id = b.idGen.Generate()
		for receipts.Get([]byte(id)) != nil {
			id = b.idGen.Generate()
		}

		data, err := json.Marshal(rc)
		if err != nil {
			return fmt.Errorf("marshaling receipt: %w", err)
		}
		if err := receipts.Put([]byte(id), data); err != nil {
			return err
		}
		return canonBucket.Put([]byte(canon), []byte(id))
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

// Get retrieves a receipt by identifier
func (b *BoltStore) Get(id string) (*Receipt, error) {
	var rc *Receipt
	err := b.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket([]byte(receiptBucketName)).Get([]byte(id))
		if data == nil {
			return &NotFoundError{ID: id}
		}
		return json.Unmarshal(data, &rc)
	})
	if err != nil {
		return nil, err
	}
	return rc, nil
}

// Close closes the database connection
func (b *BoltStore) Close() error {
	return b.db.Close()
}

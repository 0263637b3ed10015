package receipt

import (
	"sync"

	"github.com/google/uuid"
)

// IDGenerator produces candidate identifiers for stored receipts
type IDGenerator interface {
	Generate() string
}

// uuidGenerator generates random 128-bit identifiers
type uuidGenerator struct{}

func (uuidGenerator) Generate() string {
	return uuid.NewString()
}

// Store defines the interface for receipt storage operations
type Store interface {
	// Save stores a receipt and returns its identifier. Content identical
	// to an existing record yields that record's identifier and creates
	// nothing.
	Save(rc *Receipt) (string, error)

	// Get retrieves a receipt by identifier, failing with a NotFoundError
	// when the identifier was never issued.
	Get(id string) (*Receipt, error)

	// Close releases any resources held by the store
	Close() error
}

// MemoryStore implements the Store interface with a process-lifetime
// in-memory map. Records are immutable and never deleted.
type MemoryStore struct {
	mu       sync.RWMutex
	receipts map[string]*Receipt
	byCanon  map[string]string
	idGen    IDGenerator
}

// NewMemoryStore creates a MemoryStore with random UUID identifiers
func NewMemoryStore() *MemoryStore {
	return NewMemoryStoreWithIDGenerator(uuidGenerator{})
}

// NewMemoryStoreWithIDGenerator creates a MemoryStore with a custom
// identifier generator for testing
func NewMemoryStoreWithIDGenerator(idGen IDGenerator) *MemoryStore {
	return &MemoryStore{
		receipts: make(map[string]*Receipt),
		byCanon:  make(map[string]string),
		idGen:    idGen,
	}
}

// Save stores a receipt under a fresh identifier, or returns the existing
// identifier when the same content was submitted before. The write lock is
// held across the dedup check and the insert, so two concurrent identical
// submissions cannot both create records.
func (s *MemoryStore) Save(rc *Receipt) (string, error) {
	canon := canonicalForm(rc)

	s.mu.Lock()
	defer s.mu.Unlock()

	if id, ok := s.byCanon[canon]; ok {
		return id, nil
	}

	id := s.idGen.Generate()
	for {
		if _, exists := s.receipts[id]; !exists {
			break
		}
		id = s.idGen.Generate()
	}

	s.receipts[id] = rc
	s.byCanon[canon] = id
	return id, nil
}

// Get retrieves a receipt by identifier
func (s *MemoryStore) Get(id string) (*Receipt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rc, ok := s.receipts[id]
	if !ok {
		return nil, &NotFoundError{ID: id}
	}
	return rc, nil
}

// Close is a no-op for the in-memory store
func (s *MemoryStore) Close() error {
	return nil
}

package receipt

import (
	"fmt"
	"log/slog"
)

// Service handles receipt operations
type Service struct {
	store Store
}

// NewService creates a new Service backed by the given store
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Process validates a raw receipt document and stores it, returning the
// receipt's identifier. Submitting content identical to an earlier receipt
// returns that receipt's identifier instead of creating a new record.
func (s *Service) Process(data []byte) (string, error) {
	rc, err := ParseReceipt(data)
	if err != nil {
		return "", err
	}

	id, err := s.store.Save(rc)
	if err != nil {
		return "", fmt.Errorf("saving receipt: %w", err)
	}

	slog.Info("Processed receipt", "id", id, "retailer", rc.Retailer)
	return id, nil
}

// GetPoints resolves an identifier and scores its receipt
func (s *Service) GetPoints(id string) (int, error) {
	rc, err := s.store.Get(id)
	if err != nil {
		return 0, fmt.Errorf("getting receipt: %w", err)
	}
	return Points(rc), nil
}

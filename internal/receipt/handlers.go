package receipt

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
)

// writeJSON writes a JSON response with CORS headers set
func writeJSON(w http.ResponseWriter, code int, v any) {
	setCORSHeaders(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Error encoding response", "error", err)
	}
}

// handleIndex returns a small service banner
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"service": "receipt-processor",
		"version": s.version,
	})
}

// handleProcessReceipt accepts a receipt document and returns its identifier
func (s *Server) handleProcessReceipt(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		slog.Error("Error reading request body", "error", err)
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "Error reading request body",
		})
		return
	}

	id, err := s.service.Process(body)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			slog.Info("Rejected receipt", "missing", verr.Missing)
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"error":   verr.Error(),
				"missing": verr.Missing,
			})
			return
		}
		slog.Error("Error processing receipt", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error": "Internal server error",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"id": id})
}

// handleGetPoints returns the points awarded to a stored receipt
func (s *Server) handleGetPoints(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	points, err := s.service.GetPoints(id)
	if err != nil {
		var nferr *NotFoundError
		if errors.As(err, &nferr) {
			writeJSON(w, http.StatusNotFound, map[string]string{
				"error": "Receipt not found",
			})
			return
		}
		slog.Error("Error scoring receipt", "id", id, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error": "Internal server error",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"points": points})
}

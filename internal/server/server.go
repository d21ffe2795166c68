// Package server implements the feed bridge: the HTTP surface the chart
// client polls, backed by the ticking coil store.
package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/McClunatic/modbus-d3/internal/coil"
)

// Bridge serves GET / (one decoded sample) and GET /reset (sample log
// rotation).
type Bridge struct {
	store *coil.Store
	slog  *sampleLog
}

// NewBridge wires a Bridge to store; sample log files are created under
// logDir.
func NewBridge(store *coil.Store, logDir string) *Bridge {
	return &Bridge{
		store: store,
		slog:  newSampleLog(logDir),
	}
}

// Handler returns the bridge's route table.
func (b *Bridge) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", b.handleSample)
	mux.HandleFunc("/reset", b.handleReset)
	return mux
}

func (b *Bridge) handleSample(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	x, y, ok := b.store.Read()
	if !ok {
		writeJSON(w, http.StatusInternalServerError,
			map[string]string{"detail": "coil store not primed"})
		return
	}
	if err := b.slog.Record(x, y); err != nil {
		// The sample still goes out; logging is best effort.
		log.Printf("sample log: %v", err)
	}
	writeJSON(w, http.StatusOK, map[string]float64{"x": x, "y": y})
}

func (b *Bridge) handleReset(w http.ResponseWriter, r *http.Request) {
	if err := b.slog.Rotate(); err != nil {
		log.Printf("rotate sample log: %v", err)
	}
	writeJSON(w, http.StatusOK, map[string]any{})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("encode response: %v", err)
	}
}

// Package adplatformtest provides an in-memory ad platform for tests.
// The campaign table is an explicit Store created per test and passed into
// the server constructor; nothing is process-wide.
package adplatformtest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
)

// Dialect selects which platform wire shape the fake speaks.
type Dialect string

const (
	// DialectGoogle answers with {"campaignId","accountId"} launches and
	// {"state","spend","roi"} statuses.
	DialectGoogle Dialect = "google"
	// DialectFacebook answers with {"id","account"} launches and
	// {"status","spent","roi"} statuses, spend in minor units.
	DialectFacebook Dialect = "facebook"
)

// Campaign is one row in the fake platform's campaign table.
type Campaign struct {
	ID         string
	Account    string
	Status     string // platform-native status word
	Spend      *float64
	SpentMinor *int64
	ROI        *float64
}

// Store holds the fake platform's campaigns. Create one per test and
// discard it with the test.
type Store struct {
	mu        sync.Mutex
	campaigns map[string]*Campaign
	nextID    int
}

// NewStore creates an empty campaign table.
func NewStore() *Store {
	return &Store{campaigns: make(map[string]*Campaign)}
}

// Add inserts a campaign and returns its id.
func (s *Store) Add(c Campaign) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c.ID == "" {
		s.nextID++
		c.ID = fmt.Sprintf("cmp-%d", s.nextID)
	}
	s.campaigns[c.ID] = &c
	return c.ID
}

// Get returns a copy of the campaign, if present.
func (s *Store) Get(id string) (Campaign, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.campaigns[id]
	if !ok {
		return Campaign{}, false
	}
	return *c, true
}

// SetStatus overwrites a campaign's platform-native status word.
func (s *Store) SetStatus(id, status string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.campaigns[id]; ok {
		c.Status = status
	}
}

// Server is an httptest-backed fake ad platform.
type Server struct {
	dialect Dialect
	store   *Store
	httpSrv *httptest.Server

	mu         sync.Mutex
	pauseCalls map[string]int
	failStatus bool
}

// NewServer starts a fake platform speaking the given dialect over the
// given store. Callers own both lifecycles: Close the server and drop the
// store when the test ends.
func NewServer(dialect Dialect, store *Store) *Server {
	s := &Server{
		dialect:    dialect,
		store:      store,
		pauseCalls: make(map[string]int),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /campaigns", s.handleLaunch)
	mux.HandleFunc("GET /campaigns/{id}/status", s.handleStatus)
	mux.HandleFunc("POST /campaigns/{id}/pause", s.handlePause)
	s.httpSrv = httptest.NewServer(mux)
	return s
}

// URL returns the base URL clients should be configured with.
func (s *Server) URL() string {
	return s.httpSrv.URL
}

// Close shuts the fake platform down.
func (s *Server) Close() {
	s.httpSrv.Close()
}

// PauseCalls reports how many times pause was requested for a campaign.
func (s *Server) PauseCalls(id string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pauseCalls[id]
}

// FailStatusCalls makes every status call answer 500 until re-enabled,
// simulating a platform outage.
func (s *Server) FailStatusCalls(fail bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failStatus = fail
}

func (s *Server) handleLaunch(w http.ResponseWriter, r *http.Request) {
	var spec struct {
		Title     string   `json:"title"`
		Audience  string   `json:"audience"`
		Creatives []string `json:"creatives"`
	}
	if err := json.NewDecoder(r.Body).Decode(&spec); err != nil {
		http.Error(w, "bad launch body", http.StatusBadRequest)
		return
	}

	status := "ENABLED"
	if s.dialect == DialectFacebook {
		status = "ACTIVE"
	}
	id := s.store.Add(Campaign{Account: "acct-test", Status: status})
	campaign, _ := s.store.Get(id)

	switch s.dialect {
	case DialectFacebook:
		writeJSON(w, map[string]string{"id": campaign.ID, "account": campaign.Account})
	default:
		writeJSON(w, map[string]string{"campaignId": campaign.ID, "accountId": campaign.Account})
	}
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	failing := s.failStatus
	s.mu.Unlock()
	if failing {
		http.Error(w, "platform unavailable", http.StatusInternalServerError)
		return
	}

	campaign, ok := s.store.Get(r.PathValue("id"))
	if !ok {
		http.Error(w, "no such campaign", http.StatusNotFound)
		return
	}

	switch s.dialect {
	case DialectFacebook:
		payload := map[string]interface{}{"status": campaign.Status}
		if campaign.SpentMinor != nil {
			payload["spent"] = *campaign.SpentMinor
		}
		if campaign.ROI != nil {
			payload["roi"] = *campaign.ROI
		}
		writeJSON(w, payload)
	default:
		payload := map[string]interface{}{"state": campaign.Status}
		if campaign.Spend != nil {
			payload["spend"] = *campaign.Spend
		}
		if campaign.ROI != nil {
			payload["roi"] = *campaign.ROI
		}
		writeJSON(w, payload)
	}
}

func (s *Server) handlePause(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, ok := s.store.Get(id); !ok {
		http.Error(w, "no such campaign", http.StatusNotFound)
		return
	}

	s.mu.Lock()
	s.pauseCalls[id]++
	s.mu.Unlock()

	// Pausing an already-paused campaign stays a successful no-op.
	s.store.SetStatus(id, "PAUSED")
	writeJSON(w, map[string]bool{"ok": true})
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

package forms

import (
	"encoding/json"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Status tracks a session's progress through the form.
type Status string

const (
	StatusNotStarted Status = "not-started"
	StatusInProgress Status = "in-progress"
	// StatusComplete is a milestone: once a validation pass reports the
	// document valid, the session stays complete even if a later edit
	// turns Validity back to invalid.
	StatusComplete Status = "complete"
)

// Validity is the outcome of the most recent validation pass.
type Validity string

const (
	ValidityUnknown Validity = "unknown"
	ValidityValid   Validity = "valid"
	ValidityInvalid Validity = "invalid"
)

// FieldState tracks per-question validation state for one field path.
// Messages are fully replaced on every validation pass, never appended.
type FieldState struct {
	Path        string   `json:"path"`
	Value       Value    `json:"value"`
	SchemaValid bool     `json:"schema_valid"`
	Messages    []string `json:"messages"`
	Touched     bool     `json:"touched"`
}

// Session is one attempt to fill out a specific form. It snapshots the
// definition at creation time and owns all mutable per-attempt state.
// Sessions live in memory only and do not survive a restart.
//
// Every exported method takes the session lock, so concurrent callers
// operating on the same session are serialized per session.
type Session struct {
	mu sync.Mutex

	ID       string `json:"session_id"`
	FormID   string `json:"form_id"`
	FormName string `json:"form_name,omitempty"`
	UserID   string `json:"user_id,omitempty"`

	definition *Definition

	Data          map[string]Value       `json:"data"`
	Fields        map[string]*FieldState `json:"fields"`
	Status        Status                 `json:"status"`
	Validity      Validity               `json:"validity"`
	QuestionOrder []string               `json:"question_order"`
	Current       int                    `json:"current_question_index"`
	CreatedAt     string                 `json:"created_at"`
}

// SetField records an answer for path and immediately re-validates, so
// field and validity state are always consistent with Data on return —
// there is no dirty-but-unvalidated observable state.
//
// Any path is accepted into Data, but only paths in the question order are
// tracked in Fields. No type or bounds checking happens here; invalidity
// is a reported outcome of the triggered validation pass, not an error.
// The returned error means validation infrastructure failure (an
// uncompilable schema), and even then the answer has been recorded.
func (s *Session) SetField(path string, v Value) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Data[path] = v
	if slices.Contains(s.QuestionOrder, path) {
		fs := s.Fields[path]
		if fs == nil {
			fs = &FieldState{Path: path}
			s.Fields[path] = fs
		}
		// Prior SchemaValid/Messages are kept as-is; the validation pass
		// below rewrites them.
		fs.Value = v
		fs.Touched = true
	}
	if s.Status == StatusNotStarted {
		s.Status = StatusInProgress
	}

	return s.validateLocked()
}

// StateJSON marshals the session's observable state under the session lock.
func (s *Session) StateJSON() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return json.MarshalIndent(s, "", "  ")
}

// Summary is a compact listing view of a session.
type Summary struct {
	ID        string   `json:"session_id"`
	FormID    string   `json:"form_id"`
	FormName  string   `json:"form_name,omitempty"`
	UserID    string   `json:"user_id,omitempty"`
	Status    Status   `json:"status"`
	Validity  Validity `json:"validity"`
	Answered  int      `json:"answered"`
	Questions int      `json:"questions"`
	CreatedAt string   `json:"created_at"`
}

// Summarize returns a compact view of the session under the session lock.
func (s *Session) Summarize() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	answered := 0
	for _, fs := range s.Fields {
		if fs.Touched {
			answered++
		}
	}
	return Summary{
		ID:        s.ID,
		FormID:    s.FormID,
		FormName:  s.FormName,
		UserID:    s.UserID,
		Status:    s.Status,
		Validity:  s.Validity,
		Answered:  answered,
		Questions: len(s.QuestionOrder),
		CreatedAt: s.CreatedAt,
	}
}

// FieldReport returns a copy of the tracked state for path, or false when
// the path is not tracked.
func (s *Session) FieldReport(path string) (FieldState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fs, ok := s.Fields[path]
	if !ok {
		return FieldState{}, false
	}
	out := *fs
	out.Messages = append([]string(nil), fs.Messages...)
	return out, true
}

// Progress returns the session's status and overall validity.
func (s *Session) Progress() (Status, Validity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Status, s.Validity
}

// Store owns all live sessions.
type Store struct {
	mu       sync.RWMutex
	registry *Registry
	sessions map[string]*Session
}

// NewStore creates a session store backed by the given registry.
func NewStore(registry *Registry) *Store {
	return &Store{registry: registry, sessions: make(map[string]*Session)}
}

// Create opens a new session against a registered form. The definition is
// snapshotted: re-registering the same form id later does not affect this
// session's question order or validation schema. Fails with
// ErrFormNotFound for an unregistered form id, before any state changes.
func (st *Store) Create(formID, userID string) (*Session, error) {
	def, ok := st.registry.Get(formID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrFormNotFound, formID)
	}

	s := &Session{
		ID:            uuid.NewString(),
		FormID:        formID,
		FormName:      def.Name,
		UserID:        userID,
		definition:    def,
		Data:          make(map[string]Value),
		Fields:        make(map[string]*FieldState),
		Status:        StatusNotStarted,
		Validity:      ValidityUnknown,
		QuestionOrder: def.QuestionOrder(),
		CreatedAt:     time.Now().UTC().Format(time.RFC3339),
	}

	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()
	return s, nil
}

// Get returns the session for id, or ErrSessionNotFound.
func (st *Store) Get(id string) (*Session, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrSessionNotFound, id)
	}
	return s, nil
}

// Filter narrows List results. Zero-value fields match everything;
// non-zero fields are exact matches.
type Filter struct {
	UserID string
	FormID string
}

// List returns sessions matching the filter. Order is undefined.
func (st *Store) List(f Filter) []*Session {
	st.mu.RLock()
	defer st.mu.RUnlock()
	sessions := make([]*Session, 0, len(st.sessions))
	for _, s := range st.sessions {
		if f.UserID != "" && s.UserID != f.UserID {
			continue
		}
		if f.FormID != "" && s.FormID != f.FormID {
			continue
		}
		sessions = append(sessions, s)
	}
	return sessions
}

package chat

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/manthansinghshekhawat/personahitesh/internal/llm"
)

// Entry is one displayed transcript turn. The system persona is never
// stored as an Entry; it exists only at the head of completion
// requests.
type Entry struct {
	ID        string    `json:"id"`
	Role      llm.Role  `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// ArchiveEntry is a snapshot of a finished conversation. Write-only:
// nothing in the current UI reads it back, it exists so a review
// feature can.
type ArchiveEntry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Messages  []Entry   `json:"messages"`
}

// Session owns the transcript of the one active conversation plus the
// archive of finished ones. All mutation goes through it; entries are
// append-only until Clear wipes the transcript wholesale.
type Session struct {
	mu         sync.RWMutex
	transcript []Entry
	archive    []ArchiveEntry
	ended      bool

	now func() time.Time
}

func NewSession() *Session {
	return &Session{
		transcript: []Entry{},
		archive:    []ArchiveEntry{},
		now:        time.Now,
	}
}

// Append adds one entry to the end of the transcript and returns it.
func (s *Session) Append(role llm.Role, content string) Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := Entry{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		CreatedAt: s.now(),
	}
	s.transcript = append(s.transcript, entry)
	return entry
}

// Transcript returns a copy of the current transcript in insertion
// order.
func (s *Session) Transcript() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Entry, len(s.transcript))
	copy(out, s.transcript)
	return out
}

func (s *Session) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.transcript)
}

func (s *Session) IsEmpty() bool {
	return s.Len() == 0
}

// SnapshotAndArchive copies the current transcript into a new archive
// entry stamped with the current wall clock. The transcript itself is
// left untouched.
func (s *Session) SnapshotAndArchive() ArchiveEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make([]Entry, len(s.transcript))
	copy(snapshot, s.transcript)

	entry := ArchiveEntry{
		ID:        uuid.NewString(),
		Timestamp: s.now(),
		Messages:  snapshot,
	}
	s.archive = append(s.archive, entry)
	return entry
}

// Clear empties the transcript and resets the ended flag. The archive
// is untouched.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.transcript = []Entry{}
	s.ended = false
}

func (s *Session) End() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ended = true
}

func (s *Session) Ended() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ended
}

// Archive returns a copy of the archived conversations in insertion
// order.
func (s *Session) Archive() []ArchiveEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]ArchiveEntry, len(s.archive))
	copy(out, s.archive)
	return out
}

func (s *Session) ArchiveLen() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.archive)
}

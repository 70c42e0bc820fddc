package core

import "time"

const (
	MnemoName    = "Mnemo"
	MnemoVersion = "0.1.0"
)

// MemoryEntry is one consolidated long-term memory. A row in the record
// store, mirrored into the vector index under VectorID once committed.
type MemoryEntry struct {
	ID             int64     `json:"id"`
	VectorID       string    `json:"vector_id,omitempty"`
	SessionID      string    `json:"session_id"`
	Summary        string    `json:"summary"`
	Keywords       []string  `json:"keywords,omitempty"`
	Snippet        string    `json:"snippet,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	LastAccessedAt time.Time `json:"last_accessed_at"`
	AccessCount    int64     `json:"access_count"`
	Importance     float64   `json:"importance"`
}

// ClampImportance bounds an importance score to [0, 1].
func ClampImportance(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single chat turn exchanged with an LLM provider.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

package core

const (
	TuskName          = "tusk"
	TuskRepositoryURL = "https://github.com/sandevgo/tuskshell"
	TuskVersion       = "0.1.0"
	TuskDescription   = "A small shell built on tuskshell. Type help to list commands."
)

// Session is the state carried between commands and, in one-shot mode,
// between process runs.
type Session struct {
	Count    uint64   `json:"count" toml:"count"`
	LastSeen []string `json:"last_seen,omitempty" toml:"last_seen,omitempty"`
}

const maxLastSeen = 5

// Remember records a greeted name, keeping only the most recent few.
func (s *Session) Remember(name string) {
	s.LastSeen = append(s.LastSeen, name)
	if len(s.LastSeen) > maxLastSeen {
		s.LastSeen = s.LastSeen[len(s.LastSeen)-maxLastSeen:]
	}
}

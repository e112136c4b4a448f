package targeting

import (
	"errors"
	"log"
)

var (
	ErrDuplicateBroadcaster = errors.New("targeting: more than one target broadcaster in the session")
	ErrNilBroadcaster       = errors.New("targeting: nil broadcaster")
)

// Session holds the single Broadcaster of a running game. The composition
// root installs the broadcaster before any subscriber is created and hands
// it out from here.
type Session struct {
	broadcaster *Broadcaster
	logger      *log.Logger
}

func NewSession(logger *log.Logger) *Session {
	if logger == nil {
		logger = log.Default()
	}
	return &Session{logger: logger}
}

// Install makes b the session's broadcaster. If one is already installed it
// stays authoritative: Install logs the fault and returns the existing
// broadcaster with ErrDuplicateBroadcaster.
func (s *Session) Install(b *Broadcaster) (*Broadcaster, error) {
	if b == nil {
		return s.broadcaster, ErrNilBroadcaster
	}
	if s.broadcaster != nil {
		if s.broadcaster != b {
			s.logger.Printf("Targeting: %v; keeping the first one", ErrDuplicateBroadcaster)
		}
		return s.broadcaster, ErrDuplicateBroadcaster
	}
	s.broadcaster = b
	return b, nil
}

// Broadcaster returns the installed broadcaster, or nil.
func (s *Session) Broadcaster() *Broadcaster {
	return s.broadcaster
}

// Close tears the session down. A new broadcaster may be installed after.
func (s *Session) Close() {
	if s.broadcaster != nil {
		s.broadcaster.Close()
		s.broadcaster = nil
	}
}

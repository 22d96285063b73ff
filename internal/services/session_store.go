package services

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// SessionStore keeps live negotiation sessions. Sessions are bound to a TTL
// and vanish with the process; nothing here is durable.
type SessionStore interface {
	Get(id string) (*NegotiationSession, bool)
	Put(session *NegotiationSession)
	Delete(id string)
}

type memorySessionStore struct {
	cache *gocache.Cache
	ttl   time.Duration
}

func NewSessionStore(ttl time.Duration) SessionStore {
	return &memorySessionStore{
		cache: gocache.New(ttl, 2*ttl),
		ttl:   ttl,
	}
}

func (s *memorySessionStore) Get(id string) (*NegotiationSession, bool) {
	v, ok := s.cache.Get(id)
	if !ok {
		return nil, false
	}
	session, ok := v.(*NegotiationSession)
	return session, ok
}

func (s *memorySessionStore) Put(session *NegotiationSession) {
	s.cache.Set(session.ID, session, s.ttl)
}

func (s *memorySessionStore) Delete(id string) {
	s.cache.Delete(id)
}

package service

import (
	"sync"

	"spa-roster/internal/roster"
)

// SharedRoster ростер под мьютексом. Консоль работает в своей горутине,
// а сохранение по сигналу приходит из main, поэтому все обращения к
// ростеру из сервисов идут через Do.
type SharedRoster struct {
	mu     sync.Mutex
	roster *roster.Roster
}

func NewSharedRoster(r *roster.Roster) *SharedRoster {
	return &SharedRoster{roster: r}
}

// Do выполняет fn, удерживая блокировку
func (s *SharedRoster) Do(fn func(r *roster.Roster)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.roster)
}

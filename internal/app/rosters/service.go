package rosters

import "github.com/galacticos-fc/ranking-service/internal/domain/roster"

// Store defines the roster snapshot the service reads and replaces.
type Store interface {
	Roster() ([]roster.Player, []roster.ConstraintGroup)
	SetRoster(players []roster.Player, groups []roster.ConstraintGroup)
	HasRoster() bool
}

// Service coordinates roster access using a Store.
type Service struct {
	store Store
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Players returns the eligible players.
func (s *Service) Players() []roster.Player {
	players, _ := s.store.Roster()
	return players
}

// Groups returns the constraint groups.
func (s *Service) Groups() []roster.ConstraintGroup {
	_, groups := s.store.Roster()
	return groups
}

// Loaded reports whether a roster is available.
func (s *Service) Loaded() bool {
	return s.store.HasRoster()
}

// Replace swaps the roster snapshot.
func (s *Service) Replace(players []roster.Player, groups []roster.ConstraintGroup) {
	s.store.SetRoster(players, groups)
}

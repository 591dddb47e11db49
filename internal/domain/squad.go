package domain

import (
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"
)

// Membership is a player's standing inside one squad. One per
// (player, squad) pair, owned by the Squad aggregate.
type Membership struct {
	PlayerID uuid.UUID
	SquadID  uuid.UUID
	Rating   Rating
	JoinedAt time.Time
}

// Squad is a group of players who play matches together. It is the single
// source of truth for each member's current rating. Admin-ship and
// membership are independent: an admin does not have to be a member.
type Squad struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time

	admins  mapset.Set[uuid.UUID]
	members []Membership
}

// NewSquad creates a squad with the creator as its only admin and no
// members. The creator joins separately to get a rating.
func NewSquad(name string, creatorID uuid.UUID) (*Squad, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if creatorID == uuid.Nil {
		return nil, ErrEmptyID
	}
	return &Squad{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: time.Now(),
		admins:    mapset.NewSet(creatorID),
	}, nil
}

// RestoreSquad rebuilds a squad from storage.
func RestoreSquad(id uuid.UUID, name string, createdAt time.Time, adminIDs []uuid.UUID, members []Membership) *Squad {
	return &Squad{
		ID:        id,
		Name:      name,
		CreatedAt: createdAt,
		admins:    mapset.NewSet(adminIDs...),
		members:   members,
	}
}

func (s *Squad) IsAdmin(playerID uuid.UUID) bool {
	return s.admins.Contains(playerID)
}

func (s *Squad) AdminIDs() []uuid.UUID {
	return s.admins.ToSlice()
}

func (s *Squad) AddAdmin(playerID uuid.UUID) error {
	if playerID == uuid.Nil {
		return ErrEmptyID
	}
	if !s.admins.Add(playerID) {
		return ErrAlreadyAdmin
	}
	return nil
}

func (s *Squad) RemoveAdmin(playerID uuid.UUID) error {
	if !s.admins.Contains(playerID) {
		return ErrNotAdmin
	}
	if s.admins.Cardinality() == 1 {
		return ErrLastAdmin
	}
	s.admins.Remove(playerID)
	return nil
}

// AddMember joins a player with the given starting rating.
func (s *Squad) AddMember(playerID uuid.UUID, rating Rating) error {
	if playerID == uuid.Nil {
		return ErrEmptyID
	}
	if _, ok := s.member(playerID); ok {
		return ErrAlreadyMember
	}
	s.members = append(s.members, Membership{
		PlayerID: playerID,
		SquadID:  s.ID,
		Rating:   rating,
		JoinedAt: time.Now(),
	})
	return nil
}

// RemoveMember detaches the membership. Admin status is a separate set and
// stays as it is.
func (s *Squad) RemoveMember(playerID uuid.UUID) error {
	for i := range s.members {
		if s.members[i].PlayerID == playerID {
			s.members = append(s.members[:i], s.members[i+1:]...)
			return nil
		}
	}
	return ErrNotMember
}

func (s *Squad) MemberRating(playerID uuid.UUID) (Rating, error) {
	m, ok := s.member(playerID)
	if !ok {
		return 0, ErrNotMember
	}
	return m.Rating, nil
}

// ApplyRatingDelta moves a member's rating by delta, clamped to the rating
// bounds.
func (s *Squad) ApplyRatingDelta(playerID uuid.UUID, delta int) error {
	for i := range s.members {
		if s.members[i].PlayerID == playerID {
			s.members[i].Rating = s.members[i].Rating.Add(delta)
			return nil
		}
	}
	return ErrNotMember
}

func (s *Squad) Members() []Membership {
	members := make([]Membership, len(s.members))
	copy(members, s.members)
	return members
}

func (s *Squad) member(playerID uuid.UUID) (Membership, bool) {
	for i := range s.members {
		if s.members[i].PlayerID == playerID {
			return s.members[i], true
		}
	}
	return Membership{}, false
}

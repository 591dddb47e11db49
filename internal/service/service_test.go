package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"squadmatch/internal/config"
	"squadmatch/internal/domain"
	"squadmatch/internal/logger"
	"squadmatch/internal/storage"
)

type memPlayers struct {
	data   map[uuid.UUID]domain.PlayerAccount
	getErr error
}

func (m *memPlayers) GetPlayer(_ context.Context, id uuid.UUID) (domain.PlayerAccount, error) {
	if m.getErr != nil {
		return domain.PlayerAccount{}, m.getErr
	}
	p, ok := m.data[id]
	if !ok {
		return domain.PlayerAccount{}, domain.ErrPlayerNotFound
	}
	return p, nil
}

func (m *memPlayers) GetPlayerByEmail(_ context.Context, email string) (domain.PlayerAccount, error) {
	for _, p := range m.data {
		if p.Email == email {
			return p, nil
		}
	}
	return domain.PlayerAccount{}, domain.ErrPlayerNotFound
}

func (m *memPlayers) GetPlayerByExternalID(_ context.Context, externalID string) (domain.PlayerAccount, error) {
	for _, p := range m.data {
		if p.ExternalID != "" && p.ExternalID == externalID {
			return p, nil
		}
	}
	return domain.PlayerAccount{}, domain.ErrPlayerNotFound
}

func (m *memPlayers) AddPlayer(_ context.Context, p domain.PlayerAccount) error {
	m.data[p.ID] = p
	return nil
}

func (m *memPlayers) UpdatePlayer(_ context.Context, p domain.PlayerAccount) error {
	m.data[p.ID] = p
	return nil
}

type memSquads struct {
	data map[uuid.UUID]*domain.Squad
}

func (m *memSquads) GetSquad(_ context.Context, id uuid.UUID) (*domain.Squad, error) {
	s, ok := m.data[id]
	if !ok {
		return nil, domain.ErrSquadNotFound
	}
	return restoreSquad(s), nil
}

func (m *memSquads) ListSquadsForPlayer(_ context.Context, playerID uuid.UUID) ([]*domain.Squad, error) {
	var out []*domain.Squad
	for _, s := range m.data {
		if _, err := s.MemberRating(playerID); err == nil {
			out = append(out, restoreSquad(s))
		}
	}
	return out, nil
}

func (m *memSquads) AddSquad(_ context.Context, s *domain.Squad) error {
	m.data[s.ID] = restoreSquad(s)
	return nil
}

func (m *memSquads) UpdateSquad(_ context.Context, s *domain.Squad) error {
	m.data[s.ID] = restoreSquad(s)
	return nil
}

// restoreSquad deep-copies through the rehydration factory, matching the
// real storage: every load hands out an independent aggregate.
func restoreSquad(s *domain.Squad) *domain.Squad {
	return domain.RestoreSquad(s.ID, s.Name, s.CreatedAt, s.AdminIDs(), s.Members())
}

type memMatches struct {
	data map[uuid.UUID]*domain.Match
}

func (m *memMatches) GetMatch(_ context.Context, id uuid.UUID) (*domain.Match, error) {
	match, ok := m.data[id]
	if !ok {
		return nil, domain.ErrMatchNotFound
	}
	return restoreMatch(match), nil
}

func (m *memMatches) ListMatchesForSquad(_ context.Context, squadID uuid.UUID) ([]*domain.Match, error) {
	var out []*domain.Match
	for _, match := range m.data {
		if match.SquadID == squadID {
			out = append(out, restoreMatch(match))
		}
	}
	return out, nil
}

func (m *memMatches) AddMatch(_ context.Context, match *domain.Match) error {
	m.data[match.ID] = restoreMatch(match)
	return nil
}

func (m *memMatches) UpdateMatch(_ context.Context, match *domain.Match) error {
	stored, ok := m.data[match.ID]
	if !ok {
		return domain.ErrMatchNotFound
	}
	// Same guard the sqlite storage gets from WHERE status = 'pending'.
	if stored.Status() == domain.MatchCompleted {
		return domain.ErrMatchCompleted
	}
	m.data[match.ID] = restoreMatch(match)
	return nil
}

func restoreMatch(m *domain.Match) *domain.Match {
	return domain.RestoreMatch(m.ID, m.SquadID, m.ScheduledAt, m.TeamSize, m.CreatedAt, m.TeamA(), m.TeamB(), m.Status(), m.Result())
}

var _ storage.PlayerStorage = (*memPlayers)(nil)
var _ storage.SquadStorage = (*memSquads)(nil)
var _ storage.MatchStorage = (*memMatches)(nil)

type ServiceSuite struct {
	suite.Suite

	ctx     context.Context
	service *Service
	players *memPlayers
}

func TestService(t *testing.T) {
	suite.Run(t, &ServiceSuite{})
}

func (s *ServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.players = &memPlayers{data: make(map[uuid.UUID]domain.PlayerAccount)}
	s.service = New(
		s.players,
		&memSquads{data: make(map[uuid.UUID]*domain.Squad)},
		&memMatches{data: make(map[uuid.UUID]*domain.Match)},
		config.Rating{DefaultRating: 1000, KFactor: 32, TeamSize: 5},
		logger.New(false),
	)
}

func (s *ServiceSuite) newPlayer(email string) uuid.UUID {
	acc, err := domain.NewExternalPlayerAccount(email, "ext|"+email)
	s.Require().NoError(err)
	s.Require().NoError(s.players.AddPlayer(s.ctx, acc))
	return acc.ID
}

func (s *ServiceSuite) TestCreateSquad() {
	creator := s.newPlayer("u1@x.cc")

	squad, err := s.service.CreateSquad(s.ctx, "thursday", creator)
	s.Require().NoError(err)
	s.True(squad.IsAdmin(creator))

	_, err = s.service.CreateSquad(s.ctx, "", creator)
	s.ErrorIs(err, domain.ErrEmptyName)

	_, err = s.service.CreateSquad(s.ctx, "ghosts", uuid.New())
	s.ErrorIs(err, domain.ErrPlayerNotFound)
}

func (s *ServiceSuite) TestJoinSquad() {
	creator := s.newPlayer("u1@x.cc")
	squad, err := s.service.CreateSquad(s.ctx, "thursday", creator)
	s.Require().NoError(err)

	s.Require().NoError(s.service.JoinSquad(s.ctx, creator, squad.ID))
	s.ErrorIs(s.service.JoinSquad(s.ctx, creator, squad.ID), domain.ErrAlreadyMember)

	rating, err := s.service.PlayerRating(s.ctx, squad.ID, creator)
	s.Require().NoError(err)
	s.EqualValues(1000, rating)

	squads, err := s.service.ListSquadsForPlayer(s.ctx, creator)
	s.Require().NoError(err)
	s.Len(squads, 1)
}

func (s *ServiceSuite) TestAdminCommands() {
	creator := s.newPlayer("u1@x.cc")
	member := s.newPlayer("u2@x.cc")
	squad, err := s.service.CreateSquad(s.ctx, "thursday", creator)
	s.Require().NoError(err)
	s.Require().NoError(s.service.JoinSquad(s.ctx, member, squad.ID))

	s.ErrorIs(s.service.AddSquadAdmin(s.ctx, squad.ID, member, member), domain.ErrNotAdmin)
	s.Require().NoError(s.service.AddSquadAdmin(s.ctx, squad.ID, creator, member))
	s.ErrorIs(s.service.AddSquadAdmin(s.ctx, squad.ID, creator, member), domain.ErrAlreadyAdmin)

	s.Require().NoError(s.service.RemoveSquadAdmin(s.ctx, squad.ID, creator, member))
	s.ErrorIs(s.service.RemoveSquadAdmin(s.ctx, squad.ID, member, creator), domain.ErrNotAdmin)
	s.ErrorIs(s.service.RemoveSquadAdmin(s.ctx, squad.ID, creator, creator), domain.ErrLastAdmin)

	s.ErrorIs(s.service.RemoveSquadMember(s.ctx, squad.ID, member, member), domain.ErrNotAdmin)
	s.Require().NoError(s.service.RemoveSquadMember(s.ctx, squad.ID, creator, member))
	_, err = s.service.PlayerRating(s.ctx, squad.ID, member)
	s.ErrorIs(err, domain.ErrNotMember)
}

func (s *ServiceSuite) TestRemoveMemberStorageError() {
	creator := s.newPlayer("u1@x.cc")
	member := s.newPlayer("u2@x.cc")
	squad, err := s.service.CreateSquad(s.ctx, "thursday", creator)
	s.Require().NoError(err)
	s.Require().NoError(s.service.JoinSquad(s.ctx, member, squad.ID))

	errBoom := errors.New("disk gone")
	s.players.getErr = errBoom
	s.ErrorIs(s.service.RemoveSquadMember(s.ctx, squad.ID, creator, member), errBoom)
	s.players.getErr = nil

	// A missing account record does not block the removal itself.
	other := s.newPlayer("u3@x.cc")
	s.Require().NoError(s.service.JoinSquad(s.ctx, other, squad.ID))
	delete(s.players.data, other)
	s.NoError(s.service.RemoveSquadMember(s.ctx, squad.ID, creator, other))
}

func (s *ServiceSuite) TestCreateMatchValidation() {
	creator := s.newPlayer("u1@x.cc")
	outsider := s.newPlayer("u2@x.cc")
	squad, err := s.service.CreateSquad(s.ctx, "thursday", creator)
	s.Require().NoError(err)
	s.Require().NoError(s.service.JoinSquad(s.ctx, creator, squad.ID))

	at := time.Now().Add(48 * time.Hour)

	_, err = s.service.CreateMatch(s.ctx, squad.ID, at, []uuid.UUID{creator}, 0, creator)
	s.ErrorIs(err, domain.ErrInvalidPlayerCount)

	_, err = s.service.CreateMatch(s.ctx, squad.ID, at, []uuid.UUID{creator, outsider}, 0, outsider)
	s.ErrorIs(err, domain.ErrNotAdmin)

	_, err = s.service.CreateMatch(s.ctx, squad.ID, at, []uuid.UUID{creator, outsider}, 0, creator)
	s.ErrorIs(err, domain.ErrNotMember)
}

// The full lifecycle: squad, joins, balanced match,
// one-shot result, zero-sum rating movement.
func (s *ServiceSuite) TestMatchLifecycle() {
	u1 := s.newPlayer("u1@x.cc")
	u2 := s.newPlayer("u2@x.cc")
	u3 := s.newPlayer("u3@x.cc")
	u4 := s.newPlayer("u4@x.cc")

	squad, err := s.service.CreateSquad(s.ctx, "thursday", u1)
	s.Require().NoError(err)
	for _, id := range []uuid.UUID{u1, u2, u3, u4} {
		s.Require().NoError(s.service.JoinSquad(s.ctx, id, squad.ID))
	}

	match, err := s.service.CreateMatch(s.ctx, squad.ID, time.Now().Add(time.Hour), []uuid.UUID{u1, u2, u3, u4}, 2, u1)
	s.Require().NoError(err)
	s.Equal(domain.MatchPending, match.Status())
	s.Len(match.TeamA().Participants, 2)
	s.Len(match.TeamB().Participants, 2)

	err = s.service.RecordMatchResult(s.ctx, match.ID, domain.WinnerTeamA, "good game", u1)
	s.Require().NoError(err)

	stored, err := s.service.GetMatch(s.ctx, match.ID)
	s.Require().NoError(err)
	s.Equal(domain.MatchCompleted, stored.Status())
	s.Equal(domain.WinnerTeamA, stored.Result().Winner)

	err = s.service.RecordMatchResult(s.ctx, match.ID, domain.WinnerTeamB, "", u1)
	s.ErrorIs(err, domain.ErrMatchCompleted)

	// All four started at 1000, so the winners gain 16 and the losers
	// lose 16, equal and opposite.
	for _, p := range stored.TeamA().Participants {
		rating, err := s.service.PlayerRating(s.ctx, squad.ID, p.PlayerID)
		s.Require().NoError(err)
		s.EqualValues(1016, rating)
	}
	for _, p := range stored.TeamB().Participants {
		rating, err := s.service.PlayerRating(s.ctx, squad.ID, p.PlayerID)
		s.Require().NoError(err)
		s.EqualValues(984, rating)
	}

	// The match keeps its creation-time snapshot.
	for _, p := range stored.Participants() {
		s.EqualValues(1000, p.Rating)
	}
}

func (s *ServiceSuite) TestRecordResultAuthorization() {
	u1 := s.newPlayer("u1@x.cc")
	u2 := s.newPlayer("u2@x.cc")
	squad, err := s.service.CreateSquad(s.ctx, "thursday", u1)
	s.Require().NoError(err)
	s.Require().NoError(s.service.JoinSquad(s.ctx, u1, squad.ID))
	s.Require().NoError(s.service.JoinSquad(s.ctx, u2, squad.ID))

	match, err := s.service.CreateMatch(s.ctx, squad.ID, time.Now(), []uuid.UUID{u1, u2}, 1, u1)
	s.Require().NoError(err)

	s.ErrorIs(s.service.RecordMatchResult(s.ctx, uuid.New(), domain.WinnerTeamA, "", u1), domain.ErrMatchNotFound)
	s.ErrorIs(s.service.RecordMatchResult(s.ctx, match.ID, domain.WinnerTeamA, "", u2), domain.ErrNotAdmin)
}

// A result in one squad never moves the same player's rating elsewhere.
func (s *ServiceSuite) TestRatingsIsolatedPerSquad() {
	u1 := s.newPlayer("u1@x.cc")
	u2 := s.newPlayer("u2@x.cc")

	first, err := s.service.CreateSquad(s.ctx, "first", u1)
	s.Require().NoError(err)
	second, err := s.service.CreateSquad(s.ctx, "second", u1)
	s.Require().NoError(err)
	for _, squadID := range []uuid.UUID{first.ID, second.ID} {
		s.Require().NoError(s.service.JoinSquad(s.ctx, u1, squadID))
		s.Require().NoError(s.service.JoinSquad(s.ctx, u2, squadID))
	}

	match, err := s.service.CreateMatch(s.ctx, first.ID, time.Now(), []uuid.UUID{u1, u2}, 1, u1)
	s.Require().NoError(err)
	s.Require().NoError(s.service.RecordMatchResult(s.ctx, match.ID, domain.WinnerTeamA, "", u1))

	changed, err := s.service.PlayerRating(s.ctx, first.ID, u1)
	s.Require().NoError(err)
	s.NotEqualValues(1000, changed)

	untouched, err := s.service.PlayerRating(s.ctx, second.ID, u1)
	s.Require().NoError(err)
	s.EqualValues(1000, untouched)
}

func (s *ServiceSuite) TestLeaderboard() {
	u1 := s.newPlayer("u1@x.cc")
	u2 := s.newPlayer("u2@x.cc")
	squad, err := s.service.CreateSquad(s.ctx, "thursday", u1)
	s.Require().NoError(err)
	s.Require().NoError(s.service.JoinSquad(s.ctx, u1, squad.ID))
	s.Require().NoError(s.service.JoinSquad(s.ctx, u2, squad.ID))

	match, err := s.service.CreateMatch(s.ctx, squad.ID, time.Now(), []uuid.UUID{u1, u2}, 1, u1)
	s.Require().NoError(err)
	s.Require().NoError(s.service.RecordMatchResult(s.ctx, match.ID, domain.WinnerTeamA, "", u1))

	board, err := s.service.Leaderboard(s.ctx, squad.ID)
	s.Require().NoError(err)
	s.Require().Len(board, 2)
	s.Greater(board[0].Rating, board[1].Rating)
	s.Equal(match.TeamA().Participants[0].PlayerID, board[0].PlayerID)
}

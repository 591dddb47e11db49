package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"squadmatch/internal/balance"
	"squadmatch/internal/cache/mem"
	"squadmatch/internal/config"
	"squadmatch/internal/domain"
	"squadmatch/internal/elo"
	"squadmatch/internal/storage"
)

// Notifier receives match lifecycle events after they are persisted.
// The telegram bot implements it; a nil notifier disables notifications.
type Notifier interface {
	MatchScheduled(squad *domain.Squad, match *domain.Match)
	ResultRecorded(squad *domain.Squad, match *domain.Match, deltaA, deltaB int)
}

// Service holds the command handlers and queries around the three
// aggregates. Every handler is a single load-validate-mutate-persist pass;
// nothing here runs concurrently within one call.
type Service struct {
	players storage.PlayerStorage
	squads  storage.SquadStorage
	matches storage.MatchStorage

	boards   *mem.Cache
	cfg      config.Rating
	log      *logrus.Entry
	notifier Notifier
}

func New(players storage.PlayerStorage, squads storage.SquadStorage, matches storage.MatchStorage, cfg config.Rating, log *logrus.Logger) *Service {
	return &Service{
		players: players,
		squads:  squads,
		matches: matches,
		boards:  mem.New(),
		cfg:     cfg,
		log:     log.WithField("name", "service"),
	}
}

// SetNotifier attaches the notifier after construction; the bot needs the
// service to exist first.
func (s *Service) SetNotifier(n Notifier) {
	s.notifier = n
}

func (s *Service) CreateSquad(ctx context.Context, name string, creatorID uuid.UUID) (*domain.Squad, error) {
	if _, err := s.players.GetPlayer(ctx, creatorID); err != nil {
		return nil, err
	}
	squad, err := domain.NewSquad(name, creatorID)
	if err != nil {
		return nil, err
	}
	if err := s.squads.AddSquad(ctx, squad); err != nil {
		return nil, fmt.Errorf("persist squad: %w", err)
	}
	s.log.WithField("squad", squad.ID).Info("squad created")
	return squad, nil
}

func (s *Service) JoinSquad(ctx context.Context, playerID, squadID uuid.UUID) error {
	squad, err := s.squads.GetSquad(ctx, squadID)
	if err != nil {
		return err
	}
	player, err := s.players.GetPlayer(ctx, playerID)
	if err != nil {
		return err
	}
	if err := squad.AddMember(playerID, domain.Rating(s.cfg.DefaultRating)); err != nil {
		return err
	}
	if err := player.JoinSquad(squadID); err != nil {
		return err
	}
	if err := s.squads.UpdateSquad(ctx, squad); err != nil {
		return fmt.Errorf("persist squad: %w", err)
	}
	if err := s.players.UpdatePlayer(ctx, player); err != nil {
		return fmt.Errorf("persist player: %w", err)
	}
	s.boards.Invalidate(squadID)
	return nil
}

func (s *Service) AddSquadAdmin(ctx context.Context, squadID, requesterID, targetID uuid.UUID) error {
	squad, err := s.squads.GetSquad(ctx, squadID)
	if err != nil {
		return err
	}
	if !squad.IsAdmin(requesterID) {
		return domain.ErrNotAdmin
	}
	if err := squad.AddAdmin(targetID); err != nil {
		return err
	}
	if err := s.squads.UpdateSquad(ctx, squad); err != nil {
		return fmt.Errorf("persist squad: %w", err)
	}
	return nil
}

func (s *Service) RemoveSquadAdmin(ctx context.Context, squadID, requesterID, targetID uuid.UUID) error {
	squad, err := s.squads.GetSquad(ctx, squadID)
	if err != nil {
		return err
	}
	if !squad.IsAdmin(requesterID) {
		return domain.ErrNotAdmin
	}
	if err := squad.RemoveAdmin(targetID); err != nil {
		return err
	}
	if err := s.squads.UpdateSquad(ctx, squad); err != nil {
		return fmt.Errorf("persist squad: %w", err)
	}
	return nil
}

func (s *Service) RemoveSquadMember(ctx context.Context, squadID, requesterID, targetID uuid.UUID) error {
	squad, err := s.squads.GetSquad(ctx, squadID)
	if err != nil {
		return err
	}
	if !squad.IsAdmin(requesterID) {
		return domain.ErrNotAdmin
	}
	if err := squad.RemoveMember(targetID); err != nil {
		return err
	}
	if err := s.squads.UpdateSquad(ctx, squad); err != nil {
		return fmt.Errorf("persist squad: %w", err)
	}
	player, err := s.players.GetPlayer(ctx, targetID)
	switch {
	case err == nil:
		player.LeaveSquad(squadID)
		if err := s.players.UpdatePlayer(ctx, player); err != nil {
			return fmt.Errorf("persist player: %w", err)
		}
	case !errors.Is(err, domain.ErrPlayerNotFound):
		return fmt.Errorf("get player: %w", err)
	}
	s.boards.Invalidate(squadID)
	return nil
}

// CreateMatch snapshots the current squad ratings of the given players,
// builds the match and assigns balanced teams in one go. Ratings on the
// match never change afterwards.
func (s *Service) CreateMatch(ctx context.Context, squadID uuid.UUID, scheduledAt time.Time, playerIDs []uuid.UUID, teamSize int, requesterID uuid.UUID) (*domain.Match, error) {
	if len(playerIDs) < 2 || len(playerIDs)%2 != 0 {
		return nil, domain.ErrInvalidPlayerCount
	}
	squad, err := s.squads.GetSquad(ctx, squadID)
	if err != nil {
		return nil, err
	}
	if !squad.IsAdmin(requesterID) {
		return nil, domain.ErrNotAdmin
	}
	if teamSize == 0 {
		teamSize = s.cfg.TeamSize
	}
	participants := make([]domain.Participant, 0, len(playerIDs))
	for _, id := range playerIDs {
		rating, err := squad.MemberRating(id)
		if err != nil {
			return nil, err
		}
		participants = append(participants, domain.Participant{PlayerID: id, Rating: rating})
	}
	match, err := domain.NewMatch(squadID, scheduledAt, teamSize, participants)
	if err != nil {
		return nil, err
	}
	teamA, teamB := balance.Split(toBalancePlayers(participants))
	if err := match.AssignTeams(toDomainTeam(teamA), toDomainTeam(teamB)); err != nil {
		return nil, err
	}
	if err := s.matches.AddMatch(ctx, match); err != nil {
		return nil, fmt.Errorf("persist match: %w", err)
	}
	s.log.WithFields(logrus.Fields{"squad": squadID, "match": match.ID}).Info("match scheduled")
	if s.notifier != nil {
		s.notifier.MatchScheduled(squad, match)
	}
	return match, nil
}

// RecordMatchResult completes the match and applies the zero-sum team
// deltas to the live squad memberships. The deltas come from the match's
// frozen snapshot; the updates land on the squad's current ratings.
func (s *Service) RecordMatchResult(ctx context.Context, matchID uuid.UUID, winner domain.Winner, feedback string, requesterID uuid.UUID) error {
	match, err := s.matches.GetMatch(ctx, matchID)
	if err != nil {
		return err
	}
	squad, err := s.squads.GetSquad(ctx, match.SquadID)
	if err != nil {
		return err
	}
	if !squad.IsAdmin(requesterID) {
		return domain.ErrNotAdmin
	}
	if err := match.Record(winner, feedback, time.Now()); err != nil {
		return err
	}

	teamA, teamB := match.TeamA(), match.TeamB()
	deltaA, deltaB := elo.Deltas(
		elo.Mean(teamA.TotalRating, len(teamA.Participants)),
		elo.Mean(teamB.TotalRating, len(teamB.Participants)),
		points(winner),
		s.cfg.KFactor,
	)
	s.applyTeamDelta(squad, teamA, deltaA)
	s.applyTeamDelta(squad, teamB, deltaB)

	// The storage guards the pending -> completed transition, so a
	// concurrent second recording loses here before ratings are persisted.
	if err := s.matches.UpdateMatch(ctx, match); err != nil {
		return err
	}
	if err := s.squads.UpdateSquad(ctx, squad); err != nil {
		return fmt.Errorf("persist squad: %w", err)
	}
	s.boards.Invalidate(squad.ID)
	s.log.WithFields(logrus.Fields{
		"match":   matchID,
		"winner":  winner,
		"delta_a": deltaA,
		"delta_b": deltaB,
	}).Info("match result recorded")
	if s.notifier != nil {
		s.notifier.ResultRecorded(squad, match, deltaA, deltaB)
	}
	return nil
}

// applyTeamDelta moves every team member's live rating. A participant
// removed from the squad since scheduling has no live membership left and
// is skipped.
func (s *Service) applyTeamDelta(squad *domain.Squad, team domain.Team, delta int) {
	for _, p := range team.Participants {
		if err := squad.ApplyRatingDelta(p.PlayerID, delta); err != nil {
			s.log.WithFields(logrus.Fields{
				"squad":  squad.ID,
				"player": p.PlayerID,
			}).Warn("participant left the squad, rating delta dropped")
		}
	}
}

func (s *Service) GetSquad(ctx context.Context, squadID uuid.UUID) (*domain.Squad, error) {
	return s.squads.GetSquad(ctx, squadID)
}

func (s *Service) GetMatch(ctx context.Context, matchID uuid.UUID) (*domain.Match, error) {
	return s.matches.GetMatch(ctx, matchID)
}

func (s *Service) ListSquadsForPlayer(ctx context.Context, playerID uuid.UUID) ([]*domain.Squad, error) {
	return s.squads.ListSquadsForPlayer(ctx, playerID)
}

func (s *Service) ListMatchesForSquad(ctx context.Context, squadID uuid.UUID) ([]*domain.Match, error) {
	return s.matches.ListMatchesForSquad(ctx, squadID)
}

func (s *Service) PlayerRating(ctx context.Context, squadID, playerID uuid.UUID) (domain.Rating, error) {
	squad, err := s.squads.GetSquad(ctx, squadID)
	if err != nil {
		return 0, err
	}
	return squad.MemberRating(playerID)
}

// Leaderboard returns the squad's members by rating descending, served
// from the in-memory cache when it is warm.
func (s *Service) Leaderboard(ctx context.Context, squadID uuid.UUID) ([]domain.Membership, error) {
	if board, ok := s.boards.Leaderboard(squadID); ok {
		return board, nil
	}
	squad, err := s.squads.GetSquad(ctx, squadID)
	if err != nil {
		return nil, err
	}
	s.boards.Update(squadID, squad.Members())
	board, _ := s.boards.Leaderboard(squadID)
	return board, nil
}

func points(winner domain.Winner) elo.Points {
	switch winner {
	case domain.WinnerTeamA:
		return elo.Win
	case domain.WinnerTeamB:
		return elo.Lose
	default:
		return elo.Draw
	}
}

package sqlite

import (
	"encoding/hex"

	"github.com/google/uuid"

	"squadmatch/gen/model"
	"squadmatch/internal/domain"
)

func convertPlayerToDomain(p model.Players, squadIDs []uuid.UUID) (domain.PlayerAccount, error) {
	id, err := uuid.Parse(p.ID)
	if err != nil {
		return domain.PlayerAccount{}, err
	}
	hash, err := hexToBytes(p.PasswordHash)
	if err != nil {
		return domain.PlayerAccount{}, err
	}
	salt, err := hexToBytes(p.PasswordSalt)
	if err != nil {
		return domain.PlayerAccount{}, err
	}
	var externalID string
	if p.ExternalID != nil {
		externalID = *p.ExternalID
	}
	return domain.RestorePlayerAccount(id, p.Email, hash, salt, externalID, p.CreatedAt, squadIDs), nil
}

func convertPlayerFromDomain(p domain.PlayerAccount) model.Players {
	var externalID *string
	if p.ExternalID != "" {
		externalID = &p.ExternalID
	}
	return model.Players{
		ID:           p.ID.String(),
		Email:        p.Email,
		PasswordHash: bytesToHex(p.PasswordHash),
		PasswordSalt: bytesToHex(p.PasswordSalt),
		ExternalID:   externalID,
		CreatedAt:    p.RegisteredAt,
	}
}

func convertSquadToDomain(s model.Squads, admins []model.SquadAdmins, members []model.SquadMembers) (*domain.Squad, error) {
	id, err := uuid.Parse(s.ID)
	if err != nil {
		return nil, err
	}
	adminIDs := make([]uuid.UUID, 0, len(admins))
	for _, a := range admins {
		adminID, err := uuid.Parse(a.PlayerID)
		if err != nil {
			return nil, err
		}
		adminIDs = append(adminIDs, adminID)
	}
	memberships := make([]domain.Membership, 0, len(members))
	for _, m := range members {
		playerID, err := uuid.Parse(m.PlayerID)
		if err != nil {
			return nil, err
		}
		memberships = append(memberships, domain.Membership{
			PlayerID: playerID,
			SquadID:  id,
			Rating:   domain.Rating(m.Rating),
			JoinedAt: m.JoinedAt,
		})
	}
	return domain.RestoreSquad(id, s.Name, s.CreatedAt, adminIDs, memberships), nil
}

func convertSquadFromDomain(s *domain.Squad) (model.Squads, []model.SquadAdmins, []model.SquadMembers) {
	admins := make([]model.SquadAdmins, 0, len(s.AdminIDs()))
	for _, adminID := range s.AdminIDs() {
		admins = append(admins, model.SquadAdmins{
			SquadID:  s.ID.String(),
			PlayerID: adminID.String(),
		})
	}
	members := make([]model.SquadMembers, 0, len(s.Members()))
	for _, m := range s.Members() {
		members = append(members, model.SquadMembers{
			SquadID:  s.ID.String(),
			PlayerID: m.PlayerID.String(),
			Rating:   int32(m.Rating.Int()),
			JoinedAt: m.JoinedAt,
		})
	}
	return model.Squads{
		ID:        s.ID.String(),
		Name:      s.Name,
		CreatedAt: s.CreatedAt,
	}, admins, members
}

const (
	teamA = "a"
	teamB = "b"
)

func convertMatchToDomain(m model.Matches, participants []model.MatchParticipants) (*domain.Match, error) {
	id, err := uuid.Parse(m.ID)
	if err != nil {
		return nil, err
	}
	squadID, err := uuid.Parse(m.SquadID)
	if err != nil {
		return nil, err
	}
	var a, b domain.Team
	for _, p := range participants {
		playerID, err := uuid.Parse(p.PlayerID)
		if err != nil {
			return nil, err
		}
		participant := domain.Participant{PlayerID: playerID, Rating: domain.Rating(p.Rating)}
		if p.Team == teamA {
			a.Participants = append(a.Participants, participant)
			a.TotalRating += int(p.Rating)
		} else {
			b.Participants = append(b.Participants, participant)
			b.TotalRating += int(p.Rating)
		}
	}
	var result *domain.Result
	if m.Winner != nil && m.RecordedAt != nil {
		var feedback string
		if m.Feedback != nil {
			feedback = *m.Feedback
		}
		result = &domain.Result{
			Winner:     domain.Winner(*m.Winner),
			Feedback:   feedback,
			RecordedAt: *m.RecordedAt,
		}
	}
	return domain.RestoreMatch(id, squadID, m.ScheduledAt, int(m.TeamSize), m.CreatedAt, a, b, domain.MatchStatus(m.Status), result), nil
}

func convertMatchFromDomain(m *domain.Match) (model.Matches, []model.MatchParticipants) {
	row := model.Matches{
		ID:          m.ID.String(),
		SquadID:     m.SquadID.String(),
		ScheduledAt: m.ScheduledAt,
		TeamSize:    int32(m.TeamSize),
		Status:      string(m.Status()),
		CreatedAt:   m.CreatedAt,
	}
	if res := m.Result(); res != nil {
		winner := string(res.Winner)
		row.Winner = &winner
		if res.Feedback != "" {
			feedback := res.Feedback
			row.Feedback = &feedback
		}
		recordedAt := res.RecordedAt
		row.RecordedAt = &recordedAt
	}
	var participants []model.MatchParticipants
	for team, members := range map[string][]domain.Participant{
		teamA: m.TeamA().Participants,
		teamB: m.TeamB().Participants,
	} {
		for i, p := range members {
			participants = append(participants, model.MatchParticipants{
				MatchID:  m.ID.String(),
				PlayerID: p.PlayerID.String(),
				Rating:   int32(p.Rating.Int()),
				Team:     team,
				Position: int32(i),
			})
		}
	}
	return row, participants
}

func hexToBytes(s string) ([]byte, error) {
	if s == "" {
		return nil, nil
	}
	return hex.DecodeString(s)
}

func bytesToHex(b []byte) string {
	return hex.EncodeToString(b)
}

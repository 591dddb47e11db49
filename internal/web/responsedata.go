package web

import (
	"time"

	"github.com/google/uuid"

	"squadmatch/internal/domain"
)

type accountResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

type memberResponse struct {
	PlayerID uuid.UUID `json:"playerId"`
	Rating   int       `json:"rating"`
	JoinedAt time.Time `json:"joinedAt"`
}

type squadResponse struct {
	ID        uuid.UUID        `json:"id"`
	Name      string           `json:"name"`
	CreatedAt time.Time        `json:"createdAt"`
	Admins    []uuid.UUID      `json:"admins"`
	Members   []memberResponse `json:"members"`
}

type participantResponse struct {
	PlayerID uuid.UUID `json:"playerId"`
	Rating   int       `json:"rating"`
}

type teamResponse struct {
	Players     []participantResponse `json:"players"`
	TotalRating int                   `json:"totalRating"`
}

type resultResponse struct {
	Winner     string    `json:"winner"`
	Feedback   string    `json:"feedback,omitempty"`
	RecordedAt time.Time `json:"recordedAt"`
}

type matchResponse struct {
	ID          uuid.UUID       `json:"id"`
	SquadID     uuid.UUID       `json:"squadId"`
	ScheduledAt time.Time       `json:"scheduledAt"`
	TeamSize    int             `json:"teamSize"`
	Status      string          `json:"status"`
	TeamA       teamResponse    `json:"teamA"`
	TeamB       teamResponse    `json:"teamB"`
	Result      *resultResponse `json:"result,omitempty"`
}

type ratingResponse struct {
	PlayerID uuid.UUID `json:"playerId"`
	SquadID  uuid.UUID `json:"squadId"`
	Rating   int       `json:"rating"`
}

func convertAccount(a domain.PlayerAccount) accountResponse {
	return accountResponse{
		ID:    a.ID,
		Email: a.Email,
	}
}

func convertSquad(s *domain.Squad) squadResponse {
	members := s.Members()
	resp := squadResponse{
		ID:        s.ID,
		Name:      s.Name,
		CreatedAt: s.CreatedAt,
		Admins:    s.AdminIDs(),
		Members:   make([]memberResponse, 0, len(members)),
	}
	for _, m := range members {
		resp.Members = append(resp.Members, memberResponse{
			PlayerID: m.PlayerID,
			Rating:   m.Rating.Int(),
			JoinedAt: m.JoinedAt,
		})
	}
	return resp
}

func convertMembers(members []domain.Membership) []memberResponse {
	resp := make([]memberResponse, 0, len(members))
	for _, m := range members {
		resp = append(resp, memberResponse{
			PlayerID: m.PlayerID,
			Rating:   m.Rating.Int(),
			JoinedAt: m.JoinedAt,
		})
	}
	return resp
}

func convertTeam(t domain.Team) teamResponse {
	resp := teamResponse{
		Players:     make([]participantResponse, 0, len(t.Participants)),
		TotalRating: t.TotalRating,
	}
	for _, p := range t.Participants {
		resp.Players = append(resp.Players, participantResponse{
			PlayerID: p.PlayerID,
			Rating:   p.Rating.Int(),
		})
	}
	return resp
}

func convertMatch(m *domain.Match) matchResponse {
	resp := matchResponse{
		ID:          m.ID,
		SquadID:     m.SquadID,
		ScheduledAt: m.ScheduledAt,
		TeamSize:    m.TeamSize,
		Status:      string(m.Status()),
		TeamA:       convertTeam(m.TeamA()),
		TeamB:       convertTeam(m.TeamB()),
	}
	if result := m.Result(); result != nil {
		resp.Result = &resultResponse{
			Winner:     string(result.Winner),
			Feedback:   result.Feedback,
			RecordedAt: result.RecordedAt,
		}
	}
	return resp
}

func convertMatches(matches []*domain.Match) []matchResponse {
	resp := make([]matchResponse, 0, len(matches))
	for _, m := range matches {
		resp = append(resp, convertMatch(m))
	}
	return resp
}

func convertSquads(squads []*domain.Squad) []squadResponse {
	resp := make([]squadResponse, 0, len(squads))
	for _, s := range squads {
		resp = append(resp, convertSquad(s))
	}
	return resp
}

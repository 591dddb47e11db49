package domain

import (
	"time"

	"github.com/google/uuid"
)

type MatchStatus string

const (
	MatchPending   MatchStatus = "pending"
	MatchCompleted MatchStatus = "completed"
)

// Winner designates the outcome of a completed match.
type Winner string

const (
	WinnerTeamA Winner = "team_a"
	WinnerTeamB Winner = "team_b"
	WinnerDraw  Winner = "draw"
)

const DefaultTeamSize = 5

// Participant is a player's rating frozen at match-creation time. It is a
// copy, never synced with the live squad rating, so finished matches keep
// the numbers the teams were built from.
type Participant struct {
	PlayerID uuid.UUID
	Rating   Rating
}

type Team struct {
	Participants []Participant
	TotalRating  int
}

type Result struct {
	Winner     Winner
	Feedback   string
	RecordedAt time.Time
}

// Match is one scheduled contest between two teams drawn from a squad.
// Status only ever moves pending -> completed.
type Match struct {
	ID          uuid.UUID
	SquadID     uuid.UUID
	ScheduledAt time.Time
	TeamSize    int
	CreatedAt   time.Time

	participants []Participant
	teamA        Team
	teamB        Team
	status       MatchStatus
	result       *Result
}

// NewMatch validates the participant list and team size. Teams are
// assigned right after via AssignTeams; a match is never persisted without
// them.
func NewMatch(squadID uuid.UUID, scheduledAt time.Time, teamSize int, participants []Participant) (*Match, error) {
	if squadID == uuid.Nil {
		return nil, ErrEmptyID
	}
	if teamSize < 1 {
		return nil, ErrInvalidTeamSize
	}
	if len(participants) < 2 || len(participants)%2 != 0 {
		return nil, ErrInvalidPlayerCount
	}
	seen := make(map[uuid.UUID]struct{}, len(participants))
	for _, p := range participants {
		if p.PlayerID == uuid.Nil {
			return nil, ErrEmptyID
		}
		if _, ok := seen[p.PlayerID]; ok {
			return nil, ErrInvalidPlayerCount
		}
		seen[p.PlayerID] = struct{}{}
	}
	return &Match{
		ID:           uuid.New(),
		SquadID:      squadID,
		ScheduledAt:  scheduledAt,
		TeamSize:     teamSize,
		CreatedAt:    time.Now(),
		participants: participants,
		status:       MatchPending,
	}, nil
}

// RestoreMatch rebuilds a match from storage.
func RestoreMatch(id, squadID uuid.UUID, scheduledAt time.Time, teamSize int, createdAt time.Time, teamA, teamB Team, status MatchStatus, result *Result) *Match {
	participants := make([]Participant, 0, len(teamA.Participants)+len(teamB.Participants))
	participants = append(participants, teamA.Participants...)
	participants = append(participants, teamB.Participants...)
	return &Match{
		ID:           id,
		SquadID:      squadID,
		ScheduledAt:  scheduledAt,
		TeamSize:     teamSize,
		CreatedAt:    createdAt,
		participants: participants,
		teamA:        teamA,
		teamB:        teamB,
		status:       status,
		result:       result,
	}
}

// AssignTeams accepts the balanced split. Both teams together must cover
// the participant list exactly: equal halves, no strangers, no repeats.
func (m *Match) AssignTeams(teamA, teamB Team) error {
	if len(teamA.Participants) != len(teamB.Participants) {
		return ErrTeamPartition
	}
	if len(teamA.Participants)+len(teamB.Participants) != len(m.participants) {
		return ErrTeamPartition
	}
	assigned := make(map[uuid.UUID]struct{}, len(m.participants))
	for _, t := range []Team{teamA, teamB} {
		for _, p := range t.Participants {
			if _, ok := assigned[p.PlayerID]; ok {
				return ErrTeamPartition
			}
			assigned[p.PlayerID] = struct{}{}
		}
	}
	for _, p := range m.participants {
		if _, ok := assigned[p.PlayerID]; !ok {
			return ErrTeamPartition
		}
	}
	m.teamA = teamA
	m.teamB = teamB
	return nil
}

// Record stores the outcome and completes the match. It works exactly
// once; the transition is terminal.
func (m *Match) Record(winner Winner, feedback string, at time.Time) error {
	if m.status == MatchCompleted {
		return ErrMatchCompleted
	}
	switch winner {
	case WinnerTeamA, WinnerTeamB, WinnerDraw:
	default:
		return ErrInvalidWinner
	}
	m.result = &Result{
		Winner:     winner,
		Feedback:   feedback,
		RecordedAt: at,
	}
	m.status = MatchCompleted
	return nil
}

func (m *Match) Status() MatchStatus {
	return m.status
}

func (m *Match) TeamA() Team {
	return m.teamA
}

func (m *Match) TeamB() Team {
	return m.teamB
}

func (m *Match) Result() *Result {
	if m.result == nil {
		return nil
	}
	r := *m.result
	return &r
}

func (m *Match) Participants() []Participant {
	participants := make([]Participant, len(m.participants))
	copy(participants, m.participants)
	return participants
}

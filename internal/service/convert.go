package service

import (
	"squadmatch/internal/balance"
	"squadmatch/internal/domain"
)

func toBalancePlayers(participants []domain.Participant) []balance.Player {
	players := make([]balance.Player, 0, len(participants))
	for _, p := range participants {
		players = append(players, balance.Player{ID: p.PlayerID, Rating: p.Rating.Int()})
	}
	return players
}

func toDomainTeam(team balance.Team) domain.Team {
	participants := make([]domain.Participant, 0, len(team.Players))
	for _, p := range team.Players {
		participants = append(participants, domain.Participant{PlayerID: p.ID, Rating: domain.Rating(p.Rating)})
	}
	return domain.Team{Participants: participants, TotalRating: team.Total}
}

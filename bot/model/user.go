package model

import "time"

// EventType names a notification stream a chat can subscribe to.
type EventType string

const (
	MatchScheduled EventType = "match_scheduled"
	MatchResult    EventType = "match_result"
)

func Events() []EventType {
	return []EventType{MatchScheduled, MatchResult}
}

type User struct {
	ChatID    int64
	Username  string
	CreatedAt time.Time

	Subscriptions []EventType
}

package tgbot

import (
	mapset "github.com/deckarep/golang-set/v2"

	botmodel "squadmatch/bot/model"
)

// subscriptions fans chat ids out per event. The map is fully built in
// newSubs and never written afterwards; commands on the bot goroutine and
// notifications from request goroutines only touch the thread-safe sets.
type subscriptions struct {
	m map[botmodel.EventType]mapset.Set[int64]
}

func newSubs() subscriptions {
	m := make(map[botmodel.EventType]mapset.Set[int64], len(botmodel.Events()))
	for _, event := range botmodel.Events() {
		m[event] = mapset.NewSet[int64]()
	}
	return subscriptions{
		m: m,
	}
}

func (s *subscriptions) Add(t botmodel.EventType, chatID int64) {
	if set, ok := s.m[t]; ok {
		set.Add(chatID)
	}
}

func (s *subscriptions) Remove(t botmodel.EventType, chatID int64) {
	if set, ok := s.m[t]; ok {
		set.Remove(chatID)
	}
}

func (s *subscriptions) ChatIDs(t botmodel.EventType) []int64 {
	set, ok := s.m[t]
	if !ok {
		return nil
	}
	return set.ToSlice()
}

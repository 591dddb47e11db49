package botstorage

import "squadmatch/bot/model"

type BotStorage interface {
	NewUser(user model.User) (model.User, error)
	GetUser(chatID int64) (model.User, error)
	ListUsers() ([]model.User, error)
	Subscribe(user model.User, event model.EventType) error
	Unsubscribe(user model.User, event model.EventType) error
}

package tgbot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"squadmatch/bot/botstorage"
	"squadmatch/bot/model"
)

type UnsubCommand struct {
	botStorage botstorage.BotStorage
	unsub      func(model.EventType, int64)
}

func (c *UnsubCommand) Run(_ context.Context, user model.User, _ string, resp *tgbotapi.MessageConfig) error {
	for _, event := range model.Events() {
		if err := c.botStorage.Unsubscribe(user, event); err != nil {
			return err
		}
		c.unsub(event, user.ChatID)
	}
	resp.Text = "Unsubscribed from match notifications, /sub to resume"
	return nil
}

func (c *UnsubCommand) Help() string {
	return "Unsubscribes this chat from match notifications"
}

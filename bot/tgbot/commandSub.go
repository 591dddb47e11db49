package tgbot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"squadmatch/bot/botstorage"
	"squadmatch/bot/model"
)

type SubCommand struct {
	botStorage botstorage.BotStorage
	sub        func(model.EventType, int64)
}

func (c *SubCommand) Run(_ context.Context, user model.User, _ string, resp *tgbotapi.MessageConfig) error {
	for _, event := range model.Events() {
		if err := c.botStorage.Subscribe(user, event); err != nil {
			return err
		}
		c.sub(event, user.ChatID)
	}
	resp.Text = "Subscribed to match notifications, /unsub to stop"
	return nil
}

func (c *SubCommand) Help() string {
	return "Subscribes this chat to match notifications"
}

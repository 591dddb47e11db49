package tgbot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"squadmatch/bot/botstorage"
	"squadmatch/bot/model"
	"squadmatch/internal/service"
)

type Command interface {
	Run(ctx context.Context, user model.User, args string, resp *tgbotapi.MessageConfig) error
	Help() string
}

type Commands struct {
	list map[string]Command
}

func NewCommands(
	ss *service.Service,
	bs botstorage.BotStorage,
	subFn func(model.EventType, int64),
	unsubFn func(model.EventType, int64),
) *Commands {
	hc := &HelpCommand{}
	uc := Commands{
		list: map[string]Command{
			"help":  hc,
			"start": hc,
			"top": &TopCommand{
				squadService: ss,
			},
			"sub": &SubCommand{
				botStorage: bs,
				sub:        subFn,
			},
			"unsub": &UnsubCommand{
				botStorage: bs,
				unsub:      unsubFn,
			},
		},
	}
	hc.commands = uc.list
	return &uc
}

func (uc *Commands) RunCommand(ctx context.Context, user model.User, cmd string, args string, resp *tgbotapi.MessageConfig) error {
	for s, command := range uc.list {
		if cmd == s {
			return command.Run(ctx, user, args, resp)
		}
	}
	return ErrBadRequest
}

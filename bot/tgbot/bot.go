package tgbot

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"squadmatch/bot/botstorage"
	botmodel "squadmatch/bot/model"
	"squadmatch/internal/config"
	"squadmatch/internal/domain"
	"squadmatch/internal/service"
)

var ErrBadRequest = errors.New("unknown command, /help for the list")

type Bot struct {
	bot *tgbotapi.BotAPI

	botStorage botstorage.BotStorage
	log        *logrus.Entry

	// cancel func to stop the bot
	cancel func()

	subs subscriptions

	commands *Commands
}

func New(ss *service.Service, bs botstorage.BotStorage, cfg config.Config, log *logrus.Logger) (*Bot, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.TgBot.TelegramAPIToken)
	if err != nil {
		return nil, fmt.Errorf("env TELEGRAM_APITOKEN: %w", err)
	}

	bot.Debug = cfg.Server.Debug
	_, err = bot.GetMe()
	if err != nil {
		return nil, err
	}
	subs := newSubs()
	users, err := bs.ListUsers()
	if err != nil {
		return nil, err
	}
	for i := range users {
		for _, subType := range users[i].Subscriptions {
			subs.Add(subType, users[i].ChatID)
		}
	}

	b := Bot{
		bot:        bot,
		botStorage: bs,
		log:        log.WithField("name", "tg_bot"),
		subs:       subs,
	}

	b.commands = NewCommands(
		ss,
		bs,
		func(event botmodel.EventType, chatID int64) {
			b.subs.Add(event, chatID)
		},
		func(event botmodel.EventType, chatID int64) {
			b.subs.Remove(event, chatID)
		},
	)

	return &b, nil
}

func (b *Bot) Run() {
	ctx, cancel := context.WithCancel(context.Background())
	b.cancel = cancel

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return
		case update := <-updates:
			b.handleMessage(ctx, update)
		}
	}
}

func (b *Bot) Stop() {
	if b.cancel != nil {
		b.cancel()
	}
}

func (b *Bot) handleMessage(ctx context.Context, update tgbotapi.Update) {
	if update.Message == nil { // ignore any non-Message updates
		return
	}
	tgUser := update.SentFrom()
	if tgUser == nil {
		return
	}
	chatID := update.Message.Chat.ID
	log := b.log.WithFields(map[string]interface{}{
		"chat_id": chatID,
		"text":    update.Message.Text,
	})
	user, err := b.botStorage.GetUser(chatID)
	if err != nil {
		user, err = b.botStorage.NewUser(botmodel.User{
			ChatID:    chatID,
			Username:  tgUser.UserName,
			CreatedAt: time.Now(),
		})
		if err != nil {
			log.WithError(err).Error("unable to get user from db")
			return
		}
	}

	msg := tgbotapi.NewMessage(chatID, "")
	err = b.commands.RunCommand(ctx, user, update.Message.Command(), update.Message.CommandArguments(), &msg)
	if err != nil {
		msg.Text = err.Error()
	}
	if _, err := b.bot.Send(msg); err != nil {
		log.WithError(err).Error("send error")
	}
}

var _ service.Notifier = (*Bot)(nil)

func (b *Bot) MatchScheduled(squad *domain.Squad, match *domain.Match) {
	var text strings.Builder
	fmt.Fprintf(&text, "New match in %s on %s\n", squad.Name, match.ScheduledAt.Format("02.01.2006 15:04"))
	fmt.Fprintf(&text, "Team A (%d): %s\n", match.TeamA().TotalRating, formatTeam(match.TeamA()))
	fmt.Fprintf(&text, "Team B (%d): %s", match.TeamB().TotalRating, formatTeam(match.TeamB()))
	b.notify(botmodel.MatchScheduled, text.String())
}

func (b *Bot) ResultRecorded(squad *domain.Squad, match *domain.Match, deltaA, deltaB int) {
	result := match.Result()
	if result == nil {
		return
	}
	var outcome string
	switch result.Winner {
	case domain.WinnerTeamA:
		outcome = "team A wins"
	case domain.WinnerTeamB:
		outcome = "team B wins"
	default:
		outcome = "draw"
	}
	text := fmt.Sprintf("Match in %s finished: %s (%+d / %+d)", squad.Name, outcome, deltaA, deltaB)
	b.notify(botmodel.MatchResult, text)
}

func (b *Bot) notify(event botmodel.EventType, text string) {
	for _, chatID := range b.subs.ChatIDs(event) {
		msg := tgbotapi.NewMessage(chatID, text)
		if _, err := b.bot.Send(msg); err != nil {
			b.log.WithError(err).Error("notification send error")
		}
	}
}

func formatTeam(team domain.Team) string {
	ids := make([]string, 0, len(team.Participants))
	for _, p := range team.Participants {
		ids = append(ids, p.PlayerID.String())
	}
	return strings.Join(ids, ", ")
}

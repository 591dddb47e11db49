package tgbot

import (
	"context"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"

	"squadmatch/bot/model"
	"squadmatch/internal/service"
)

type TopCommand struct {
	squadService *service.Service
}

func (c *TopCommand) Run(ctx context.Context, _ model.User, args string, resp *tgbotapi.MessageConfig) error {
	squadID, err := uuid.Parse(strings.TrimSpace(args))
	if err != nil {
		resp.Text = "Usage: /top <squad id>"
		return nil
	}
	board, err := c.squadService.Leaderboard(ctx, squadID)
	if err != nil {
		return err
	}
	var buffer strings.Builder
	for i := range board {
		if i > 9 {
			break
		}
		buffer.WriteString(strconv.Itoa(i + 1))
		buffer.WriteString(". ")
		buffer.WriteString(board[i].PlayerID.String())
		buffer.WriteString(" (")
		buffer.WriteString(strconv.Itoa(board[i].Rating.Int()))
		buffer.WriteString(")\n")
	}
	if buffer.Len() == 0 {
		resp.Text = "No members yet"
		return nil
	}
	resp.Text = buffer.String()
	return nil
}

func (c *TopCommand) Help() string {
	return "Shows the squad leaderboard: /top <squad id>"
}

package chat

import (
	"context"

	"github.com/Kiranxer/k-Anony/internal/domain"
	"github.com/Kiranxer/k-Anony/internal/usecases/chat/texts"
)

// HandleCommand маршрутизирует команду бота к обработчику
func (s *Service) HandleCommand(ctx context.Context, from *domain.TelegramUser, command, args string, updateID int64) error {
	s.Log.Debug("handling command",
		"command", command,
		"user_id", from.ID,
		"update_id", updateID)

	switch command {
	case "start":
		return s.HandleStart(ctx, from)
	case "next":
		return s.HandleNext(ctx, from)
	case "stop":
		return s.HandleStop(ctx, from)
	case "gender":
		return s.HandleGender(ctx, from, args)
	case "interests":
		return s.HandleInterests(ctx, from, args)
	case "profile":
		return s.HandleProfile(ctx, from)
	case "girls":
		return s.HandleGirls(ctx, from)
	case "premium":
		return s.HandlePremiumStatus(ctx, from)
	case "help":
		return s.sendMessage(ctx, from.ID, texts.Help)
	case "admin", "stats", "list_waiting", "list_users", "ban", "unban", "forcepair", "broadcast", "export", "shutdown":
		return s.handleAdminCommand(ctx, from, command, args)
	default:
		return s.sendMessage(ctx, from.ID, texts.FormatUnknownCommand(command))
	}
}

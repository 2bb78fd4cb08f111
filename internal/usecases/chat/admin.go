package chat

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Kiranxer/k-Anony/internal/domain"
	"github.com/Kiranxer/k-Anony/internal/usecases/chat/texts"
)

const (
	listWaitingLimit = 200
	listUsersLimit   = 50
)

// handleAdminCommand проверяет права и маршрутизирует админские команды
func (s *Service) handleAdminCommand(ctx context.Context, from *domain.TelegramUser, command, args string) error {
	if !s.IsAdmin(from.ID) {
		return s.sendMessage(ctx, from.ID, texts.NotAdmin)
	}

	switch command {
	case "admin":
		return s.sendMessage(ctx, from.ID, texts.AdminPanel)
	case "stats":
		return s.handleStats(ctx, from.ID)
	case "list_waiting":
		return s.handleListWaiting(ctx, from.ID)
	case "list_users":
		return s.handleListUsers(ctx, from.ID)
	case "ban":
		return s.handleBan(ctx, from.ID, args)
	case "unban":
		return s.handleUnban(ctx, from.ID, args)
	case "forcepair":
		return s.handleForcePair(ctx, from.ID, args)
	case "broadcast":
		return s.handleBroadcast(ctx, from.ID, args)
	case "export":
		return s.handleExport(ctx, from.ID)
	case "shutdown":
		return s.handleShutdown(ctx, from.ID)
	}

	return nil
}

func (s *Service) handleStats(ctx context.Context, adminID int64) error {
	s.mu.Lock()
	users := s.state.ProfileCount()
	waiting := s.state.WaitingLen()
	pairs := s.state.PairedCount() / 2
	banned := s.state.BannedCount()
	s.mu.Unlock()

	return s.sendMessage(ctx, adminID, texts.FormatStats(users, waiting, pairs, banned))
}

func (s *Service) handleListWaiting(ctx context.Context, adminID int64) error {
	s.mu.Lock()
	waiting := s.state.Waiting()
	s.mu.Unlock()

	if len(waiting) == 0 {
		return s.sendMessage(ctx, adminID, texts.WaitingEmpty)
	}

	total := len(waiting)
	if len(waiting) > listWaitingLimit {
		waiting = waiting[:listWaitingLimit]
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("⌛ In queue: %d\n", total))
	for _, id := range waiting {
		sb.WriteString(strconv.FormatInt(id, 10))
		sb.WriteString("\n")
	}
	if total > listWaitingLimit {
		sb.WriteString(fmt.Sprintf("... and %d more", total-listWaitingLimit))
	}

	return s.sendMessage(ctx, adminID, sb.String())
}

func (s *Service) handleListUsers(ctx context.Context, adminID int64) error {
	type userRow struct {
		id      int64
		profile *domain.Profile
	}

	s.mu.Lock()
	ids := s.state.ProfileIDs()
	total := len(ids)
	if len(ids) > listUsersLimit {
		ids = ids[:listUsersLimit]
	}
	rows := make([]userRow, 0, len(ids))
	for _, id := range ids {
		if profile, ok := s.state.Profile(id); ok {
			rows = append(rows, userRow{id: id, profile: profile.Clone()})
		}
	}
	s.mu.Unlock()

	if total == 0 {
		return s.sendMessage(ctx, adminID, texts.NoUsers)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("👥 Users: %d\n", total))
	for _, row := range rows {
		sb.WriteString(strconv.FormatInt(row.id, 10))
		sb.WriteString(" [")
		sb.WriteString(string(row.profile.Gender))
		sb.WriteString("]")
		if row.profile.HasPartner() {
			sb.WriteString(" paired with ")
			sb.WriteString(strconv.FormatInt(*row.profile.PartnerID, 10))
		}
		if len(row.profile.Interests) > 0 {
			sb.WriteString(": ")
			sb.WriteString(strings.Join(row.profile.Interests, ", "))
		}
		sb.WriteString("\n")
	}
	if total > listUsersLimit {
		sb.WriteString(fmt.Sprintf("... and %d more", total-listUsersLimit))
	}

	return s.sendMessage(ctx, adminID, sb.String())
}

// handleBroadcast рассылает текст всем зарегистрированным пользователям.
// Ошибки доставки не прерывают рассылку
func (s *Service) handleBroadcast(ctx context.Context, adminID int64, args string) error {
	text := strings.TrimSpace(args)
	if text == "" {
		return s.sendMessage(ctx, adminID, texts.BroadcastUsage)
	}

	s.mu.Lock()
	ids := s.state.ProfileIDs()
	s.mu.Unlock()

	sent := 0
	for _, id := range ids {
		if err := s.TelegramClient.SendMessage(ctx, id, "📣 "+text); err != nil {
			s.Log.Debug("broadcast delivery failed", "error", err, "chat_id", id)
			continue
		}
		sent++
	}

	s.Log.Info("broadcast finished", "admin_id", adminID, "sent", sent, "total", len(ids))

	return s.sendMessage(ctx, adminID, texts.FormatBroadcastDone(sent, len(ids)))
}

// handleExport сбрасывает свежий снапшот на диск и шлёт файл админу
func (s *Service) handleExport(ctx context.Context, adminID int64) error {
	if err := s.SaveSnapshot(ctx); err != nil {
		s.Log.Error("failed to flush snapshot before export", "error", err)
		return s.sendMessage(ctx, adminID, texts.ExportFailed)
	}

	data, err := os.ReadFile(s.DataFilePath)
	if err != nil {
		s.Log.Error("failed to read data file for export", "error", err, "path", s.DataFilePath)
		return s.sendMessage(ctx, adminID, texts.ExportFailed)
	}

	if err := s.TelegramClient.SendDocument(ctx, adminID, filepath.Base(s.DataFilePath), data, "Data export"); err != nil {
		s.Log.Error("failed to send export document", "error", err)
		return s.sendMessage(ctx, adminID, texts.ExportFailed)
	}

	return nil
}

// handleShutdown сбрасывает состояние и останавливает приложение
func (s *Service) handleShutdown(ctx context.Context, adminID int64) error {
	if err := s.sendMessage(ctx, adminID, texts.ShuttingDown); err != nil {
		s.Log.Warn("failed to ack shutdown", "error", err)
	}

	if err := s.SaveSnapshot(ctx); err != nil {
		s.Log.Error("failed to flush snapshot before shutdown", "error", err)
	}

	s.Log.Info("shutdown requested", "admin_id", adminID)

	if s.shutdown != nil {
		s.shutdown()
	}

	return nil
}

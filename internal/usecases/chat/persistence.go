package chat

import (
	"context"
	"fmt"

	"github.com/Kiranxer/k-Anony/internal/domain"
)

// LoadState восстанавливает состояние с диска на старте. Источник истины -
// память, поэтому ошибка чтения не фатальна: стартуем с пустого состояния
func (s *Service) LoadState(ctx context.Context) {
	snap, err := s.Snapshots.Load()
	if err != nil {
		s.Log.Error("failed to load state, starting empty", "error", err, "path", s.DataFilePath)
		s.alert(ctx, fmt.Sprintf("⚠️ Failed to load state, starting empty: %s", err))
		return
	}

	s.mu.Lock()
	s.state.Restore(snap)
	users := s.state.ProfileCount()
	waiting := s.state.WaitingLen()
	banned := s.state.BannedCount()
	s.mu.Unlock()

	s.Log.Info("state restored", "users", users, "waiting", waiting, "banned", banned)
}

// SaveSnapshot снимает полный снапшот и пишет его на диск.
// Используется автосохранением и при остановке
func (s *Service) SaveSnapshot(ctx context.Context) error {
	s.mu.Lock()
	snap := s.state.Snapshot()
	s.mu.Unlock()

	if err := s.Snapshots.Save(snap); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	return nil
}

// persist пишет снапшот после мутации. Ошибка записи логируется и уходит
// алертом, но не откатывает изменение в памяти и не видна пользователю
func (s *Service) persist(ctx context.Context, snap *domain.Snapshot) {
	if err := s.Snapshots.Save(snap); err != nil {
		s.Log.Error("failed to persist state", "error", err, "path", s.DataFilePath)
		s.alert(ctx, fmt.Sprintf("⚠️ Failed to persist state: %s", err))
	}
}

func (s *Service) alert(ctx context.Context, message string) {
	if s.Alerter == nil {
		return
	}
	if err := s.Alerter.SendAlert(ctx, message); err != nil {
		s.Log.Warn("failed to send alert", "error", err)
	}
}

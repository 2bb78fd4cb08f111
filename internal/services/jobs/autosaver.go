package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Kiranxer/k-Anony/internal/usecases/chat"
)

// Autosaver периодически сбрасывает снапшот состояния на диск.
// Подстраховка на случай падения между write-through записями
type Autosaver struct {
	chatService *chat.Service
	interval    time.Duration
	log         *slog.Logger
}

func NewAutosaver(chatService *chat.Service, interval time.Duration, log *slog.Logger) *Autosaver {
	return &Autosaver{
		chatService: chatService,
		interval:    interval,
		log:         log,
	}
}

func (j *Autosaver) Name() string {
	return "state_autosaver"
}

func (j *Autosaver) NextRun(now time.Time) time.Time {
	return now.Add(j.interval)
}

func (j *Autosaver) Run(ctx context.Context) error {
	if err := j.chatService.SaveSnapshot(ctx); err != nil {
		return fmt.Errorf("autosave failed: %w", err)
	}

	j.log.Debug("state autosaved")

	return nil
}

package chat

import (
	"log/slog"
	"sync"
	"time"

	"github.com/Kiranxer/k-Anony/internal/ports/payment"
	"github.com/Kiranxer/k-Anony/internal/ports/persistence"
	"github.com/Kiranxer/k-Anony/internal/ports/service"
	"github.com/Kiranxer/k-Anony/internal/ports/telegram"
	"github.com/Kiranxer/k-Anony/internal/state"
)

// Service реализует всю бизнес-логику анонимного чата.
// Всё состояние живёт в памяти под одним мьютексом, диск - только снапшоты
type Service struct {
	mu    sync.Mutex
	state *state.State

	Snapshots       persistence.ISnapshotStore
	TelegramClient  telegram.IClient
	PaymentProvider payment.IPaymentProvider
	Alerter         service.IAlerterService

	AdminIDs        map[int64]struct{}
	PremiumPrice    int64
	PremiumDuration time.Duration
	DataFilePath    string

	shutdown func()

	Log *slog.Logger
}

func New(
	snapshots persistence.ISnapshotStore,
	telegramClient telegram.IClient,
	paymentProvider payment.IPaymentProvider,
	alerter service.IAlerterService,
	adminIDs []int64,
	premiumPrice int64,
	premiumDuration time.Duration,
	dataFilePath string,
	log *slog.Logger,
) *Service {
	admins := make(map[int64]struct{}, len(adminIDs))
	for _, id := range adminIDs {
		admins[id] = struct{}{}
	}

	return &Service{
		state:           state.New(),
		Snapshots:       snapshots,
		TelegramClient:  telegramClient,
		PaymentProvider: paymentProvider,
		Alerter:         alerter,
		AdminIDs:        admins,
		PremiumPrice:    premiumPrice,
		PremiumDuration: premiumDuration,
		DataFilePath:    dataFilePath,
		Log:             log,
	}
}

// SetShutdownFunc задаёт колбэк остановки приложения для команды /shutdown
func (s *Service) SetShutdownFunc(fn func()) {
	s.shutdown = fn
}

func (s *Service) IsAdmin(userID int64) bool {
	_, ok := s.AdminIDs[userID]
	return ok
}

package chat

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strconv"
	"testing"
	"time"

	"github.com/Kiranxer/k-Anony/internal/domain"
	"github.com/Kiranxer/k-Anony/internal/ports/payment"
)

const testAdminID = int64(777)

type sentMessage struct {
	chatID int64
	text   string
}

type sentDocument struct {
	chatID   int64
	filename string
	data     []byte
	caption  string
}

// fakeTelegram записывает исходящие сообщения и умеет имитировать
// недоступного получателя
type fakeTelegram struct {
	sent    []sentMessage
	docs    []sentDocument
	failFor map[int64]bool
}

func newFakeTelegram() *fakeTelegram {
	return &fakeTelegram{failFor: make(map[int64]bool)}
}

func (f *fakeTelegram) SendMessage(_ context.Context, chatID int64, text string) error {
	if f.failFor[chatID] {
		return errors.New("forbidden: bot was blocked by the user")
	}
	f.sent = append(f.sent, sentMessage{chatID: chatID, text: text})
	return nil
}

func (f *fakeTelegram) SendDocument(_ context.Context, chatID int64, filename string, data []byte, caption string) error {
	if f.failFor[chatID] {
		return errors.New("forbidden: bot was blocked by the user")
	}
	f.docs = append(f.docs, sentDocument{chatID: chatID, filename: filename, data: data, caption: caption})
	return nil
}

func (f *fakeTelegram) messagesTo(chatID int64) []string {
	var texts []string
	for _, m := range f.sent {
		if m.chatID == chatID {
			texts = append(texts, m.text)
		}
	}
	return texts
}

func (f *fakeTelegram) lastMessageTo(chatID int64) string {
	texts := f.messagesTo(chatID)
	if len(texts) == 0 {
		return ""
	}
	return texts[len(texts)-1]
}

type fakeSnapshotStore struct {
	loaded    *domain.Snapshot
	loadErr   error
	saved     *domain.Snapshot
	saveCount int
	saveErr   error
}

func (f *fakeSnapshotStore) Load() (*domain.Snapshot, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	if f.loaded == nil {
		return domain.NewSnapshot(), nil
	}
	return f.loaded, nil
}

func (f *fakeSnapshotStore) Save(snap *domain.Snapshot) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = snap
	f.saveCount++
	return nil
}

type fakePaymentProvider struct {
	invoices  []payment.CreateInvoiceRequest
	createErr error
	confirmed []string
}

func (f *fakePaymentProvider) CreateInvoice(_ context.Context, req payment.CreateInvoiceRequest) (*payment.CreateInvoiceResult, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.invoices = append(f.invoices, req)
	return &payment.CreateInvoiceResult{InvoiceID: strconv.Itoa(len(f.invoices))}, nil
}

func (f *fakePaymentProvider) ConfirmPreCheckout(_ context.Context, queryID string, ok bool, _ *string) error {
	if !ok {
		return nil
	}
	f.confirmed = append(f.confirmed, queryID)
	return nil
}

func newTestService(t *testing.T) (*Service, *fakeTelegram, *fakeSnapshotStore, *fakePaymentProvider) {
	t.Helper()

	tg := newFakeTelegram()
	store := &fakeSnapshotStore{}
	provider := &fakePaymentProvider{}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := New(store, tg, provider, nil, []int64{testAdminID}, 300, 14*time.Hour, "data.json", log)

	return svc, tg, store, provider
}

func tgUser(id int64) *domain.TelegramUser {
	return &domain.TelegramUser{ID: id, FirstName: "user" + strconv.FormatInt(id, 10)}
}

// enqueueUser регистрирует анкету и ставит её в очередь ожидания
func enqueueUser(svc *Service, id int64, gender domain.Gender, interests ...string) {
	p := svc.state.GetOrCreateProfile(id)
	p.Gender = gender
	p.Interests = append([]string{}, interests...)
	svc.state.EnqueueWaiting(id)
}

// pairUsers связывает две анкеты напрямую, минуя подбор
func pairUsers(svc *Service, a, b int64) {
	aID, bID := a, b
	svc.state.GetOrCreateProfile(a).PartnerID = &bID
	svc.state.GetOrCreateProfile(b).PartnerID = &aID
}

func partnerOf(svc *Service, id int64) *int64 {
	return svc.state.GetOrCreateProfile(id).PartnerID
}

package payment

import (
	"context"
)

// IPaymentProvider интерфейс платёжного провайдера (Telegram Stars и т.д.)
// Use case зависит только от этого интерфейса, не зная деталей реализации
type IPaymentProvider interface {
	// CreateInvoice выставляет счёт пользователю, возвращает id счёта
	CreateInvoice(ctx context.Context, req CreateInvoiceRequest) (*CreateInvoiceResult, error)

	// ConfirmPreCheckout подтверждает или отклоняет pre_checkout_query
	ConfirmPreCheckout(ctx context.Context, queryID string, ok bool, errorMessage *string) error
}

// CreateInvoiceRequest запрос на создание счёта
type CreateInvoiceRequest struct {
	ChatID       int64
	ProductID    string
	ProductTitle string
	Description  string
	Amount       int64  // количество звёзд
	Currency     string // "XTR" для Stars
	Payload      string // уникальный payload для идентификации платежа
}

// CreateInvoiceResult результат создания счёта
type CreateInvoiceResult struct {
	InvoiceID string // для Telegram Stars - message_id отправленного invoice
}

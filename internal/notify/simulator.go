// Package notify содержит симулятор доставки писем с подтверждением заказа.
// Симулятор существует ради точки интеграции: в production его место за тем
// же контрактом займёт клиент реального почтового транспорта.
package notify

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/order-entry/internal/domain"
	"github.com/vladislavdragonenkov/order-entry/internal/pricing"
)

// emailPattern проверяет базовую форму адреса local@domain.tld.
var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}$`)

// ValidAddress сообщает, похож ли адрес на email формы local@domain.tld.
func ValidAddress(address string) bool {
	return emailPattern.MatchString(strings.TrimSpace(address))
}

// Delivery — отчёт о симулированной доставке.
type Delivery struct {
	MessageID   string    `json:"message_id"`
	Recipient   string    `json:"recipient"`
	Subject     string    `json:"subject"`
	OrderID     int64     `json:"order_id"`
	Attachment  string    `json:"attachment"`
	SimulatedAt time.Time `json:"simulated_at"`
}

// Sender описывает контракт отправки подтверждения. Реальный почтовый
// клиент должен реализовать этот же интерфейс.
type Sender interface {
	Send(ctx context.Context, order domain.Order, doc pricing.Document, address string) (Delivery, error)
}

// Simulator имитирует доставку: проверяет адрес, выдерживает задержку
// и пишет структурированную запись в лог. Сетевых вызовов нет.
type Simulator struct {
	delay  time.Duration
	logger *log.Entry
}

// NewSimulator создаёт симулятор с заданной задержкой доставки.
func NewSimulator(delay time.Duration, logger *log.Entry) *Simulator {
	if logger == nil {
		logger = log.WithField("component", "notify")
	}
	return &Simulator{delay: delay, logger: logger}
}

// Send валидирует адрес и симулирует отправку письма с вложенным
// документом. Возвращает ErrInvalidEmailAddress для адреса неверной формы,
// ошибку контекста при отмене во время "доставки".
func (s *Simulator) Send(ctx context.Context, order domain.Order, doc pricing.Document, address string) (Delivery, error) {
	address = strings.TrimSpace(address)
	if !emailPattern.MatchString(address) {
		return Delivery{}, domain.ErrInvalidEmailAddress
	}

	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return Delivery{}, ctx.Err()
		}
	}

	delivery := Delivery{
		MessageID:   uuid.NewString(),
		Recipient:   address,
		Subject:     doc.Subject(),
		OrderID:     order.ID,
		Attachment:  doc.FileName(),
		SimulatedAt: time.Now().UTC(),
	}

	s.logger.WithFields(log.Fields{
		"message_id": delivery.MessageID,
		"recipient":  delivery.Recipient,
		"subject":    delivery.Subject,
		"order_id":   delivery.OrderID,
		"attachment": delivery.Attachment,
	}).Info("симулируем отправку подтверждения заказа")

	return delivery, nil
}

var _ Sender = (*Simulator)(nil)

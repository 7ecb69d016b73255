package pricing

import (
	"fmt"
	"time"

	"github.com/vladislavdragonenkov/order-entry/internal/domain"
)

// Document — структурированное представление подтверждения заказа:
// заголовок, реквизиты, строки позиций, итог и отметка о генерации.
// Из него рендерятся и HTML-фрагмент, и постраничный PDF.
type Document struct {
	OrderID      int64
	CustomerName string
	Currency     domain.Currency
	CreatedAt    time.Time
	Lines        []PricedLine
	Total        float64
	GeneratedAt  time.Time
}

// BuildDocument собирает документ подтверждения из рассчитанного заказа.
func BuildDocument(priced PricedOrder) Document {
	return Document{
		OrderID:      priced.Order.ID,
		CustomerName: priced.Order.CustomerName,
		Currency:     priced.Order.Currency,
		CreatedAt:    priced.Order.CreatedAt,
		Lines:        priced.Lines,
		Total:        priced.Total,
		GeneratedAt:  time.Now().UTC(),
	}
}

// FileName возвращает имя файла для скачиваемого документа.
func (d Document) FileName() string {
	return fmt.Sprintf("order_%d_confirmation.pdf", d.OrderID)
}

// Subject возвращает тему письма для отправки подтверждения.
func (d Document) Subject() string {
	return fmt.Sprintf("Order Confirmation #%d", d.OrderID)
}

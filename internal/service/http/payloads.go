package httpsvc

import (
	"time"

	"github.com/vladislavdragonenkov/order-entry/internal/domain"
	"github.com/vladislavdragonenkov/order-entry/internal/notify"
	"github.com/vladislavdragonenkov/order-entry/internal/pricing"
)

// Wire-структуры намеренно отделены от доменных и от схемы хранения:
// это плоские транспортные формы без общих базовых типов.

type lineItemPayload struct {
	ProductName string `json:"product_name"`
	Quantity    int64  `json:"quantity"`
}

type createOrderRequest struct {
	CustomerName string            `json:"customer_name"`
	Currency     string            `json:"currency,omitempty"`
	LineItems    []lineItemPayload `json:"line_items"`
}

type orderPayload struct {
	ID           int64             `json:"id"`
	CustomerName string            `json:"customer_name"`
	Currency     string            `json:"currency"`
	CreatedAt    time.Time         `json:"created_at"`
	LineItems    []lineItemPayload `json:"line_items"`
}

// pricedLinePayload отдаёт суммы строками с двумя знаками после запятой:
// это представление для отображения, согласованное с HTML и PDF.
type pricedLinePayload struct {
	ProductName string `json:"product_name"`
	Quantity    int64  `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	LineTotal   string `json:"line_total"`
}

type pricingPayload struct {
	Currency string              `json:"currency"`
	Lines    []pricedLinePayload `json:"lines"`
	Total    string              `json:"total"`
}

type createOrderResponse struct {
	Order            orderPayload   `json:"order"`
	Pricing          pricingPayload `json:"pricing"`
	ConfirmationHTML string         `json:"confirmation_html"`
}

type emailResponse struct {
	Note     string          `json:"note"`
	Delivery notify.Delivery `json:"delivery"`
}

func (r createOrderRequest) toDraft() domain.OrderDraft {
	currency := domain.Currency(r.Currency)
	if r.Currency == "" {
		currency = domain.DefaultCurrency
	}

	items := make([]domain.LineItem, 0, len(r.LineItems))
	for _, item := range r.LineItems {
		items = append(items, domain.LineItem{
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
		})
	}

	return domain.OrderDraft{
		CustomerName: r.CustomerName,
		Currency:     currency,
		Items:        items,
	}
}

func toOrderPayload(order domain.Order) orderPayload {
	items := make([]lineItemPayload, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, lineItemPayload{
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
		})
	}

	return orderPayload{
		ID:           order.ID,
		CustomerName: order.CustomerName,
		Currency:     string(order.Currency),
		CreatedAt:    order.CreatedAt,
		LineItems:    items,
	}
}

func toPricingPayload(priced pricing.PricedOrder) pricingPayload {
	lines := make([]pricedLinePayload, 0, len(priced.Lines))
	for _, line := range priced.Lines {
		lines = append(lines, pricedLinePayload{
			ProductName: line.ProductName,
			Quantity:    line.Quantity,
			UnitPrice:   pricing.FormatAmount(line.UnitPrice),
			LineTotal:   pricing.FormatAmount(line.LineTotal),
		})
	}

	return pricingPayload{
		Currency: string(priced.Order.Currency),
		Lines:    lines,
		Total:    pricing.FormatAmount(priced.Total),
	}
}

package domain

import "time"

// Currency — код валюты заказа.
type Currency string

const (
	// CurrencyCAD — базовая валюта каталога, все цены выражены в ней.
	CurrencyCAD Currency = "CAD"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"

	// DefaultCurrency используется, если клиент не указал валюту.
	DefaultCurrency = CurrencyCAD
)

const (
	// MaxOrderItems — максимальное число позиций в одном заказе.
	MaxOrderItems = 100
	// MaxQuantityTotal — предел суммы количеств по всем позициям заказа.
	MaxQuantityTotal = 1_000_000
)

// LineItem представляет одну позицию заказа.
type LineItem struct {
	// ProductName — название товара из каталога.
	ProductName string
	// Quantity — количество единиц товара, строго больше нуля.
	Quantity int64
}

// OrderDraft — заказ в том виде, в каком его прислал клиент:
// без идентификатора и отметки времени, до валидации.
type OrderDraft struct {
	CustomerName string
	Currency     Currency
	Items        []LineItem
}

// Order — сохранённый заказ. ID назначается хранилищем монотонно
// начиная с 1 и после создания не меняется.
type Order struct {
	ID           int64
	CustomerName string
	Currency     Currency
	CreatedAt    time.Time
	Items        []LineItem
}

// SupportedCurrency сообщает, входит ли код в список поддерживаемых валют.
func SupportedCurrency(c Currency) bool {
	switch c {
	case CurrencyCAD, CurrencyUSD, CurrencyEUR, CurrencyGBP:
		return true
	default:
		return false
	}
}

// QuantityTotal возвращает сумму количеств по всем позициям. Лимит суммы
// не проверяет: его с защитой от переполнения применяет ValidateOrder.
func QuantityTotal(items []LineItem) int64 {
	var total int64
	for _, item := range items {
		total += item.Quantity
	}
	return total
}

// Package pricing вычисляет стоимость заказа по статическому каталогу
// и таблице курсов и строит подтверждающий документ для обоих
// представлений: HTML-фрагмента и постраничного PDF.
package pricing

import (
	"strconv"

	"github.com/vladislavdragonenkov/order-entry/internal/domain"
)

// PricedLine — одна позиция заказа с рассчитанными ценами в валюте заказа.
type PricedLine struct {
	ProductName string
	Quantity    int64
	// UnitPrice — цена за единицу: базовая цена каталога * курс валюты.
	UnitPrice float64
	// LineTotal — UnitPrice * Quantity.
	LineTotal float64
}

// PricedOrder — заказ с расчётом по позициям и итоговой суммой.
// Оба представления подтверждения строятся из этой структуры, поэтому
// цифры в HTML и PDF не могут разойтись.
type PricedOrder struct {
	Order domain.Order
	Lines []PricedLine
	Total float64
}

// PriceOrder рассчитывает стоимость заказа. Функция детерминирована:
// один и тот же заказ с одной и той же таблицей курсов всегда даёт
// одинаковый итог. Неизвестный товар получает базовую цену 0 — это
// осознанный fallback, а не ошибка (см. domain.ProductCatalog.BasePrice).
func PriceOrder(order domain.Order, catalog domain.ProductCatalog, rates domain.ExchangeRateTable) PricedOrder {
	rate := rates[order.Currency]

	lines := make([]PricedLine, 0, len(order.Items))
	var total float64
	for _, item := range order.Items {
		unit := catalog.BasePrice(item.ProductName) * rate
		lineTotal := unit * float64(item.Quantity)
		lines = append(lines, PricedLine{
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   unit,
			LineTotal:   lineTotal,
		})
		total += lineTotal
	}

	return PricedOrder{Order: order, Lines: lines, Total: total}
}

// FormatAmount выводит сумму с двумя знаками после запятой.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

package pricing_test

import (
	"math"
	"testing"
	"time"

	"github.com/vladislavdragonenkov/order-entry/internal/domain"
	"github.com/vladislavdragonenkov/order-entry/internal/pricing"
)

func makeOrder() domain.Order {
	return domain.Order{
		ID:           1,
		CustomerName: "John Doe",
		Currency:     domain.CurrencyUSD,
		CreatedAt:    time.Now().UTC(),
		Items: []domain.LineItem{
			{ProductName: "Laptop", Quantity: 2},
			{ProductName: "Mouse", Quantity: 3},
		},
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// Контрольный пример: Laptop=1200 CAD, Mouse=25 CAD, курс USD=0.75.
func TestPriceOrder_USDExample(t *testing.T) {
	priced := pricing.PriceOrder(makeOrder(), domain.DefaultCatalog(), domain.DefaultRates())

	if len(priced.Lines) != 2 {
		t.Fatalf("expected 2 priced lines, got %d", len(priced.Lines))
	}

	laptop := priced.Lines[0]
	if !almostEqual(laptop.UnitPrice, 900.00) {
		t.Fatalf("expected laptop unit price 900.00, got %f", laptop.UnitPrice)
	}
	if !almostEqual(laptop.LineTotal, 1800.00) {
		t.Fatalf("expected laptop line total 1800.00, got %f", laptop.LineTotal)
	}

	mouse := priced.Lines[1]
	if !almostEqual(mouse.UnitPrice, 18.75) {
		t.Fatalf("expected mouse unit price 18.75, got %f", mouse.UnitPrice)
	}
	if !almostEqual(mouse.LineTotal, 56.25) {
		t.Fatalf("expected mouse line total 56.25, got %f", mouse.LineTotal)
	}

	if !almostEqual(priced.Total, 1856.25) {
		t.Fatalf("expected total 1856.25, got %f", priced.Total)
	}
}

func TestPriceOrder_Deterministic(t *testing.T) {
	order := makeOrder()
	catalog := domain.DefaultCatalog()
	rates := domain.DefaultRates()

	first := pricing.PriceOrder(order, catalog, rates)
	second := pricing.PriceOrder(order, catalog, rates)

	if first.Total != second.Total {
		t.Fatalf("expected identical totals, got %f and %f", first.Total, second.Total)
	}
	for i := range first.Lines {
		if first.Lines[i] != second.Lines[i] {
			t.Fatalf("expected identical line %d, got %+v and %+v", i, first.Lines[i], second.Lines[i])
		}
	}
}

// Итог равен сумме unit_price*quantity, посчитанной независимо.
func TestPriceOrder_TotalMatchesLines(t *testing.T) {
	priced := pricing.PriceOrder(makeOrder(), domain.DefaultCatalog(), domain.DefaultRates())

	var expected float64
	for _, line := range priced.Lines {
		expected += line.UnitPrice * float64(line.Quantity)
	}

	if pricing.FormatAmount(priced.Total) != pricing.FormatAmount(expected) {
		t.Fatalf("expected total %s, got %s", pricing.FormatAmount(expected), pricing.FormatAmount(priced.Total))
	}
}

// Неизвестный товар оценивается в 0 вместо ошибки.
func TestPriceOrder_UnknownProductFallback(t *testing.T) {
	order := makeOrder()
	order.Items = append(order.Items, domain.LineItem{ProductName: "Flux Capacitor", Quantity: 7})

	priced := pricing.PriceOrder(order, domain.DefaultCatalog(), domain.DefaultRates())

	last := priced.Lines[len(priced.Lines)-1]
	if last.UnitPrice != 0 || last.LineTotal != 0 {
		t.Fatalf("expected zero pricing for unknown product, got %+v", last)
	}
	if !almostEqual(priced.Total, 1856.25) {
		t.Fatalf("expected unknown product not to affect total, got %f", priced.Total)
	}
}

func TestFormatAmount(t *testing.T) {
	cases := map[float64]string{
		1856.25: "1856.25",
		900:     "900.00",
		18.754:  "18.75",
		0:       "0.00",
	}
	for value, expected := range cases {
		if got := pricing.FormatAmount(value); got != expected {
			t.Fatalf("expected %s for %f, got %s", expected, value, got)
		}
	}
}

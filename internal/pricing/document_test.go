package pricing_test

import (
	"strings"
	"testing"

	"github.com/vladislavdragonenkov/order-entry/internal/domain"
	"github.com/vladislavdragonenkov/order-entry/internal/pricing"
)

func TestBuildDocument(t *testing.T) {
	priced := pricing.PriceOrder(makeOrder(), domain.DefaultCatalog(), domain.DefaultRates())
	doc := pricing.BuildDocument(priced)

	if doc.OrderID != priced.Order.ID {
		t.Fatalf("expected order id %d, got %d", priced.Order.ID, doc.OrderID)
	}
	if doc.CustomerName != "John Doe" {
		t.Fatalf("unexpected customer name: %s", doc.CustomerName)
	}
	if doc.Total != priced.Total {
		t.Fatalf("expected total %f, got %f", priced.Total, doc.Total)
	}
	if len(doc.Lines) != len(priced.Lines) {
		t.Fatalf("expected %d lines, got %d", len(priced.Lines), len(doc.Lines))
	}
	if doc.GeneratedAt.IsZero() {
		t.Fatal("expected generation timestamp to be set")
	}
	if doc.FileName() != "order_1_confirmation.pdf" {
		t.Fatalf("unexpected file name: %s", doc.FileName())
	}
	if doc.Subject() != "Order Confirmation #1" {
		t.Fatalf("unexpected subject: %s", doc.Subject())
	}
}

// HTML и PDF строятся из одного Document, поэтому достаточно проверить,
// что фрагмент содержит те же суммы, что и расчёт.
func TestRenderHTML(t *testing.T) {
	priced := pricing.PriceOrder(makeOrder(), domain.DefaultCatalog(), domain.DefaultRates())
	html, err := pricing.RenderHTML(pricing.BuildDocument(priced))
	if err != nil {
		t.Fatalf("render html failed: %v", err)
	}

	for _, fragment := range []string{
		"Order Confirmation",
		"John Doe",
		"Laptop",
		"900.00 USD",
		"1800.00 USD",
		"Mouse",
		"18.75 USD",
		"56.25 USD",
		"1856.25 USD",
	} {
		if !strings.Contains(html, fragment) {
			t.Fatalf("expected html to contain %q:\n%s", fragment, html)
		}
	}
}

func TestRenderPDF(t *testing.T) {
	priced := pricing.PriceOrder(makeOrder(), domain.DefaultCatalog(), domain.DefaultRates())

	data, err := pricing.RenderPDF(pricing.BuildDocument(priced))
	if err != nil {
		t.Fatalf("render pdf failed: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("expected non-empty pdf output")
	}
	if !strings.HasPrefix(string(data[:5]), "%PDF-") {
		t.Fatalf("expected pdf header, got %q", data[:5])
	}
}

// Большой заказ должен разбиваться на страницы, а не обрываться.
func TestRenderPDF_ManyLines(t *testing.T) {
	order := makeOrder()
	order.Items = nil
	catalog := domain.DefaultCatalog()
	for name := range catalog {
		order.Items = append(order.Items, domain.LineItem{ProductName: name, Quantity: 1})
	}
	for i := len(order.Items); i < domain.MaxOrderItems; i++ {
		order.Items = append(order.Items, domain.LineItem{ProductName: "Mouse", Quantity: 1})
	}

	data, err := pricing.RenderPDF(pricing.BuildDocument(pricing.PriceOrder(order, catalog, domain.DefaultRates())))
	if err != nil {
		t.Fatalf("render pdf failed: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("expected non-empty pdf output")
	}
}

package pricing

import (
	"fmt"
	"html/template"
	"strings"
	"time"
)

// confirmationTemplate — встроенный HTML-фрагмент подтверждения.
// Это фрагмент, а не полная страница: его встраивает клиентская часть.
var confirmationTemplate = template.Must(
	template.New("confirmation").Funcs(template.FuncMap{
		"amount": FormatAmount,
		"stamp":  func(t time.Time) string { return t.UTC().Format("2006-01-02 15:04:05 UTC") },
	}).Parse(`<div class="order-confirmation">
  <h2>Order Confirmation</h2>
  <table class="order-info">
    <tr><th>Order ID</th><td>{{.OrderID}}</td></tr>
    <tr><th>Customer</th><td>{{.CustomerName}}</td></tr>
    <tr><th>Currency</th><td>{{.Currency}}</td></tr>
    <tr><th>Created</th><td>{{stamp .CreatedAt}}</td></tr>
  </table>
  <table class="line-items">
    <tr><th>Product</th><th>Quantity</th><th>Unit Price</th><th>Line Total</th></tr>
{{- range .Lines}}
    <tr><td>{{.ProductName}}</td><td>{{.Quantity}}</td><td>{{amount .UnitPrice}} {{$.Currency}}</td><td>{{amount .LineTotal}} {{$.Currency}}</td></tr>
{{- end}}
    <tr class="total"><td colspan="3">Total</td><td>{{amount .Total}} {{.Currency}}</td></tr>
  </table>
  <p class="generated-at">Generated at {{stamp .GeneratedAt}}</p>
</div>`),
)

// RenderHTML рендерит документ подтверждения в HTML-фрагмент.
func RenderHTML(doc Document) (string, error) {
	var buf strings.Builder
	if err := confirmationTemplate.Execute(&buf, doc); err != nil {
		return "", fmt.Errorf("render confirmation html: %w", err)
	}
	return buf.String(), nil
}

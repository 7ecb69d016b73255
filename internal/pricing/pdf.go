package pricing

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/go-pdf/fpdf"
)

const (
	pdfColProduct float64 = 70
	pdfColQty     float64 = 25
	pdfColUnit    float64 = 45
	pdfColTotal   float64 = 45
	pdfRowHeight  float64 = 8
)

// RenderPDF рендерит документ подтверждения в постраничный PDF:
// титульный блок, таблица реквизитов, таблица позиций с шапкой и итоговой
// строкой, футер с отметкой генерации и номером страницы. Генерация
// полностью в памяти и ограничена размером заказа, поэтому не зависает.
func RenderPDF(doc Document) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(doc.Subject(), false)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AliasNbPages("")

	generated := doc.GeneratedAt.UTC().Format("2006-01-02 15:04:05 UTC")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(95, 6, "Generated at "+generated, "", 0, "L", false, 0, "")
		pdf.CellFormat(95, 6, fmt.Sprintf("Page %d of {nb}", pdf.PageNo()), "", 0, "R", false, 0, "")
	})

	pdf.AddPage()

	// Титульный блок.
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 12, "Order Confirmation", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// Реквизиты заказа.
	pdf.SetFont("Helvetica", "", 11)
	writeInfoRow(pdf, "Order ID", strconv.FormatInt(doc.OrderID, 10))
	writeInfoRow(pdf, "Customer", doc.CustomerName)
	writeInfoRow(pdf, "Currency", string(doc.Currency))
	writeInfoRow(pdf, "Created", doc.CreatedAt.UTC().Format("2006-01-02 15:04:05 UTC"))
	pdf.Ln(6)

	// Шапка таблицы позиций.
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(pdfColProduct, pdfRowHeight, "Product", "1", 0, "L", true, 0, "")
	pdf.CellFormat(pdfColQty, pdfRowHeight, "Qty", "1", 0, "R", true, 0, "")
	pdf.CellFormat(pdfColUnit, pdfRowHeight, "Unit Price", "1", 0, "R", true, 0, "")
	pdf.CellFormat(pdfColTotal, pdfRowHeight, "Line Total", "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	for _, line := range doc.Lines {
		pdf.CellFormat(pdfColProduct, pdfRowHeight, line.ProductName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(pdfColQty, pdfRowHeight, strconv.FormatInt(line.Quantity, 10), "1", 0, "R", false, 0, "")
		pdf.CellFormat(pdfColUnit, pdfRowHeight, FormatAmount(line.UnitPrice), "1", 0, "R", false, 0, "")
		pdf.CellFormat(pdfColTotal, pdfRowHeight, FormatAmount(line.LineTotal), "1", 1, "R", false, 0, "")
	}

	// Итоговая строка.
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(pdfColProduct+pdfColQty+pdfColUnit, pdfRowHeight, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(pdfColTotal, pdfRowHeight, FormatAmount(doc.Total)+" "+string(doc.Currency), "1", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render confirmation pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func writeInfoRow(pdf *fpdf.Fpdf, label, value string) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(40, 7, label, "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7, value, "", 1, "L", false, 0, "")
}

package controllers

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
	"github.com/tealeg/xlsx"

	"github.com/nandu-kp/paygate/middleware"
	"github.com/nandu-kp/paygate/models"
	"github.com/nandu-kp/paygate/utils"
)

// GET /api/v1/dashboard/transactions/export?format=excel|pdf
func ExportTransactions(c *gin.Context) {
	merchant, ok := middleware.CurrentMerchant(c)
	if !ok {
		utils.RespondError(c, utils.NewAuthenticationError("Invalid API credentials"))
		return
	}

	format := c.DefaultQuery("format", "excel")
	if format != "excel" && format != "pdf" {
		utils.RespondError(c, utils.NewBadRequestError("format must be excel or pdf"))
		return
	}

	payments, err := merchantTransactions(merchant.ID)
	if err != nil {
		utils.LogError("Failed to fetch transactions for merchant %s: %v", merchant.ID, err)
		utils.RespondError(c, utils.NewInternalError())
		return
	}

	stats, err := computeMerchantStats(merchant.ID)
	if err != nil {
		utils.LogError("Failed to compute stats for merchant %s: %v", merchant.ID, err)
		utils.RespondError(c, utils.NewInternalError())
		return
	}

	utils.LogDebug("Exporting %d transactions for merchant %s as %s", len(payments), merchant.ID, format)

	if format == "excel" {
		writeTransactionsExcel(c, &merchant, payments, stats)
		return
	}
	writeTransactionsPDF(c, &merchant, payments, stats)
}

func writeTransactionsExcel(c *gin.Context, merchant *models.Merchant, payments []models.Payment, stats *merchantStats) {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Transactions")
	if err != nil {
		utils.LogError("Failed to create Excel sheet: %v", err)
		utils.RespondError(c, utils.NewInternalError())
		return
	}

	titleRow := sheet.AddRow()
	titleRow.AddCell().SetString(fmt.Sprintf("%s - Transactions for %s", utils.AppName, merchant.Name))
	sheet.AddRow() // spacing

	headerRow := sheet.AddRow()
	for _, h := range []string{"Payment ID", "Order ID", "Amount", "Currency", "Method", "Status", "Created At"} {
		cell := headerRow.AddCell()
		cell.SetString(h)
		style := xlsx.NewStyle()
		font := xlsx.DefaultFont()
		font.Bold = true
		style.Font = *font
		cell.SetStyle(style)
	}

	for _, payment := range payments {
		row := sheet.AddRow()
		row.AddCell().SetString(payment.ID)
		row.AddCell().SetString(payment.OrderID)
		row.AddCell().SetInt64(payment.Amount)
		row.AddCell().SetString(payment.Currency)
		row.AddCell().SetString(payment.Method)
		row.AddCell().SetString(payment.Status)
		row.AddCell().SetString(payment.CreatedAt.Format("2006-01-02 15:04"))
	}

	sheet.AddRow() // spacing
	summaryRow := sheet.AddRow()
	summaryRow.AddCell().SetString("Summary")

	summaryData := [][]string{
		{"Total Transactions", fmt.Sprintf("%d", stats.TotalTransactions)},
		{"Total Amount (successful)", fmt.Sprintf("%d", stats.TotalAmount)},
		{"Success Rate", fmt.Sprintf("%d%%", stats.SuccessRate)},
	}
	for _, data := range summaryData {
		row := sheet.AddRow()
		row.AddCell().SetString(data[0])
		row.AddCell().SetString(data[1])
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=transactions_%s.xlsx", time.Now().Format("2006-01-02")))
	if err := file.Write(c.Writer); err != nil {
		utils.LogError("Failed to write Excel file: %v", err)
	}
}

func writeTransactionsPDF(c *gin.Context, merchant *models.Merchant, payments []models.Payment, stats *merchantStats) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 20)
	pdf.Cell(0, 12, fmt.Sprintf("%s - Transactions", utils.AppName))
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, "Merchant: "+merchant.Name)
	pdf.Ln(6)
	pdf.Cell(0, 8, "Generated: "+time.Now().Format("2006-01-02 15:04"))
	pdf.Ln(10)

	headers := []string{"Payment ID", "Order ID", "Amount", "Currency", "Method", "Status", "Created"}
	colWidths := []float64{55, 55, 25, 22, 20, 28, 40}
	pdf.SetFont("Arial", "B", 11)
	for i, h := range headers {
		pdf.SetFillColor(200, 200, 200)
		pdf.CellFormat(colWidths[i], 9, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	fill := false
	for _, payment := range payments {
		pdf.SetFillColor(245, 245, 245)
		if fill {
			pdf.SetFillColor(230, 240, 255)
		}
		fill = !fill
		pdf.CellFormat(colWidths[0], 8, payment.ID, "1", 0, "L", fill, 0, "")
		pdf.CellFormat(colWidths[1], 8, payment.OrderID, "1", 0, "L", fill, 0, "")
		pdf.CellFormat(colWidths[2], 8, fmt.Sprintf("%d", payment.Amount), "1", 0, "R", fill, 0, "")
		pdf.CellFormat(colWidths[3], 8, payment.Currency, "1", 0, "C", fill, 0, "")
		pdf.CellFormat(colWidths[4], 8, payment.Method, "1", 0, "C", fill, 0, "")
		pdf.CellFormat(colWidths[5], 8, payment.Status, "1", 0, "C", fill, 0, "")
		pdf.CellFormat(colWidths[6], 8, payment.CreatedAt.Format("2006-01-02 15:04"), "1", 0, "C", fill, 0, "")
		pdf.Ln(-1)
	}

	pdf.Ln(8)
	pdf.SetFont("Arial", "B", 13)
	pdf.SetFillColor(220, 230, 250)
	pdf.CellFormat(70, 10, "Summary", "1", 0, "C", true, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(50, 8, "Total Transactions", "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, fmt.Sprintf("%d", stats.TotalTransactions), "1", 0, "R", false, 0, "")
	pdf.Ln(-1)
	pdf.CellFormat(50, 8, "Total Amount", "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, fmt.Sprintf("%d", stats.TotalAmount), "1", 0, "R", false, 0, "")
	pdf.Ln(-1)
	pdf.CellFormat(50, 8, "Success Rate", "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, fmt.Sprintf("%d%%", stats.SuccessRate), "1", 0, "R", false, 0, "")
	pdf.Ln(-1)

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=transactions_%s.pdf", time.Now().Format("2006-01-02")))
	if err := pdf.Output(c.Writer); err != nil {
		utils.LogError("Failed to write PDF file: %v", err)
	}
}

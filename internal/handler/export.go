package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"github.com/DeniseL168/FinanceApp/internal/middleware"
	"github.com/DeniseL168/FinanceApp/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler streams the authenticated user's transactions as a
// downloadable file.
type ExportHandler struct {
	Transactions TransactionStore
}

func NewExportHandler(txs TransactionStore) *ExportHandler {
	return &ExportHandler{Transactions: txs}
}

var exportHeaders = []string{"Type", "Category", "Amount", "Description", "Date"}

// CSV exports all transactions as a CSV attachment.
func (h *ExportHandler) CSV(c *gin.Context) {
	userID := middleware.UserID(c)

	txs, err := h.Transactions.ListByUser(c.Request.Context(), userID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"transactions_%s.csv\"",
		time.Now().Format("20060102")))

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write(exportHeaders)
	for _, tx := range txs {
		writer.Write([]string{tx.Type, tx.Category, tx.Amount, tx.Description, tx.Date})
	}
}

// XLSX exports all transactions as an Excel workbook.
func (h *ExportHandler) XLSX(c *gin.Context) {
	userID := middleware.UserID(c)

	txs, err := h.Transactions.ListByUser(c.Request.Context(), userID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	f := excelize.NewFile()
	sheetName := "Transactions"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to create sheet")
		return
	}
	f.SetActiveSheet(index)

	for i, header := range exportHeaders {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
	}

	for idx, tx := range txs {
		row := idx + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), tx.Type)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), tx.Category)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), tx.Amount)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), tx.Description)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), tx.Date)
	}

	f.SetColWidth(sheetName, "A", "A", 10)
	f.SetColWidth(sheetName, "B", "B", 15)
	f.SetColWidth(sheetName, "C", "C", 12)
	f.SetColWidth(sheetName, "D", "D", 30)
	f.SetColWidth(sheetName, "E", "E", 12)

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"transactions_%s.xlsx\"",
		time.Now().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		util.Error(c, http.StatusInternalServerError, "Export failed")
	}
}

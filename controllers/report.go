// controllers/report.go
package controllers

import (
	"fmt"
	"net/http"
	"sort"
	"time"

	"clinicpro-backend/models"
	"clinicpro-backend/services"
	"clinicpro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

type ReportController struct {
	Clinic *services.ClinicService
}

type dailySales struct {
	Date         string  `json:"date"`
	Transactions int     `json:"transactions"`
	Revenue      float64 `json:"revenue"`
}

type itemSales struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

// reportWindow parses optional from/to query params (YYYY-MM-DD). Defaults
// to the last 30 days.
func reportWindow(c *gin.Context) (time.Time, time.Time, error) {
	now := time.Now()
	from := utils.BeginningOfDay(now.AddDate(0, 0, -30))
	to := now

	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return from, to, fmt.Errorf("invalid 'from' date: %s", raw)
		}
		from = parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return from, to, fmt.Errorf("invalid 'to' date: %s", raw)
		}
		// Inclusive end of day.
		to = parsed.AddDate(0, 0, 1).Add(-time.Second)
	}
	return from, to, nil
}

func (rc *ReportController) salesInWindow(from, to time.Time) []models.Transaction {
	matched := []models.Transaction{}
	for _, t := range rc.Clinic.Snapshot().Transactions {
		if t.CreatedAt.Before(from) || t.CreatedAt.After(to) {
			continue
		}
		matched = append(matched, t)
	}
	return matched
}

// GetSalesReport returns per-day revenue totals plus a payment-method
// breakdown for the requested window.
func (rc *ReportController) GetSalesReport(c *gin.Context) {
	from, to, err := reportWindow(c)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	byDay := map[string]*dailySales{}
	byMethod := map[string]decimal.Decimal{}
	byItem := map[string]*itemSales{}
	total := decimal.Zero

	for _, t := range rc.salesInWindow(from, to) {
		amount := decimal.NewFromFloat(t.TotalAmount)
		total = total.Add(amount)
		byMethod[t.PaymentMethod] = byMethod[t.PaymentMethod].Add(amount)

		day := t.CreatedAt.Format("2006-01-02")
		entry, ok := byDay[day]
		if !ok {
			entry = &dailySales{Date: day}
			byDay[day] = entry
		}
		entry.Transactions++
		entry.Revenue = decimal.NewFromFloat(entry.Revenue).Add(amount).Round(2).InexactFloat64()

		for _, item := range t.Items {
			agg, ok := byItem[item.Name]
			if !ok {
				agg = &itemSales{Name: item.Name}
				byItem[item.Name] = agg
			}
			agg.Quantity += item.Quantity
			lineTotal := decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(item.Quantity)))
			agg.Revenue = decimal.NewFromFloat(agg.Revenue).Add(lineTotal).Round(2).InexactFloat64()
		}
	}

	days := make([]dailySales, 0, len(byDay))
	for _, entry := range byDay {
		days = append(days, *entry)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })

	methods := gin.H{}
	for method, amount := range byMethod {
		methods[method] = amount.Round(2).InexactFloat64()
	}

	topItems := make([]itemSales, 0, len(byItem))
	for _, agg := range byItem {
		topItems = append(topItems, *agg)
	}
	sort.Slice(topItems, func(i, j int) bool { return topItems[i].Revenue > topItems[j].Revenue })
	if len(topItems) > 10 {
		topItems = topItems[:10]
	}

	c.JSON(http.StatusOK, gin.H{
		"from":            from.Format("2006-01-02"),
		"to":              to.Format("2006-01-02"),
		"totalRevenue":    total.Round(2).InexactFloat64(),
		"daily":           days,
		"byPaymentMethod": methods,
		"topItems":        topItems,
	})
}

// ExportSalesReport streams the window's transactions as an Excel workbook.
func (rc *ReportController) ExportSalesReport(c *gin.Context) {
	from, to, err := reportWindow(c)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			logrus.WithError(err).Warn("closing report workbook")
		}
	}()

	sheet := "Sales"
	index, err := f.NewSheet(sheet)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to build report")
		return
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"Date", "Customer ID", "Items", "Payment Method", "Total"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	row := 2
	total := decimal.Zero
	for _, t := range rc.salesInWindow(from, to) {
		itemSummary := ""
		for i, item := range t.Items {
			if i > 0 {
				itemSummary += ", "
			}
			itemSummary += fmt.Sprintf("%s x%d", item.Name, item.Quantity)
		}
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), t.CreatedAt.Format("2006-01-02 15:04"))
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), t.CustomerID.String())
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), itemSummary)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), t.PaymentMethod)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), t.TotalAmount)
		total = total.Add(decimal.NewFromFloat(t.TotalAmount))
		row++
	}
	f.SetCellValue(sheet, fmt.Sprintf("D%d", row), "Total")
	f.SetCellValue(sheet, fmt.Sprintf("E%d", row), total.Round(2).InexactFloat64())

	filename := fmt.Sprintf("sales_%s_%s.xlsx", from.Format("20060102"), to.Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		logrus.WithError(err).Error("writing report workbook")
	}
}

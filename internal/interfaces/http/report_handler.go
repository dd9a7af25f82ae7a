package http

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/primabarber/barberstock-api/internal/application/dto"
	"github.com/primabarber/barberstock-api/internal/application/report"
	"github.com/primabarber/barberstock-api/internal/domain"
)

const queryDateLayout = "2006-01-02"

// LedgerPDFGenerator renders a stock ledger report as PDF bytes.
type LedgerPDFGenerator interface {
	GenerateLedgerPDF(ctx context.Context, r *report.Report, exportedAt time.Time) ([]byte, error)
}

// ReportHandler handles stock ledger report requests (protected).
type ReportHandler struct {
	ledgerUC *report.LedgerUseCase
	pdfGen   LedgerPDFGenerator
}

// NewReportHandler builds the handler.
func NewReportHandler(ledgerUC *report.LedgerUseCase, pdfGen LedgerPDFGenerator) *ReportHandler {
	return &ReportHandler{ledgerUC: ledgerUC, pdfGen: pdfGen}
}

// StockLedger godoc
// @Summary      Stock ledger report
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        start_date  query  string  true   "Window start (2006-01-02)"
// @Param        end_date    query  string  true   "Window end (2006-01-02)"
// @Param        outlet      query  string  false  "Outlet name"
// @Param        category    query  string  false  "Category name"
// @Param        product     query  string  false  "Product name substring"
// @Success      200  {object}  report.Report
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/reports/stock-ledger [get]
func (h *ReportHandler) StockLedger(c *fiber.Ctx) error {
	rep, err := h.buildReport(c)
	if err != nil {
		return reportError(c, err)
	}
	return c.JSON(rep)
}

// ExportCSV godoc
// @Summary      Stock ledger report as CSV
// @Tags         reports
// @Security     Bearer
// @Produce      text/csv
// @Router       /api/reports/stock-ledger/export/csv [get]
func (h *ReportHandler) ExportCSV(c *fiber.Ctx) error {
	rep, err := h.buildReport(c)
	if err != nil {
		return reportError(c, err)
	}
	body := report.ExportCSV(rep, time.Now())
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, exportFilename(rep, "csv"))
	return c.Send(body)
}

// ExportXLSX godoc
// @Summary      Stock ledger report as XLSX
// @Tags         reports
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Router       /api/reports/stock-ledger/export/xlsx [get]
func (h *ReportHandler) ExportXLSX(c *fiber.Ctx) error {
	rep, err := h.buildReport(c)
	if err != nil {
		return reportError(c, err)
	}
	body, err := report.ExportXLSX(rep, time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, exportFilename(rep, "xlsx"))
	return c.Send(body)
}

// ExportPDF godoc
// @Summary      Stock ledger report as PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Router       /api/reports/stock-ledger/export/pdf [get]
func (h *ReportHandler) ExportPDF(c *fiber.Ctx) error {
	rep, err := h.buildReport(c)
	if err != nil {
		return reportError(c, err)
	}
	body, err := h.pdfGen.GenerateLedgerPDF(c.Context(), rep, time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, exportFilename(rep, "pdf"))
	return c.Send(body)
}

// Validation sentinels local to the report endpoints; reportError maps them.
var (
	errBadQuery = errors.New("invalid query parameters")
	errBadDate  = errors.New("dates must be formatted 2006-01-02")
)

// buildReport parses the query and runs the engine. Returned errors are mapped
// to HTTP responses by reportError.
func (h *ReportHandler) buildReport(c *fiber.Ctx) (*report.Report, error) {
	var q dto.StockLedgerQuery
	if err := c.QueryParser(&q); err != nil {
		return nil, errBadQuery
	}

	start, err := time.Parse(queryDateLayout, q.StartDate)
	if err != nil {
		return nil, errBadDate
	}
	end, err := time.Parse(queryDateLayout, q.EndDate)
	if err != nil {
		return nil, errBadDate
	}

	filter := report.Filter{
		StartDate: start,
		// End of day so the whole end date is inside the window.
		EndDate:             end.Add(24*time.Hour - time.Nanosecond),
		OutletName:          q.OutletName,
		CategoryName:        q.CategoryName,
		ProductNameContains: q.ProductName,
	}
	return h.ledgerUC.BuildReport(c.Context(), filter)
}

// reportError maps report engine errors to HTTP responses. A failing upstream
// source is a gateway problem, never an empty report.
func reportError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, errBadQuery):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: errBadQuery.Error()})
	case errors.Is(err, errBadDate):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: errBadDate.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "start_date must not be after end_date"})
	case domain.IsDataSourceError(err):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "DATA_SOURCE", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

func exportFilename(rep *report.Report, ext string) string {
	return fmt.Sprintf(`attachment; filename="laporan-stok-%s-%s.%s"`,
		rep.Filter.StartDate.Format("20060102"),
		rep.Filter.EndDate.Format("20060102"),
		ext)
}

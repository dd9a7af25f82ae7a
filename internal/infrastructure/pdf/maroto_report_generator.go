// Package pdf renders the stock ledger report as a printable PDF.
//
// A4 page layout:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: LAPORAN PERGERAKAN STOK │ Periode + Outlet          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLE: Group | Product | Outlet | Awal..Sisa | Status      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALS ROW                                                  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/primabarber/barberstock-api/internal/application/report"
)

var (
	colorPrimary = &props.Color{Red: 20, Green: 40, Blue: 80}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoReportGenerator renders stock ledger reports with Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator builds the generator.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateLedgerPDF renders the report and returns the PDF bytes.
func (g *MarotoReportGenerator) GenerateLedgerPDF(
	_ context.Context,
	r *report.Report,
	exportedAt time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("Laporan Pergerakan Stok", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(r, exportedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, dataRow := range tableRows(r.Rows) {
		m.AddRows(dataRow)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(r.Totals))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: report title on the left, period/outlet/export date on the right.
func headerRow(r *report.Report, exportedAt time.Time) core.Row {
	outlet := r.Filter.OutletName
	if outlet == "" {
		outlet = "Semua Outlet"
	}
	period := fmt.Sprintf("Periode: %s s/d %s",
		r.Filter.StartDate.Format("02/01/2006"),
		r.Filter.EndDate.Format("02/01/2006"))

	return row.New(18).Add(
		col.New(7).Add(
			text.New("LAPORAN PERGERAKAN STOK", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Outlet: "+outlet, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(period, props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New("Tanggal Export: "+exportedAt.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: the ten ledger columns.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 7, Align: a, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Group Produk", 2, align.Left),
		h("Product", 2, align.Left),
		h("Outlet", 2, align.Left),
		h("Awal", 1, align.Right),
		h("Masuk", 1, align.Right),
		h("Kembali", 1, align.Right),
		h("Jual", 1, align.Right),
		h("Keluar", 1, align.Right),
		h("Sisa", 1, align.Right),
	)
}

// tableRows: one row per reconciled (product, outlet) pair.
func tableRows(rows []report.Row) []core.Row {
	num := func(v int64) core.Component {
		return text.New(strconv.FormatInt(v, 10), props.Text{
			Size: 7, Align: align.Right, Top: 1, Right: 1,
		})
	}
	str := func(s string) core.Component {
		return text.New(s, props.Text{Size: 7, Align: align.Left, Top: 1, Left: 1})
	}

	result := make([]core.Row, 0, len(rows))
	for _, r := range rows {
		result = append(result, row.New(6).Add(
			col.New(2).Add(str(r.CategoryName)),
			col.New(2).Add(str(r.ProductName)),
			col.New(2).Add(str(r.OutletName)),
			col.New(1).Add(num(r.Opening)),
			col.New(1).Add(num(r.StockIn)),
			col.New(1).Add(num(r.Returned)),
			col.New(1).Add(num(r.Sold)),
			col.New(1).Add(num(r.StockOut)),
			col.New(1).Add(num(r.Closing)),
		))
	}
	return result
}

// totalsRow: column-wise sums, bold.
func totalsRow(t report.Totals) core.Row {
	num := func(v int64) core.Component {
		return text.New(strconv.FormatInt(v, 10), props.Text{
			Style: fontstyle.Bold, Size: 7, Align: align.Right, Top: 1, Right: 1,
		})
	}
	return row.New(8).Add(
		col.New(2).Add(text.New("TOTAL", props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1, Left: 1,
		})),
		col.New(2),
		col.New(2),
		col.New(1).Add(num(t.Opening)),
		col.New(1).Add(num(t.StockIn)),
		col.New(1).Add(num(t.Returned)),
		col.New(1).Add(num(t.Sold)),
		col.New(1).Add(num(t.StockOut)),
		col.New(1).Add(num(t.Closing)),
	)
}

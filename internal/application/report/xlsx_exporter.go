package report

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

const xlsxSheet = "Laporan Stok"

// ExportXLSX renders the report as a single-sheet XLSX workbook mirroring the
// CSV layout: caption block, header row, data rows, totals row.
func ExportXLSX(r *Report, exportedAt time.Time) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", xlsxSheet)

	outlet := r.Filter.OutletName
	if outlet == "" {
		outlet = csvAllOutlet
	}

	setCell := func(cell string, value interface{}) {
		// Cell references are generated below; SetCellValue only fails on a
		// malformed reference.
		_ = f.SetCellValue(xlsxSheet, cell, value)
	}

	setCell("A1", csvTitle)
	setCell("A2", fmt.Sprintf("Periode: %s s/d %s",
		r.Filter.StartDate.Format(csvDateLayout),
		r.Filter.EndDate.Format(csvDateLayout)))
	setCell("A3", "Outlet: "+outlet)
	setCell("A4", "Tanggal Export: "+exportedAt.Format(csvDateLayout))

	headers := []string{"Group Produk", "Product", "Outlet", "Awal", "Masuk", "Pengembalian", "Penjualan", "Keluar", "Sisa", "Status"}
	headerRow := 6
	for i, h := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		setCell(fmt.Sprintf("%s%d", col, headerRow), h)
	}

	for i, row := range r.Rows {
		n := headerRow + 1 + i
		setCell(fmt.Sprintf("A%d", n), row.CategoryName)
		setCell(fmt.Sprintf("B%d", n), row.ProductName)
		setCell(fmt.Sprintf("C%d", n), row.OutletName)
		setCell(fmt.Sprintf("D%d", n), row.Opening)
		setCell(fmt.Sprintf("E%d", n), row.StockIn)
		setCell(fmt.Sprintf("F%d", n), row.Returned)
		setCell(fmt.Sprintf("G%d", n), row.Sold)
		setCell(fmt.Sprintf("H%d", n), row.StockOut)
		setCell(fmt.Sprintf("I%d", n), row.Closing)
		setCell(fmt.Sprintf("J%d", n), row.Status)
	}

	totalRow := headerRow + 1 + len(r.Rows)
	t := r.Totals
	setCell(fmt.Sprintf("A%d", totalRow), "TOTAL")
	setCell(fmt.Sprintf("D%d", totalRow), t.Opening)
	setCell(fmt.Sprintf("E%d", totalRow), t.StockIn)
	setCell(fmt.Sprintf("F%d", totalRow), t.Returned)
	setCell(fmt.Sprintf("G%d", totalRow), t.Sold)
	setCell(fmt.Sprintf("H%d", totalRow), t.StockOut)
	setCell(fmt.Sprintf("I%d", totalRow), t.Closing)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

package report

import (
	"fmt"
	"strings"
	"time"
)

// CSV layout constants. The export is a persisted artifact users re-open in
// other tools, so the layout is frozen: caption block, blank line, header,
// quoted string fields, unquoted numeric fields, TOTAL separator, totals row.
const (
	csvTitle      = "LAPORAN PERGERAKAN STOK"
	csvHeader     = "Group Produk,Product,Outlet,Awal,Masuk,Pengembalian,Penjualan,Keluar,Sisa,Status"
	csvAllOutlet  = "Semua Outlet"
	csvDateLayout = "02/01/2006"
)

// ExportCSV renders the report in the fixed ledger CSV layout. exportedAt is
// passed in by the caller so the output stays reproducible.
func ExportCSV(r *Report, exportedAt time.Time) []byte {
	var b strings.Builder

	outlet := r.Filter.OutletName
	if outlet == "" {
		outlet = csvAllOutlet
	}

	b.WriteString(csvTitle + "\n")
	fmt.Fprintf(&b, "Periode: %s s/d %s\n",
		r.Filter.StartDate.Format(csvDateLayout),
		r.Filter.EndDate.Format(csvDateLayout))
	fmt.Fprintf(&b, "Outlet: %s\n", outlet)
	fmt.Fprintf(&b, "Tanggal Export: %s\n", exportedAt.Format(csvDateLayout))
	b.WriteString("\n")

	b.WriteString(csvHeader + "\n")
	for _, row := range r.Rows {
		fmt.Fprintf(&b, "%s,%s,%s,%d,%d,%d,%d,%d,%d,%s\n",
			quote(row.CategoryName), quote(row.ProductName), quote(row.OutletName),
			row.Opening, row.StockIn, row.Returned, row.Sold, row.StockOut, row.Closing,
			quote(row.Status))
	}

	b.WriteString("TOTAL,,,,,,,,,\n")
	t := r.Totals
	fmt.Fprintf(&b, "\"\",\"\",\"\",%d,%d,%d,%d,%d,%d,\"\"\n",
		t.Opening, t.StockIn, t.Returned, t.Sold, t.StockOut, t.Closing)

	return []byte(b.String())
}

// quote wraps a string field in double quotes, doubling embedded quotes.
func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

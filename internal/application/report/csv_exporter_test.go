package report_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/primabarber/barberstock-api/internal/application/report"
)

func TestExportCSV_Layout(t *testing.T) {
	r := &report.Report{
		Filter: report.Filter{
			StartDate:  time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
			EndDate:    time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
			OutletName: "Outlet Kemang",
		},
		Rows: []report.Row{
			{
				CategoryName: "Styling", ProductName: "Pomade Heavy", OutletName: "Outlet Kemang",
				Opening: 65, StockIn: 20, Returned: 0, Sold: 30, StockOut: 5, Closing: 50,
				Status: "NORMAL",
			},
			{
				CategoryName: "Tools", ProductName: "Razor Blades", OutletName: "Outlet Kemang",
				Opening: 10, StockIn: 0, Returned: 1, Sold: 4, StockOut: 2, Closing: 5,
				Status: "LOW_STOCK",
			},
		},
		Totals: report.Totals{Opening: 75, StockIn: 20, Returned: 1, Sold: 34, StockOut: 7, Closing: 55},
	}

	exportedAt := time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC)
	got := string(report.ExportCSV(r, exportedAt))

	want := strings.Join([]string{
		"LAPORAN PERGERAKAN STOK",
		"Periode: 01/08/2026 s/d 31/08/2026",
		"Outlet: Outlet Kemang",
		"Tanggal Export: 01/09/2026",
		"",
		"Group Produk,Product,Outlet,Awal,Masuk,Pengembalian,Penjualan,Keluar,Sisa,Status",
		`"Styling","Pomade Heavy","Outlet Kemang",65,20,0,30,5,50,"NORMAL"`,
		`"Tools","Razor Blades","Outlet Kemang",10,0,1,4,2,5,"LOW_STOCK"`,
		"TOTAL,,,,,,,,,",
		`"","","",75,20,1,34,7,55,""`,
		"",
	}, "\n")

	assert.Equal(t, want, got)
}

func TestExportCSV_EmptyOutletFilterShowsAllOutlets(t *testing.T) {
	r := &report.Report{
		Filter: report.Filter{
			StartDate: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
		},
	}

	got := string(report.ExportCSV(r, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)))
	assert.Contains(t, got, "Outlet: Semua Outlet\n")
}

func TestExportCSV_QuotesDoubledInStringFields(t *testing.T) {
	r := &report.Report{
		Filter: report.Filter{
			StartDate: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
		},
		Rows: []report.Row{
			{CategoryName: "Care", ProductName: `Tonic "Premium"`, OutletName: "Outlet Tebet", Closing: 3, Status: "LOW_STOCK"},
		},
	}

	got := string(report.ExportCSV(r, time.Now()))
	assert.Contains(t, got, `"Tonic ""Premium"""`)
}

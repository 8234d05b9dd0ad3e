//go:build unit

package export_test

import (
	"bytes"
	"testing"

	"market-admin/internal/infra/export"
	"market-admin/internal/usecase/tableview"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestXLSX(t *testing.T) {
	table := tableview.Table{
		Columns: []tableview.Header{{Key: "id", Title: "Booking"}, {Key: "payment_status", Title: "Payment"}},
		Rows: []tableview.Row{
			{Cells: []tableview.Cell{{Text: "#1"}, {Badge: &tableview.Badge{Label: "Pending"}}}},
			{Cells: []tableview.Cell{{Text: "#2", Link: "https://example.com/2"}, {Text: "Completed"}}},
		},
	}

	data, err := export.XLSX("Bookings", table)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Bookings")
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Booking", "Payment"},
		{"#1", "Pending"},
		{"#2", "Completed"},
	}, rows)

	linked, target, err := f.GetCellHyperLink("Bookings", "A3")
	require.NoError(t, err)
	assert.True(t, linked)
	assert.Equal(t, "https://example.com/2", target)
}

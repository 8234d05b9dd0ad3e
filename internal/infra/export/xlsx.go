// Package export renders table views as downloadable spreadsheets.
package export

import (
	"bytes"

	"github.com/xuri/excelize/v2"

	"market-admin/internal/pkg/errs"
	"market-admin/internal/usecase/tableview"
)

const (
	XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	defaultSheet    = "Sheet1"
)

// XLSX writes the header row and every table row into a single named sheet.
// Cells are flattened with Cell.Plain; links are kept as hyperlinks.
func XLSX(sheet string, table tableview.Table) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if sheet == "" {
		sheet = defaultSheet
	}
	if sheet != defaultSheet {
		if err := f.SetSheetName(defaultSheet, sheet); err != nil {
			return nil, errs.Wrap(err, "rename sheet")
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, errs.Wrap(err, "create header style")
	}

	for col, header := range table.Columns {
		ref, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, errs.Wrap(err, "header cell")
		}
		if err := f.SetCellStr(sheet, ref, header.Title); err != nil {
			return nil, errs.Wrap(err, "write header")
		}
		if err := f.SetCellStyle(sheet, ref, ref, headerStyle); err != nil {
			return nil, errs.Wrap(err, "style header")
		}
	}

	for r, row := range table.Rows {
		for c, cell := range row.Cells {
			ref, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return nil, errs.Wrap(err, "row cell")
			}
			if err := f.SetCellStr(sheet, ref, cell.Plain()); err != nil {
				return nil, errs.Wrapf(err, "write row %d", r)
			}
			if cell.Link != "" {
				if err := f.SetCellHyperLink(sheet, ref, cell.Link, "External"); err != nil {
					return nil, errs.Wrapf(err, "link row %d", r)
				}
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, errs.Wrap(err, "write workbook")
	}
	return buf.Bytes(), nil
}

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"market-admin/internal/pkg/errs"
	"market-admin/internal/usecase/commands"
	"market-admin/internal/usecase/tableview"

	"github.com/urfave/cli/v3"
)

func bookingID(cmd *cli.Command) (int64, error) {
	raw := cmd.Args().First()
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errs.Newf("booking id required, got %q", raw)
	}
	return id, nil
}

func stdout(cmd *cli.Command) io.Writer { return cmd.Root().Writer }

func stderr(cmd *cli.Command) io.Writer { return cmd.Root().ErrWriter }

func printJSON(cmd *cli.Command, v any) error {
	enc := json.NewEncoder(stdout(cmd))
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printTable(cmd *cli.Command, table *tableview.Table) error {
	if cmd.Bool("json") {
		return printJSON(cmd, table)
	}

	w := tabwriter.NewWriter(stdout(cmd), 0, 4, 2, ' ', 0)
	titles := make([]string, len(table.Columns))
	for i, col := range table.Columns {
		titles[i] = strings.ToUpper(col.Title)
		if col.Sorted != "" {
			titles[i] += " (" + col.Sorted + ")"
		}
	}
	fmt.Fprintln(w, strings.Join(titles, "\t"))
	for _, row := range table.Rows {
		cells := make([]string, len(row.Cells))
		for i, cell := range row.Cells {
			cells[i] = cell.Plain()
		}
		fmt.Fprintln(w, strings.Join(cells, "\t"))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	p := table.Pagination
	fmt.Fprintf(stderr(cmd), "page %d of %d, %d rows total\n", p.PageIndex+1, max(table.PageCount, 1), p.TotalRows)
	return nil
}

func printTransition(cmd *cli.Command, res *commands.TransitionResult) error {
	if cmd.Bool("json") {
		return printJSON(cmd, res)
	}
	fmt.Fprintln(stdout(cmd), res.Notice)
	if res.View != nil {
		b := res.View.Booking
		fmt.Fprintf(stdout(cmd), "delivery=%s payment=%s\n", b.DeliveryStatus, b.PaymentStatus)
	}
	return nil
}

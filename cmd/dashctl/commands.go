package main

import (
	"context"
	"fmt"
	"os"

	"market-admin/internal/domain/booking"
	"market-admin/internal/infra/export"
	"market-admin/internal/pkg/errs"
	"market-admin/internal/usecase/commands"
	"market-admin/internal/usecase/queries"
	"market-admin/internal/usecase/readmodel"
	"market-admin/internal/usecase/tableview"

	"github.com/urfave/cli/v3"
)

func tableFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{Name: "page", Usage: "zero-based page index"},
		&cli.IntFlag{Name: "page-size", Value: tableview.DefaultPageSize},
		&cli.StringFlag{Name: "sort", Usage: "column key"},
		&cli.BoolFlag{Name: "desc"},
	}
}

func tableQuery(cmd *cli.Command) queries.TableQuery {
	return queries.TableQuery{
		PageIndex: int(cmd.Int("page")),
		PageSize:  int(cmd.Int("page-size")),
		Sort:      tableview.Sort{Key: cmd.String("sort"), Desc: cmd.Bool("desc")},
		Search:    cmd.String("search"),
		Status:    cmd.String("status"),
	}
}

func loginCommand() *cli.Command {
	return &cli.Command{
		Name:  "login",
		Usage: "Log in and print the issued token",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "email", Required: true},
			&cli.StringFlag{Name: "password", Required: true, Sources: cli.EnvVars("DASHCTL_PASSWORD")},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			d := newDeps(cmd)
			res, err := commands.NewAuthCommands(d.auth).Login(ctx, readmodel.Credentials{
				Email:    cmd.String("email"),
				Password: cmd.String("password"),
			})
			if err != nil {
				return err
			}
			if cmd.Bool("json") {
				return printJSON(cmd, res.Session)
			}
			fmt.Fprintln(stdout(cmd), res.Session.Token)
			if res.Session.User != nil && res.Session.User.MustChangePassword() {
				fmt.Fprintln(stderr(cmd), "password change required before using the dashboard")
			}
			return nil
		},
	}
}

func bookingsCommand() *cli.Command {
	listFlags := append(tableFlags(),
		&cli.StringFlag{Name: "search"},
		&cli.StringFlag{Name: "status"},
	)
	return &cli.Command{
		Name:  "bookings",
		Usage: "Booking table and status changes",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "Print one page of the bookings table",
				Flags: listFlags,
				Action: func(ctx context.Context, cmd *cli.Command) error {
					d := newDeps(cmd)
					table, err := queries.NewBookingQueries(d.bookings, d.clock).BookingTable(withToken(ctx, cmd), tableQuery(cmd))
					if err != nil {
						return err
					}
					return printTable(cmd, table)
				},
			},
			{
				Name:  "export",
				Usage: "Write one page of the bookings table as XLSX",
				Flags: append(listFlags, &cli.StringFlag{Name: "out", Value: "bookings.xlsx"}),
				Action: func(ctx context.Context, cmd *cli.Command) error {
					d := newDeps(cmd)
					table, err := queries.NewBookingQueries(d.bookings, d.clock).BookingTable(withToken(ctx, cmd), tableQuery(cmd))
					if err != nil {
						return err
					}
					data, err := export.XLSX("Bookings", *table)
					if err != nil {
						return err
					}
					if err := os.WriteFile(cmd.String("out"), data, 0o644); err != nil {
						return errs.Wrap(err, "write export")
					}
					fmt.Fprintf(stderr(cmd), "wrote %d rows to %s\n", len(table.Rows), cmd.String("out"))
					return nil
				},
			},
			{
				Name:      "set-status",
				Usage:     "Move a booking along the delivery or payment axis",
				ArgsUsage: "<id>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "axis", Value: "delivery", Usage: "delivery or payment"},
					&cli.StringFlag{Name: "to", Required: true, Usage: "target status"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					id, err := bookingID(cmd)
					if err != nil {
						return err
					}
					axis, err := parseAxis(cmd.String("axis"))
					if err != nil {
						return err
					}
					d := newDeps(cmd)
					ctx = withToken(ctx, cmd)
					lifecycle := d.lifecycle()
					if _, err := lifecycle.Load(ctx, id); err != nil {
						return err
					}
					defer lifecycle.Forget(ctx, id)
					res, err := lifecycle.Transition(ctx, id, axis, cmd.String("to"))
					if err != nil {
						return err
					}
					return printTransition(cmd, res)
				},
			},
			{
				Name:      "cancel",
				Usage:     "Cancel a booking that is still processing and unpaid",
				ArgsUsage: "<id>",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					id, err := bookingID(cmd)
					if err != nil {
						return err
					}
					d := newDeps(cmd)
					ctx = withToken(ctx, cmd)
					lifecycle := d.lifecycle()
					if _, err := lifecycle.Load(ctx, id); err != nil {
						return err
					}
					defer lifecycle.Forget(ctx, id)
					res, err := lifecycle.Cancel(ctx, id)
					if err != nil {
						return err
					}
					return printTransition(cmd, res)
				},
			},
		},
	}
}

func subscriptionsCommand() *cli.Command {
	return &cli.Command{
		Name:  "subscriptions",
		Usage: "Subscription plans and subscribers",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "Print the subscription plans table",
				Flags: tableFlags(),
				Action: func(ctx context.Context, cmd *cli.Command) error {
					d := newDeps(cmd)
					table, err := queries.NewCatalogQueries(d.subscriptions, d.locations, d.clock).SubscriptionTable(withToken(ctx, cmd), tableQuery(cmd))
					if err != nil {
						return err
					}
					return printTable(cmd, table)
				},
			},
			{
				Name:  "subscribers",
				Usage: "Print the subscribers table with active badges",
				Flags: tableFlags(),
				Action: func(ctx context.Context, cmd *cli.Command) error {
					d := newDeps(cmd)
					table, err := queries.NewCatalogQueries(d.subscriptions, d.locations, d.clock).SubscriberTable(withToken(ctx, cmd), tableQuery(cmd))
					if err != nil {
						return err
					}
					return printTable(cmd, table)
				},
			},
		},
	}
}

func countriesCommand() *cli.Command {
	return &cli.Command{
		Name:  "countries",
		Usage: "Print the countries table",
		Flags: tableFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			d := newDeps(cmd)
			table, err := queries.NewCatalogQueries(d.subscriptions, d.locations, d.clock).CountryTable(withToken(ctx, cmd), tableQuery(cmd))
			if err != nil {
				return err
			}
			return printTable(cmd, table)
		},
	}
}

func parseAxis(s string) (booking.Axis, error) {
	switch s {
	case "delivery", string(booking.AxisDelivery):
		return booking.AxisDelivery, nil
	case "payment", string(booking.AxisPayment):
		return booking.AxisPayment, nil
	}
	return "", errs.Newf("unknown axis %q", s)
}

// Command dashctl is an operator tool for the admin API built on the dashboard's packages.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

func main() {
	args := os.Args
	if len(args) == 1 {
		args = append(args, "--help")
	}

	if err := newApp().Run(context.Background(), args); err != nil {
		fmt.Fprintln(os.Stderr, "dashctl:", err)
		os.Exit(1)
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:  "dashctl",
		Usage: "Marketplace admin API from the terminal",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "api",
				Usage:   "admin API base URL",
				Value:   "https://api.africanmarkethub.ca/api/v1/admin",
				Sources: cli.EnvVars("ADMIN_API_URL"),
			},
			&cli.StringFlag{
				Name:    "token",
				Usage:   "bearer token issued by the admin API",
				Sources: cli.EnvVars("DASHCTL_TOKEN"),
			},
			&cli.DurationFlag{
				Name:    "timeout",
				Usage:   "request timeout, 0 for none",
				Sources: cli.EnvVars("API_TIMEOUT"),
			},
			&cli.BoolFlag{Name: "json", Usage: "output raw JSON"},
		},
		Commands: []*cli.Command{
			loginCommand(),
			bookingsCommand(),
			subscriptionsCommand(),
			countriesCommand(),
		},
	}
}

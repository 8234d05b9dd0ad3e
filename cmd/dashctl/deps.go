package main

import (
	"context"
	"log/slog"
	"net/http"

	"market-admin/internal/domain/session"
	"market-admin/internal/infra/adminapi"
	"market-admin/internal/infra/apiclient"
	"market-admin/internal/pkg/clock"
	"market-admin/internal/usecase/commands"

	"github.com/urfave/cli/v3"
)

// deps wires the same accessors the server uses, with an in-process cache.
type deps struct {
	clock         clock.Clock
	logger        *slog.Logger
	bookings      *adminapi.BookingsAPI
	subscriptions *adminapi.SubscriptionsAPI
	locations     *adminapi.LocationsAPI
	auth          *adminapi.AuthAPI
}

func newDeps(cmd *cli.Command) deps {
	clk := clock.NewRealClock()
	logger := slog.New(slog.NewTextHandler(cmd.Root().ErrWriter, &slog.HandlerOptions{Level: slog.LevelWarn}))
	client := apiclient.New(apiclient.Options{
		BaseURL:    cmd.String("api"),
		HTTPClient: &http.Client{Timeout: cmd.Duration("timeout")},
		Cache:      apiclient.NewMemoryCache(clk),
		Clock:      clk,
		Logger:     logger,
	})
	return deps{
		clock:         clk,
		logger:        logger,
		bookings:      adminapi.NewBookingsAPI(client),
		subscriptions: adminapi.NewSubscriptionsAPI(client),
		locations:     adminapi.NewLocationsAPI(client),
		auth:          adminapi.NewAuthAPI(client),
	}
}

func (d deps) lifecycle() commands.BookingLifecycle {
	return commands.NewBookingLifecycle(d.bookings, d.clock, d.logger)
}

// withToken attaches the --token session so the facade sends the bearer header.
func withToken(ctx context.Context, cmd *cli.Command) context.Context {
	token := cmd.String("token")
	if token == "" {
		return ctx
	}
	return session.NewContext(ctx, session.Session{Token: token})
}

// Package cli is the operator command line. Every command calls the same services as the HTTP API
// against the configured storage.
package cli

import (
	"fmt"
	"slices"

	billService "hotel/internal/domains/bill/service"
	bookingService "hotel/internal/domains/booking/service"
	guestService "hotel/internal/domains/guest/service"
	reportService "hotel/internal/domains/report/service"
	roomService "hotel/internal/domains/room/service"
	"hotel/shared/logger"

	"github.com/spf13/cobra"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

var ValidFormats = []string{FormatText, FormatJSON}

type Services struct {
	Rooms    roomService.Room
	Guests   guestService.Guest
	Bookings bookingService.Booking
	Bills    billService.Bill
	Reports  reportService.Report
}

// Loader opens the store and builds the services. It runs at most once per invocation.
type Loader func() (*Services, error)

type RootOptions struct {
	Verbose bool
	Format  string

	load     Loader
	services *Services
}

func (o *RootOptions) Services() (*Services, error) {
	if o.services != nil {
		return o.services, nil
	}

	services, err := o.load()
	if err != nil {
		return nil, fmt.Errorf("failed to open hotel data: %w", err)
	}

	o.services = services

	return services, nil
}

func NewRootCommand(load Loader) *cobra.Command {
	opts := &RootOptions{load: load}

	cmd := &cobra.Command{
		Use:           "hotelctl",
		Short:         "Hotel administration",
		Long:          "Manage rooms, guests, bookings and bills, and print occupancy, revenue and guest reports.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return usageErrorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}

			if !opts.Verbose {
				logger.Silence()
			}

			return nil
		},
	}

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageErrorf("%s", err)
	})

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log to stderr while running")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", FormatText, "output format (text|json)")

	cmd.AddCommand(NewRoomCommand(opts))
	cmd.AddCommand(NewGuestCommand(opts))
	cmd.AddCommand(NewBookingCommand(opts))
	cmd.AddCommand(NewBillCommand(opts))
	cmd.AddCommand(NewReportCommand(opts))

	return cmd
}

package cli

import (
	"fmt"
	"io"
	"strings"

	"hotel/internal/domains/booking/model/dto"
	gDto "hotel/shared/dto"

	"github.com/spf13/cobra"
)

func NewBookingCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "booking",
		Short: "Create, move and cancel bookings",
	}

	cmd.AddCommand(newBookingCreateCommand(opts))
	cmd.AddCommand(newBookingUpdateCommand(opts))
	cmd.AddCommand(newBookingCancelCommand(opts))
	cmd.AddCommand(newBookingGetCommand(opts))
	cmd.AddCommand(newBookingSearchCommand(opts, "search <term>", "Find bookings by booking id, guest id or room number", 1))
	cmd.AddCommand(newBookingSearchCommand(opts, "list", "List every booking", 0))
	cmd.AddCommand(newBookingAvailableCommand(opts))

	return cmd
}

func printBooking(w io.Writer, booking dto.BookingResponse) {
	fmt.Fprintf(w, "Booking ID:\t%s\n", booking.BookingID)
	fmt.Fprintf(w, "Guest:\t%s (%s)\n", booking.GuestName, booking.GuestID)
	fmt.Fprintf(w, "Room:\t%s\n", booking.RoomNumber)
	fmt.Fprintf(w, "Check-in:\t%s\n", booking.CheckIn)
	fmt.Fprintf(w, "Check-out:\t%s\n", booking.CheckOut)
	fmt.Fprintf(w, "Nights:\t%d\n", booking.Nights)
	fmt.Fprintf(w, "Status:\t%s\n", booking.Status)
}

func newBookingCreateCommand(opts *RootOptions) *cobra.Command {
	req := dto.CreateBookingRequest{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Book a room for a guest",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			services, err := opts.Services()
			if err != nil {
				return err
			}

			booking, err := services.Bookings.Create(cmd.Context(), req)
			if err != nil {
				return err //nolint:wrapcheck
			}

			return newPrinter(opts, cmd).print(booking, func(w io.Writer) { printBooking(w, booking) })
		},
	}

	cmd.Flags().StringVar(&req.GuestID, "guest", "", "guest id")
	cmd.Flags().StringVar(&req.RoomNumber, "room", "", "room number")
	cmd.Flags().StringVar(&req.CheckIn, "check-in", "", "first night, YYYY-MM-DD")
	cmd.Flags().StringVar(&req.CheckOut, "check-out", "", "departure day, YYYY-MM-DD")

	return cmd
}

func newBookingUpdateCommand(opts *RootOptions) *cobra.Command {
	var checkIn, checkOut string

	cmd := &cobra.Command{
		Use:   "update <booking-id>",
		Short: "Move a booking; omitted flags keep the current date",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			services, err := opts.Services()
			if err != nil {
				return err
			}

			req := dto.UpdateBookingRequest{}
			if cmd.Flags().Changed("check-in") {
				req.CheckIn = &checkIn
			}

			if cmd.Flags().Changed("check-out") {
				req.CheckOut = &checkOut
			}

			booking, err := services.Bookings.Update(cmd.Context(), args[0], req)
			if err != nil {
				return err //nolint:wrapcheck
			}

			return newPrinter(opts, cmd).print(booking, func(w io.Writer) { printBooking(w, booking) })
		},
	}

	cmd.Flags().StringVar(&checkIn, "check-in", "", "new first night, YYYY-MM-DD")
	cmd.Flags().StringVar(&checkOut, "check-out", "", "new departure day, YYYY-MM-DD")

	return cmd
}

func newBookingCancelCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <booking-id>",
		Short: "Cancel a booking for good; its bill, if any, is kept",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			services, err := opts.Services()
			if err != nil {
				return err
			}

			if err = services.Bookings.Cancel(cmd.Context(), args[0]); err != nil {
				return err //nolint:wrapcheck
			}

			return newPrinter(opts, cmd).message(fmt.Sprintf("booking %s cancelled", args[0]))
		},
	}
}

func newBookingGetCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get <booking-id>",
		Short: "Show a booking",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			services, err := opts.Services()
			if err != nil {
				return err
			}

			booking, err := services.Bookings.Get(cmd.Context(), args[0])
			if err != nil {
				return err //nolint:wrapcheck
			}

			return newPrinter(opts, cmd).print(booking, func(w io.Writer) { printBooking(w, booking) })
		},
	}
}

func newBookingSearchCommand(opts *RootOptions, use, short string, nargs int) *cobra.Command {
	query := gDto.QueryParams{}

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  exactArgs(nargs),
		RunE: func(cmd *cobra.Command, args []string) error {
			services, err := opts.Services()
			if err != nil {
				return err
			}

			if nargs > 0 {
				query.Search = args[0]
			}

			bookings, err := services.Bookings.Search(cmd.Context(), query)
			if err != nil {
				return err //nolint:wrapcheck
			}

			return newPrinter(opts, cmd).print(bookings, func(w io.Writer) {
				fmt.Fprintln(w, "BOOKING ID\tGUEST\tROOM\tCHECK-IN\tCHECK-OUT\tSTATUS")

				for _, booking := range bookings.Items {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
						booking.BookingID, booking.GuestName, booking.RoomNumber, booking.CheckIn, booking.CheckOut, booking.Status)
				}

				printPagination(w, bookings.Pagination)
			})
		},
	}

	listFlags(cmd, &query.Page, &query.Limit)

	return cmd
}

func newBookingAvailableCommand(opts *RootOptions) *cobra.Command {
	req := dto.AvailabilityRequest{}

	cmd := &cobra.Command{
		Use:   "available",
		Short: "Check whether a room is free for a stay",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			services, err := opts.Services()
			if err != nil {
				return err
			}

			availability, err := services.Bookings.Availability(cmd.Context(), req)
			if err != nil {
				return err //nolint:wrapcheck
			}

			return newPrinter(opts, cmd).print(availability, func(w io.Writer) {
				if availability.Available {
					fmt.Fprintf(w, "room %s is available from %s to %s\n", availability.RoomNumber, availability.CheckIn, availability.CheckOut)

					return
				}

				fmt.Fprintf(w, "room %s is not available from %s to %s (conflicts: %s)\n",
					availability.RoomNumber, availability.CheckIn, availability.CheckOut, strings.Join(availability.Conflicts, ", "))
			})
		},
	}

	cmd.Flags().StringVar(&req.RoomNumber, "room", "", "room number")
	cmd.Flags().StringVar(&req.CheckIn, "check-in", "", "first night, YYYY-MM-DD")
	cmd.Flags().StringVar(&req.CheckOut, "check-out", "", "departure day, YYYY-MM-DD")
	cmd.Flags().StringVar(&req.ExcludeBookingID, "exclude", "", "booking id to ignore, e.g. when moving it")

	return cmd
}

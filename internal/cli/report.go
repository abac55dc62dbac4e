package cli

import (
	"fmt"
	"io"

	"hotel/internal/domains/report/model/dto"

	"github.com/spf13/cobra"
)

func NewReportCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Occupancy, revenue and guest reports",
	}

	cmd.AddCommand(newReportOccupancyCommand(opts))
	cmd.AddCommand(newReportRevenueCommand(opts))
	cmd.AddCommand(newReportGuestsCommand(opts))

	return cmd
}

func percent(rate float64) string {
	return fmt.Sprintf("%.1f%%", rate)
}

func newReportOccupancyCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "occupancy",
		Short: "Rooms held tonight",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			services, err := opts.Services()
			if err != nil {
				return err
			}

			report, err := services.Reports.Occupancy(cmd.Context())
			if err != nil {
				return err //nolint:wrapcheck
			}

			return newPrinter(opts, cmd).print(report, func(w io.Writer) {
				fmt.Fprintf(w, "Occupancy on %s: %d of %d rooms (%s), %d available\n\n",
					report.Date, report.Occupied, report.Total, percent(report.Rate), report.Available)

				fmt.Fprintln(w, "TYPE\tOCCUPIED\tTOTAL\tRATE")

				for _, t := range report.ByType {
					fmt.Fprintf(w, "%s\t%d\t%d\t%s\n", t.Type, t.Occupied, t.Total, percent(t.Rate))
				}
			})
		},
	}
}

func newReportRevenueCommand(opts *RootOptions) *cobra.Command {
	req := dto.RevenueRequest{}

	cmd := &cobra.Command{
		Use:   "revenue",
		Short: "Money received in a date range",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			services, err := opts.Services()
			if err != nil {
				return err
			}

			report, err := services.Reports.Revenue(cmd.Context(), req)
			if err != nil {
				return err //nolint:wrapcheck
			}

			return newPrinter(opts, cmd).print(report, func(w io.Writer) {
				fmt.Fprintf(w, "Revenue %s to %s: %s from %d paid bills, %d unpaid\n\n",
					report.Start, report.End, money(report.Total), report.PaidBills, report.UnpaidBills)

				fmt.Fprintln(w, "TYPE\tREVENUE\tSHARE")

				for _, t := range report.ByType {
					fmt.Fprintf(w, "%s\t%s\t%s\n", t.Type, money(t.Revenue), percent(t.Percentage))
				}
			})
		},
	}

	cmd.Flags().StringVar(&req.Start, "start", "", "first day, YYYY-MM-DD")
	cmd.Flags().StringVar(&req.End, "end", "", "last day, YYYY-MM-DD")

	return cmd
}

func newReportGuestsCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "guests",
		Short: "Guest statistics and the most frequent guests",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			services, err := opts.Services()
			if err != nil {
				return err
			}

			report, err := services.Reports.GuestStatistics(cmd.Context())
			if err != nil {
				return err //nolint:wrapcheck
			}

			return newPrinter(opts, cmd).print(report, func(w io.Writer) {
				fmt.Fprintf(w, "Guests: %d, with bookings: %d, without: %d\n\n", report.Total, report.WithBookings, report.WithoutBookings)

				fmt.Fprintln(w, "GUEST ID\tNAME\tBOOKINGS")

				for _, guest := range report.TopGuests {
					fmt.Fprintf(w, "%s\t%s\t%d\n", guest.GuestID, guest.Name, guest.Bookings)
				}
			})
		},
	}
}

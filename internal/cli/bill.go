package cli

import (
	"fmt"
	"io"

	"hotel/internal/domains/bill/model/dto"
	gDto "hotel/shared/dto"

	"github.com/spf13/cobra"
)

func NewBillCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bill",
		Short: "Generate and settle bills",
	}

	cmd.AddCommand(newBillGenerateCommand(opts))
	cmd.AddCommand(newBillPayCommand(opts))
	cmd.AddCommand(newBillGetCommand(opts))
	cmd.AddCommand(newBillListCommand(opts))

	return cmd
}

func printBill(w io.Writer, bill dto.BillResponse) {
	fmt.Fprintf(w, "Bill ID:\t%s\n", bill.BillID)
	fmt.Fprintf(w, "Booking ID:\t%s\n", bill.BookingID)

	if details := bill.Details; details != nil {
		fmt.Fprintf(w, "Guest:\t%s (%s)\n", details.GuestName, details.GuestID)
		fmt.Fprintf(w, "Room:\t%s (%s)\n", details.RoomNumber, details.RoomType)
		fmt.Fprintf(w, "Stay:\t%s to %s, %d nights at %s\n", details.CheckIn, details.CheckOut, details.Nights, money(details.NightlyRate))
	}

	fmt.Fprintf(w, "Amount:\t%s\n", money(bill.Amount))
	fmt.Fprintf(w, "Status:\t%s\n", bill.Status)

	if !bill.PaymentDate.IsZero() {
		fmt.Fprintf(w, "Paid on:\t%s\n", bill.PaymentDate)
	}
}

func newBillGenerateCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "generate <booking-id>",
		Short: "Bill a booking; an existing bill is shown as is",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			services, err := opts.Services()
			if err != nil {
				return err
			}

			bill, err := services.Bills.Generate(cmd.Context(), dto.GenerateBillRequest{BookingID: args[0]})
			if err != nil {
				return err //nolint:wrapcheck
			}

			return newPrinter(opts, cmd).print(bill, func(w io.Writer) { printBill(w, bill) })
		},
	}
}

func newBillPayCommand(opts *RootOptions) *cobra.Command {
	req := dto.PayBillRequest{}

	cmd := &cobra.Command{
		Use:   "pay <bill-id>",
		Short: "Settle a bill in full",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			services, err := opts.Services()
			if err != nil {
				return err
			}

			bill, err := services.Bills.Pay(cmd.Context(), args[0], req)
			if err != nil {
				return err //nolint:wrapcheck
			}

			return newPrinter(opts, cmd).print(bill, func(w io.Writer) { printBill(w, bill) })
		},
	}

	cmd.Flags().Float64Var(&req.Amount, "amount", 0, "amount received, at least the amount due")

	return cmd
}

func newBillGetCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get <bill-id>",
		Short: "Show a bill",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			services, err := opts.Services()
			if err != nil {
				return err
			}

			bill, err := services.Bills.Get(cmd.Context(), args[0])
			if err != nil {
				return err //nolint:wrapcheck
			}

			return newPrinter(opts, cmd).print(bill, func(w io.Writer) { printBill(w, bill) })
		},
	}
}

func newBillListCommand(opts *RootOptions) *cobra.Command {
	query := gDto.QueryParams{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List bills",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			services, err := opts.Services()
			if err != nil {
				return err
			}

			bills, err := services.Bills.GetAll(cmd.Context(), query)
			if err != nil {
				return err //nolint:wrapcheck
			}

			return newPrinter(opts, cmd).print(bills, func(w io.Writer) {
				fmt.Fprintln(w, "BILL ID\tBOOKING ID\tAMOUNT\tSTATUS\tPAID ON")

				for _, bill := range bills.Items {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", bill.BillID, bill.BookingID, money(bill.Amount), bill.Status, bill.PaymentDate)
				}

				printPagination(w, bills.Pagination)
			})
		},
	}

	listFlags(cmd, &query.Page, &query.Limit)

	return cmd
}

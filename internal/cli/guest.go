package cli

import (
	"fmt"
	"io"

	"hotel/internal/domains/guest/model/dto"
	gDto "hotel/shared/dto"

	"github.com/spf13/cobra"
)

func NewGuestCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "guest",
		Short: "Manage guests",
	}

	cmd.AddCommand(newGuestRegisterCommand(opts))
	cmd.AddCommand(newGuestUpdateCommand(opts))
	cmd.AddCommand(newGuestGetCommand(opts))
	cmd.AddCommand(newGuestSearchCommand(opts, "search <term>", "Find guests by exact id or part of the name", 1))
	cmd.AddCommand(newGuestSearchCommand(opts, "list", "List every guest", 0))

	return cmd
}

func printGuest(w io.Writer, guest dto.GuestResponse) {
	fmt.Fprintf(w, "Guest ID:\t%s\n", guest.GuestID)
	fmt.Fprintf(w, "Name:\t%s\n", guest.Name)
	fmt.Fprintf(w, "Phone:\t%s\n", guest.Phone)
	fmt.Fprintf(w, "Email:\t%s\n", guest.Email)
	fmt.Fprintf(w, "Address:\t%s\n", guest.Address)
	fmt.Fprintf(w, "Bookings:\t%d\n", guest.Bookings)
}

func newGuestRegisterCommand(opts *RootOptions) *cobra.Command {
	req := dto.RegisterGuestRequest{}

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a guest",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			services, err := opts.Services()
			if err != nil {
				return err
			}

			guest, err := services.Guests.Register(cmd.Context(), req)
			if err != nil {
				return err //nolint:wrapcheck
			}

			return newPrinter(opts, cmd).print(guest, func(w io.Writer) { printGuest(w, guest) })
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "full name")
	cmd.Flags().StringVar(&req.Phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&req.Email, "email", "", "email address")
	cmd.Flags().StringVar(&req.Address, "address", "", "postal address")

	return cmd
}

func newGuestUpdateCommand(opts *RootOptions) *cobra.Command {
	var name, phone, email, address string

	cmd := &cobra.Command{
		Use:   "update <guest-id>",
		Short: "Change guest details; omitted flags keep the current value",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			services, err := opts.Services()
			if err != nil {
				return err
			}

			req := dto.UpdateGuestRequest{}
			if cmd.Flags().Changed("name") {
				req.Name = &name
			}

			if cmd.Flags().Changed("phone") {
				req.Phone = &phone
			}

			if cmd.Flags().Changed("email") {
				req.Email = &email
			}

			if cmd.Flags().Changed("address") {
				req.Address = &address
			}

			guest, err := services.Guests.Update(cmd.Context(), args[0], req)
			if err != nil {
				return err //nolint:wrapcheck
			}

			return newPrinter(opts, cmd).print(guest, func(w io.Writer) { printGuest(w, guest) })
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new full name")
	cmd.Flags().StringVar(&phone, "phone", "", "new phone number")
	cmd.Flags().StringVar(&email, "email", "", "new email address")
	cmd.Flags().StringVar(&address, "address", "", "new postal address")

	return cmd
}

func newGuestGetCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get <guest-id>",
		Short: "Show a guest",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			services, err := opts.Services()
			if err != nil {
				return err
			}

			guest, err := services.Guests.Get(cmd.Context(), args[0])
			if err != nil {
				return err //nolint:wrapcheck
			}

			return newPrinter(opts, cmd).print(guest, func(w io.Writer) { printGuest(w, guest) })
		},
	}
}

func newGuestSearchCommand(opts *RootOptions, use, short string, nargs int) *cobra.Command {
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

			guests, err := services.Guests.Search(cmd.Context(), query)
			if err != nil {
				return err //nolint:wrapcheck
			}

			return newPrinter(opts, cmd).print(guests, func(w io.Writer) {
				fmt.Fprintln(w, "GUEST ID\tNAME\tPHONE\tEMAIL\tBOOKINGS")

				for _, guest := range guests.Items {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n", guest.GuestID, guest.Name, guest.Phone, guest.Email, guest.Bookings)
				}

				printPagination(w, guests.Pagination)
			})
		},
	}

	listFlags(cmd, &query.Page, &query.Limit)

	return cmd
}

package cli

import (
	"fmt"
	"io"

	"hotel/internal/domains/room/model/dto"
	gDto "hotel/shared/dto"

	"github.com/spf13/cobra"
)

func NewRoomCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "room",
		Short: "Manage rooms",
	}

	cmd.AddCommand(newRoomAddCommand(opts))
	cmd.AddCommand(newRoomUpdateCommand(opts))
	cmd.AddCommand(newRoomGetCommand(opts))
	cmd.AddCommand(newRoomListCommand(opts))

	return cmd
}

func printRoom(w io.Writer, room dto.RoomResponse) {
	fmt.Fprintf(w, "Number:\t%s\n", room.Number)
	fmt.Fprintf(w, "Type:\t%s\n", room.Type)
	fmt.Fprintf(w, "Price:\t%s\n", money(room.Price))
	fmt.Fprintf(w, "Occupied:\t%s\n", yesNo(room.Occupied))
}

func newRoomAddCommand(opts *RootOptions) *cobra.Command {
	req := dto.CreateRoomRequest{}

	cmd := &cobra.Command{
		Use:   "add <number>",
		Short: "Add a room",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			services, err := opts.Services()
			if err != nil {
				return err
			}

			req.Number = args[0]

			room, err := services.Rooms.Create(cmd.Context(), req)
			if err != nil {
				return err //nolint:wrapcheck
			}

			return newPrinter(opts, cmd).print(room, func(w io.Writer) { printRoom(w, room) })
		},
	}

	cmd.Flags().StringVar(&req.Type, "type", "", "room type, e.g. Deluxe")
	cmd.Flags().Float64Var(&req.Price, "price", 0, "nightly price")

	return cmd
}

func newRoomUpdateCommand(opts *RootOptions) *cobra.Command {
	var (
		roomType string
		price    float64
	)

	cmd := &cobra.Command{
		Use:   "update <number>",
		Short: "Change a room's type or price; omitted flags keep the current value",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			services, err := opts.Services()
			if err != nil {
				return err
			}

			req := dto.UpdateRoomRequest{}
			if cmd.Flags().Changed("type") {
				req.Type = &roomType
			}

			if cmd.Flags().Changed("price") {
				req.Price = &price
			}

			room, err := services.Rooms.Update(cmd.Context(), args[0], req)
			if err != nil {
				return err //nolint:wrapcheck
			}

			return newPrinter(opts, cmd).print(room, func(w io.Writer) { printRoom(w, room) })
		},
	}

	cmd.Flags().StringVar(&roomType, "type", "", "new room type")
	cmd.Flags().Float64Var(&price, "price", 0, "new nightly price")

	return cmd
}

func newRoomGetCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get <number>",
		Short: "Show a room",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			services, err := opts.Services()
			if err != nil {
				return err
			}

			room, err := services.Rooms.Get(cmd.Context(), args[0])
			if err != nil {
				return err //nolint:wrapcheck
			}

			return newPrinter(opts, cmd).print(room, func(w io.Writer) { printRoom(w, room) })
		},
	}
}

func newRoomListCommand(opts *RootOptions) *cobra.Command {
	query := gDto.QueryParams{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List rooms with their occupancy tonight",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			services, err := opts.Services()
			if err != nil {
				return err
			}

			rooms, err := services.Rooms.GetAll(cmd.Context(), query)
			if err != nil {
				return err //nolint:wrapcheck
			}

			return newPrinter(opts, cmd).print(rooms, func(w io.Writer) {
				fmt.Fprintln(w, "NUMBER\tTYPE\tPRICE\tOCCUPIED")

				for _, room := range rooms.Items {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", room.Number, room.Type, money(room.Price), yesNo(room.Occupied))
				}

				printPagination(w, rooms.Pagination)
			})
		},
	}

	listFlags(cmd, &query.Page, &query.Limit)

	return cmd
}

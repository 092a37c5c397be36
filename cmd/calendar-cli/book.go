package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BruksfildServices01/calendar-scheduler/internal/views"
)

func bookCmd(a *app) *cobra.Command {
	var (
		name string
		slot int
	)
	cmd := &cobra.Command{
		Use:   "book LINK",
		Short: "Book one of another user's open slots",
		Long: "LINK is a booking link or a /schedule/{userId} path. Without --slot the\n" +
			"open slots are listed and nothing is booked.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, err := views.ParseScheduleRoute(args[0])
			if err != nil {
				return err
			}

			p := views.NewBookingPage(a.api, a.log, owner)
			if err := p.Load(cmd.Context()); err != nil {
				return err
			}
			if slot < 0 {
				printSlots(a, p.Events)
				return nil
			}
			if slot >= len(p.Events) {
				return fmt.Errorf("slot %d does not exist, %d open", slot, len(p.Events))
			}

			p.SelectEvent(p.Events[slot])
			p.Name = name
			if !p.CanConfirm() {
				return fmt.Errorf("--name is required to book")
			}
			if err := p.Confirm(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(a.out, p.Message)
			return nil
		},
	}
	cmd.Flags().StringVarP(&name, "name", "n", "", "Your name")
	cmd.Flags().IntVar(&slot, "slot", -1, "Index of the slot to book")
	return cmd
}

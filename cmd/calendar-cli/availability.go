package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BruksfildServices01/calendar-scheduler/internal/timezone"
	"github.com/BruksfildServices01/calendar-scheduler/internal/views"
)

func availabilityCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{Use: "availability", Short: "Bookable time windows"}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List your open slots and the booking link",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.signedIn(cmd.Context()); err != nil {
				return err
			}
			e := views.NewAvailabilityEditor(a.api, staticOrigin(a.cfg.Origin), a.log, a.identity.User.ID)
			if err := e.Load(cmd.Context()); err != nil {
				return err
			}
			printSlots(a, e.Events())
			fmt.Fprintf(a.out, "Booking link: %s\n", views.ShareLink(a.cfg.Origin, a.identity.User.ID))
			return nil
		},
	}

	var starts, ends []string
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add slots and resubmit the whole list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(starts) != len(ends) {
				return fmt.Errorf("got %d --start and %d --end values", len(starts), len(ends))
			}
			if err := a.signedIn(cmd.Context()); err != nil {
				return err
			}

			e := views.NewAvailabilityEditor(a.api, staticOrigin(a.cfg.Origin), a.log, a.identity.User.ID)
			if err := e.Load(cmd.Context()); err != nil {
				return err
			}
			e.OpenModal()
			for i := range starts {
				s, err := timezone.Parse(starts[i], a.loc)
				if err != nil {
					return err
				}
				end, err := timezone.Parse(ends[i], a.loc)
				if err != nil {
					return err
				}
				e.SelectSlot(s, end)
			}
			if err := e.Submit(cmd.Context()); err != nil {
				return err
			}

			printSlots(a, e.Events())
			fmt.Fprintf(a.out, "Share this link: %s\n", e.ShareLink)
			return nil
		},
	}
	addCmd.Flags().StringArrayVarP(&starts, "start", "s", nil, "Slot start, repeatable")
	addCmd.Flags().StringArrayVarP(&ends, "end", "e", nil, "Slot end, repeatable")
	_ = addCmd.MarkFlagRequired("start")
	_ = addCmd.MarkFlagRequired("end")

	cmd.AddCommand(listCmd, addCmd)
	return cmd
}

func printSlots(a *app, events []views.Event) {
	if len(events) == 0 {
		fmt.Fprintln(a.out, "No open slots.")
		return
	}
	for _, ev := range events {
		fmt.Fprintf(a.out, "[%s] %s\n", ev.ID, timezone.FormatRange(ev.Start, ev.End, a.loc))
	}
}

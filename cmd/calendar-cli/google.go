package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func googleCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{Use: "google", Short: "Read the operator's Google Calendar and Tasks"}

	eventsCmd := &cobra.Command{
		Use:   "events",
		Short: "Next upcoming calendar events",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			events, err := a.api.GoogleEvents(cmd.Context())
			if err != nil {
				return err
			}
			for _, ev := range events {
				when := ""
				if ev.Start != nil {
					when = ev.Start.DateTime
					if when == "" {
						when = ev.Start.Date
					}
				}
				fmt.Fprintf(a.out, "%-25s %s\n", when, ev.Summary)
			}
			return nil
		},
	}

	tasksCmd := &cobra.Command{
		Use:   "tasks",
		Short: "Tasks in the default task list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			items, err := a.api.GoogleTasks(cmd.Context())
			if err != nil {
				return err
			}
			for _, t := range items {
				mark := " "
				if t.Status == "completed" {
					mark = "x"
				}
				fmt.Fprintf(a.out, "[%s] %s\n", mark, t.Title)
			}
			return nil
		},
	}

	cmd.AddCommand(eventsCmd, tasksCmd)
	return cmd
}

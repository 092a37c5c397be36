package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BruksfildServices01/calendar-scheduler/internal/timezone"
	"github.com/BruksfildServices01/calendar-scheduler/internal/views"
)

func tasksCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{Use: "tasks", Short: "Personal calendar tasks"}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List your tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.signedIn(cmd.Context()); err != nil {
				return err
			}
			v := views.NewTaskView(a.api, writerNotifier{a.out}, nil, a.log, a.identity.User.ID)
			if err := v.Load(cmd.Context()); err != nil {
				return err
			}
			if len(v.Events) == 0 {
				fmt.Fprintln(a.out, "No tasks.")
			}
			for _, ev := range v.Events {
				fmt.Fprintf(a.out, "%s  %s\n", timezone.FormatRange(ev.Start, ev.End, a.loc), ev.Title)
			}
			return nil
		},
	}

	var title, start, end string
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Create a task in the given interval",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := timezone.Parse(start, a.loc)
			if err != nil {
				return err
			}
			e, err := timezone.Parse(end, a.loc)
			if err != nil {
				return err
			}
			if err := a.signedIn(cmd.Context()); err != nil {
				return err
			}

			v := views.NewTaskView(a.api, writerNotifier{a.out}, nil, a.log, a.identity.User.ID)
			v.SelectSlot(s, e)
			v.Form.Title = title
			if err := v.Submit(cmd.Context()); err != nil {
				return err
			}

			created := v.Events[len(v.Events)-1]
			fmt.Fprintf(a.out, "Created %q %s\n", created.Title, timezone.FormatRange(created.Start, created.End, a.loc))
			return nil
		},
	}
	addCmd.Flags().StringVarP(&title, "title", "t", "", "Task title (required)")
	addCmd.Flags().StringVarP(&start, "start", "s", "", "Start time (required)")
	addCmd.Flags().StringVarP(&end, "end", "e", "", "End time (required)")
	_ = addCmd.MarkFlagRequired("title")
	_ = addCmd.MarkFlagRequired("start")
	_ = addCmd.MarkFlagRequired("end")

	cmd.AddCommand(listCmd, addCmd)
	return cmd
}

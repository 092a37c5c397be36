package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var errSignedOut = errors.New("not signed in, run `calendar-cli register` or `calendar-cli login` first")

// signedIn bootstraps the stored session and attaches its token to the
// API client.
func (a *app) signedIn(ctx context.Context) error {
	if err := a.identity.Bootstrap(ctx); err != nil {
		return err
	}
	if a.identity.PromptVisible {
		return errSignedOut
	}
	a.api.SetToken(a.identity.Token())
	return nil
}

func registerCmd(a *app) *cobra.Command {
	var password string
	cmd := &cobra.Command{
		Use:   "register NAME",
		Short: "Create a user and remember it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a.identity.Name = args[0]
			a.identity.Password = password
			if err := a.identity.Register(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Registered %s (%s)\n", a.identity.User.Name, a.identity.User.ID)
			return nil
		},
	}
	cmd.Flags().StringVarP(&password, "password", "p", "", "Password; without one no login is possible later")
	return cmd
}

func loginCmd(a *app) *cobra.Command {
	var password string
	cmd := &cobra.Command{
		Use:   "login USERNAME",
		Short: "Log in and remember the session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a.identity.Name = args[0]
			a.identity.Password = password
			if err := a.identity.Login(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Logged in as %s\n", a.identity.User.Name)
			return nil
		},
	}
	cmd.Flags().StringVarP(&password, "password", "p", "", "Password")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func logoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.identity.Logout()
		},
	}
}

func whoamiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.signedIn(cmd.Context()); err != nil {
				return err
			}
			u := a.identity.User
			fmt.Fprintf(a.out, "%s (%s)\n", u.Name, u.ID)
			return nil
		},
	}
}

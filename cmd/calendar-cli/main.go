package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/BruksfildServices01/calendar-scheduler/internal/client"
	"github.com/BruksfildServices01/calendar-scheduler/internal/logger"
	"github.com/BruksfildServices01/calendar-scheduler/internal/session"
	"github.com/BruksfildServices01/calendar-scheduler/internal/timezone"
	"github.com/BruksfildServices01/calendar-scheduler/internal/views"
)

// app is what every command works with once the config is loaded.
type app struct {
	cfg      cliConfig
	api      *client.Client
	identity *views.Identity
	loc      *time.Location
	log      zerolog.Logger
	out      io.Writer
}

type writerNotifier struct{ w io.Writer }

func (n writerNotifier) Notify(msg string) { fmt.Fprintln(n.w, msg) }

type staticOrigin string

func (o staticOrigin) Origin() string { return string(o) }

func newApp(cfg cliConfig, out io.Writer) *app {
	log := logger.NewWithWriter(os.Stderr, "calendar-cli", cfg.LogLevel)
	api := client.New(cfg.APIURL)

	return &app{
		cfg:      cfg,
		api:      api,
		identity: views.NewIdentity(api, session.NewFileStore(cfg.SessionFile), log),
		loc:      timezone.Location(cfg.Timezone),
		log:      log,
		out:      out,
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	var configPath, apiURL string

	// commands hold the pointer and see the app once PersistentPreRunE ran
	a := &app{}

	root := &cobra.Command{
		Use:           "calendar-cli",
		Short:         "Terminal client for the calendar scheduler",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if apiURL != "" {
				cfg.APIURL = apiURL
			}
			*a = *newApp(cfg, out)
			return nil
		},
	}
	root.SetOut(out)
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to "+configName)
	root.PersistentFlags().StringVarP(&apiURL, "api", "a", "", "API base URL, overrides api_url")

	root.AddCommand(
		registerCmd(a),
		loginCmd(a),
		logoutCmd(a),
		whoamiCmd(a),
		tasksCmd(a),
		availabilityCmd(a),
		bookCmd(a),
		googleCmd(a),
	)
	return root
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

package main

import (
	"io"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/attendance-tracker/internal/client"
	"github.com/cmlabs-hris/attendance-tracker/internal/config"
	"github.com/cmlabs-hris/attendance-tracker/internal/pkg/validator"
	"github.com/cmlabs-hris/attendance-tracker/internal/session"
	"github.com/spf13/cobra"
)

// app carries the state shared by all subcommands of one invocation.
type app struct {
	in      io.Reader
	out     io.Writer
	apiURL  string
	date    string
	now     func() time.Time
	client  *client.Client
	session *session.Session
}

func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	a := &app{in: in, out: out, now: time.Now}

	root := &cobra.Command{
		Use:           "attendancectl",
		Short:         "Track daily staff attendance against the attendance API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.connect()
		},
	}
	root.SetIn(in)
	root.SetOut(out)

	root.PersistentFlags().StringVar(&a.apiURL, "api", "", "attendance API base URL (default $ATTENDANCE_API_URL)")
	root.PersistentFlags().StringVar(&a.date, "date", "", "working date YYYY-MM-DD (default today)")

	root.AddCommand(
		newStaffCmd(a),
		newMarkCmd(a),
		newReasonCmd(a),
		newShowCmd(a),
		newSummaryCmd(a),
		newExportCmd(a),
		newPrintCmd(a),
		newWatchCmd(a),
	)
	return root
}

func (a *app) connect() error {
	cfg, err := config.LoadClient()
	if err != nil {
		return err
	}
	if a.apiURL != "" {
		cfg.BaseURL = a.apiURL
	}
	if a.date == "" {
		a.date = a.now().Format(validator.DateLayout)
	}

	a.client = client.NewClient(cfg)
	a.session = session.New(a.client,
		session.WithClock(a.now),
		session.WithLogger(slog.Default()),
	)
	return nil
}

// load syncs the session with the API and selects the working date.
func (a *app) load(cmd *cobra.Command) error {
	if err := a.session.Load(cmd.Context()); err != nil {
		return err
	}
	return a.session.SelectDate(a.date)
}

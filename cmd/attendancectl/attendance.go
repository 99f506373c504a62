package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/cmlabs-hris/attendance-tracker/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-tracker/internal/domain/report"
	"github.com/cmlabs-hris/attendance-tracker/internal/ledger"
	"github.com/spf13/cobra"
)

func newMarkCmd(a *app) *cobra.Command {
	var reason string

	cmd := &cobra.Command{
		Use:   "mark NAME STATUS",
		Short: "Set a status for the working date",
		Long:  "Set a status for the working date. STATUS is one of Present, Absent, Training, \"Half Day\", Holiday or \"\" to clear it.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := attendance.ParseStatus(args[1])
			if err != nil {
				return err
			}
			if err := a.load(cmd); err != nil {
				return err
			}

			var rec ledger.Record
			if cmd.Flags().Changed("reason") {
				rec, err = a.session.Mark(cmd.Context(), args[0], status, reason)
			} else {
				rec, err = a.session.SetStatus(cmd.Context(), args[0], status)
			}
			if err != nil {
				return err
			}

			a.printRecord(args[0], rec)
			if status.NeedsReason() && rec.Reason == "" {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s has no reason; add one with --reason or the reason command\n", status)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&reason, "reason", "r", "", "reason to store with the status")
	return cmd
}

func newReasonCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reason NAME TEXT",
		Short: "Set the reason for the working date",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.load(cmd); err != nil {
				return err
			}
			rec, err := a.session.SetReason(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			a.printRecord(args[0], rec)
			return nil
		},
	}
}

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show every staff member's entry for the working date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.load(cmd); err != nil {
				return err
			}

			tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "Date: %s\n", a.session.SelectedDate())
			fmt.Fprintln(tw, "Employee\tStatus\tReason")
			for _, name := range a.session.Roster() {
				rec, _ := a.session.Record(name)
				fmt.Fprintf(tw, "%s\t%s\t%s\n", name, orDash(string(rec.Status)), orDash(rec.Reason))
			}
			return tw.Flush()
		},
	}
}

func newSummaryCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Count statuses for the working date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.load(cmd); err != nil {
				return err
			}
			sum, err := a.session.Summary()
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, sum.Label())
			return nil
		},
	}
}

func (a *app) printRecord(name string, rec ledger.Record) {
	fmt.Fprintf(a.out, "%s %s: %s (%s)\n", a.session.SelectedDate(), name, orDash(string(rec.Status)), orDash(rec.Reason))
}

func orDash(s string) string {
	if s == "" {
		return report.Placeholder
	}
	return s
}

package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/cmlabs-hris/attendance-tracker/internal/client"
	"github.com/cmlabs-hris/attendance-tracker/internal/domain/report"
	"github.com/cmlabs-hris/attendance-tracker/internal/pkg/export"
	"github.com/cmlabs-hris/attendance-tracker/internal/pkg/storage"
	"github.com/spf13/cobra"
)

func newExportCmd(a *app) *cobra.Command {
	var mode, format, outDir string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Download the monthly or yearly spreadsheet around the working date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := report.ParseMode(mode)
			if err != nil {
				return err
			}
			if m == report.ModeDaily {
				return fmt.Errorf("%w: export supports monthly or yearly", report.ErrInvalidMode)
			}

			art, err := a.client.Export(cmd.Context(), m, a.date, report.Format(format))
			if err != nil {
				return err
			}
			return a.save(cmd.Context(), outDir, art)
		},
	}
	cmd.Flags().StringVarP(&mode, "mode", "m", string(report.ModeMonthly), "monthly or yearly")
	cmd.Flags().StringVarP(&format, "format", "f", string(report.FormatXLSX), "xlsx or csv")
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "directory to write the file into")
	return cmd
}

func newPrintCmd(a *app) *cobra.Command {
	var format, outDir string

	cmd := &cobra.Command{
		Use:   "print",
		Short: "Print the working date's attendance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch report.Format(format) {
			case report.FormatText:
				if err := a.load(cmd); err != nil {
					return err
				}
				rep, err := a.session.Report(report.ModeDaily)
				if err != nil {
					return err
				}
				return export.WriteText(a.out, rep)
			case report.FormatHTML, report.FormatPDF:
				art, err := a.client.Print(cmd.Context(), a.date, report.Format(format))
				if err != nil {
					return err
				}
				return a.save(cmd.Context(), outDir, art)
			}
			return fmt.Errorf("%w: %q", report.ErrInvalidFormat, format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", string(report.FormatText), "text, html or pdf")
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "directory for html or pdf output")
	return cmd
}

func newWatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Follow roster and attendance changes as they happen",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.client.Watch(cmd.Context(), func(ev client.Event) {
				fmt.Fprintf(a.out, "%s %s\n", ev.Name, ev.Data)
			})
		},
	}
}

func (a *app) save(ctx context.Context, dir string, art report.Artifact) error {
	if art.FileName == "" {
		return errors.New("server did not name the file")
	}

	store, err := storage.NewLocalStorage(dir)
	if err != nil {
		return err
	}
	name, err := store.Upload(ctx, bytes.NewReader(art.Body), filepath.Base(art.FileName))
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Saved %s\n", store.Location(name))
	return nil
}

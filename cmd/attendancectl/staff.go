package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newStaffCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "staff",
		Short: "Manage the roster",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List staff in roster order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := a.client.ListStaff(cmd.Context())
			if err != nil {
				return err
			}
			for _, name := range names {
				fmt.Fprintln(a.out, name)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add NAME",
		Short: "Add a staff member",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.load(cmd); err != nil {
				return err
			}
			if err := a.session.AddStaff(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Added %s\n", strings.TrimSpace(args[0]))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "rename OLD NEW",
		Short: "Rename a staff member and carry over their attendance",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.load(cmd); err != nil {
				return err
			}
			if err := a.session.RenameStaff(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Renamed %s to %s\n", args[0], strings.TrimSpace(args[1]))
			return nil
		},
	})

	var yes bool
	remove := &cobra.Command{
		Use:   "remove NAME",
		Short: "Remove a staff member and all of their attendance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if !yes && !a.confirm(fmt.Sprintf("Remove %s and all of their attendance? [y/N] ", name)) {
				fmt.Fprintln(a.out, "Cancelled")
				return nil
			}
			if err := a.load(cmd); err != nil {
				return err
			}
			if err := a.session.RemoveStaff(cmd.Context(), name); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Removed %s\n", name)
			return nil
		},
	}
	remove.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	cmd.AddCommand(remove)

	return cmd
}

func (a *app) confirm(prompt string) bool {
	fmt.Fprint(a.out, prompt)
	answer, _ := bufio.NewReader(a.in).ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}

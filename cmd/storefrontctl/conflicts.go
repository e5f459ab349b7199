package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

func conflictsCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "conflicts",
		Short: "Review payment events that could not be applied",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List unresolved conflicts, oldest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			all, _ := cmd.Flags().GetBool("all")
			limit, _ := cmd.Flags().GetInt("limit")

			svc, closeFn, err := e.services()
			if err != nil {
				return err
			}
			defer closeFn()

			ctx, cancel := withTimeout(cmd, e)
			defer cancel()
			conflicts, err := svc.Engine.Conflicts(ctx, all, limit)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tPROVIDER\tEVENT\tORDER\tCURRENT\tATTEMPTED\tCREATED\tRESOLVED")
			for _, c := range conflicts {
				resolved := "-"
				if c.ResolvedAt != nil {
					resolved = c.ResolvedAt.Format(time.RFC3339)
				}
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					c.ID, c.Provider, c.ProviderEventID, c.OrderID, c.Current, c.Attempted,
					c.CreatedAt.Format(time.RFC3339), resolved)
			}
			return tw.Flush()
		},
	}
	list.Flags().Bool("all", false, "include resolved conflicts")
	list.Flags().Int("limit", 100, "maximum rows")

	resolve := &cobra.Command{
		Use:   "resolve <id>",
		Short: "Mark a conflict as reviewed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("conflict id must be a number: %w", err)
			}

			svc, closeFn, err := e.services()
			if err != nil {
				return err
			}
			defer closeFn()

			ctx, cancel := withTimeout(cmd, e)
			defer cancel()
			c, err := svc.Engine.ResolveConflict(ctx, id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "resolved conflict %d on order %s\n", c.ID, c.OrderID)
			return nil
		},
	}

	cmd.AddCommand(list, resolve)
	return cmd
}

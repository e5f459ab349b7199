package main

import (
	"github.com/spf13/cobra"

	orderv1 "github.com/dwikikusuma/storefront/api/gen/order/v1"
)

func orderCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "order",
		Short: "Inspect and administer orders through the order service",
	}
	cmd.PersistentFlags().String("addr", e.cfg.OrderServiceAddr, "order service gRPC address")

	show := &cobra.Command{
		Use:   "show <order-number>",
		Short: "Print an order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, _ := cmd.Flags().GetString("addr")
			client, conn, err := e.dialOrders(addr)
			if err != nil {
				return err
			}
			defer conn.Close()

			ctx, cancel := withTimeout(cmd, e)
			defer cancel()
			resp, err := client.GetOrder(ctx, &orderv1.GetOrderRequest{Number: args[0]})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), resp.GetOrder())
		},
	}

	cancelCmd := &cobra.Command{
		Use:   "cancel <order-number>",
		Short: "Cancel a pending or paid order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, _ := cmd.Flags().GetString("addr")
			reason, _ := cmd.Flags().GetString("reason")
			client, conn, err := e.dialOrders(addr)
			if err != nil {
				return err
			}
			defer conn.Close()

			ctx, cancel := withTimeout(cmd, e)
			defer cancel()
			resp, err := client.CancelOrder(ctx, &orderv1.CancelOrderRequest{Number: args[0], Reason: reason})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), resp)
		},
	}
	cancelCmd.Flags().String("reason", "", "reason recorded with the cancellation")
	_ = cancelCmd.MarkFlagRequired("reason")

	cmd.AddCommand(show, cancelCmd)
	return cmd
}

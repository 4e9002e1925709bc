// Copyright (c) The Bookstore Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"encoding/json"

	bssdk "github.com/dbirtolo/bookstore/pkg/sdk/go"
	"github.com/spf13/cobra"
)

var cmdOrders = []cobra.Command{
	{
		Use:   "create <JSON_order> <user_auth_token>",
		Short: "Place order",
		Long: "Places a new order. The order total is computed from current catalog prices\n" +
			"and the ordered copies are reserved from stock.\n" +
			"Usage:\n" +
			"\tbookstore-cli orders create '{\"buyer\":\"alice\",\"items\":[{\"book_id\":\"<book_id>\",\"quantity\":2}]}' $USERTOKEN\n",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 2 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			var order bssdk.Order
			if err := json.Unmarshal([]byte(args[0]), &order); err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			order, err := sdk.PlaceOrder(order, args[1])
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			logJSONCmd(*cmd, order)
		},
	},
	{
		Use:   "get [all | <order_id>] <user_auth_token>",
		Short: "Get order",
		Long: `Get all orders or get order by id. Orders can be filtered by buyer or status.
		all - lists all orders
		<order_id> - shows order with provided <order_id>`,
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 2 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}
			pageMetadata := bssdk.PageMetadata{
				Offset: Offset,
				Limit:  Limit,
				Buyer:  Buyer,
				Status: Status,
			}

			if args[0] == all {
				l, err := sdk.Orders(pageMetadata, args[1])
				if err != nil {
					logErrorCmd(*cmd, err)
					return
				}

				logJSONCmd(*cmd, l)
				return
			}
			o, err := sdk.Order(args[0], args[1])
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			logJSONCmd(*cmd, o)
		},
	},
	{
		Use:   "ship <order_id> <user_auth_token>",
		Short: "Ship order",
		Long:  `Marks a placed order as shipped`,
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 2 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			order, err := sdk.ShipOrder(args[0], args[1])
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			logJSONCmd(*cmd, order)
		},
	},
	{
		Use:   "cancel <order_id> <user_auth_token>",
		Short: "Cancel order",
		Long:  `Cancels a placed order and returns the reserved copies to stock`,
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 2 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			order, err := sdk.CancelOrder(args[0], args[1])
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			logJSONCmd(*cmd, order)
		},
	},
	{
		Use:   "revenue <user_auth_token>",
		Short: "Total revenue",
		Long:  `Total revenue over all non-cancelled orders`,
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 1 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			revenue, err := sdk.Revenue(args[0])
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			logJSONCmd(*cmd, map[string]float64{"revenue": revenue})
		},
	},
}

// NewOrdersCmd returns orders command.
func NewOrdersCmd() *cobra.Command {
	cmd := cobra.Command{
		Use:   "orders [create | get | ship | cancel | revenue]",
		Short: "Orders management",
		Long:  `Orders management: place, get, ship or cancel orders and compute total revenue`,
	}

	for i := range cmdOrders {
		cmd.AddCommand(&cmdOrders[i])
	}

	return &cmd
}

package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/GTDGit/seller_hub/internal/client"
	"github.com/GTDGit/seller_hub/internal/contract"
	"github.com/GTDGit/seller_hub/internal/utils"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "sellerctl: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "sellerctl",
		Usage: "inspect and operate a seller hub from the terminal",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "url", Value: "http://localhost:8080", EnvVars: []string{"SELLER_HUB_URL"}, Usage: "API base URL"},
			&cli.StringFlag{Name: "token", EnvVars: []string{"SELLER_HUB_TOKEN"}, Usage: "session token"},
			&cli.DurationFlag{Name: "timeout", Value: 30 * time.Second, Usage: "request timeout"},
			&cli.BoolFlag{Name: "json", Usage: "print raw JSON"},
		},
		Commands: []*cli.Command{
			{
				Name:   "stats",
				Usage:  "show dashboard counters",
				Action: withClient(showStats),
			},
			{
				Name:  "products",
				Usage: "list products",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "search"},
					&cli.StringFlag{Name: "category"},
				},
				Action: withClient(listProducts),
			},
			{
				Name:      "product",
				Usage:     "show one product",
				ArgsUsage: "<id>",
				Action:    withClient(showProduct),
			},
			{
				Name:  "orders",
				Usage: "list orders",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "status"},
					&cli.StringFlag{Name: "search"},
				},
				Action: withClient(listOrders),
			},
			{
				Name:      "order",
				Usage:     "show one order with its items",
				ArgsUsage: "<id>",
				Action:    withClient(showOrder),
			},
			{
				Name:   "returns",
				Usage:  "list returns and RTOs",
				Action: withClient(listReturns),
			},
			{
				Name:   "settings",
				Usage:  "show seller settings",
				Action: withClient(showSettings),
			},
			{
				Name:   "suggestions",
				Usage:  "show seller intelligence suggestions",
				Action: withClient(listSuggestions),
			},
			{
				Name:   "sync",
				Usage:  "import orders from the marketplace",
				Action: withClient(syncOrders),
			},
			{
				Name:      "invoice",
				Usage:     "generate an order invoice",
				ArgsUsage: "<id>",
				Action:    withClient(generateInvoice),
			},
			{
				Name:      "bulk-status",
				Usage:     "set one status on many orders",
				ArgsUsage: "<id>...",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "status", Required: true},
				},
				Action: withClient(bulkStatus),
			},
			{
				Name:  "token",
				Usage: "issue a session token",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "seller", Value: "default"},
					&cli.StringFlag{Name: "secret", EnvVars: []string{"JWT_SECRET"}, Required: true},
					&cli.DurationFlag{Name: "ttl", Value: 24 * time.Hour},
				},
				Action: func(c *cli.Context) error {
					token, err := utils.GenerateJWT(c.String("seller"), c.String("secret"), c.Duration("ttl"))
					if err != nil {
						return err
					}
					fmt.Fprintln(c.App.Writer, token)
					return nil
				},
			},
		},
	}
}

func withClient(fn func(c *cli.Context, api *client.Client) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		opts := []client.Option{client.WithTimeout(c.Duration("timeout"))}
		if token := c.String("token"); token != "" {
			opts = append(opts, client.WithSessionToken(token))
		}
		api, err := client.New(c.String("url"), opts...)
		if err != nil {
			return err
		}
		return fn(c, api)
	}
}

func idArg(c *cli.Context) (int, error) {
	id, err := strconv.Atoi(c.Args().First())
	if err != nil || id <= 0 {
		return 0, cli.Exit("a positive numeric id is required", 2)
	}
	return id, nil
}

func listFilters(c *cli.Context) (contract.ListProductsQuery, contract.ListOrdersQuery) {
	return contract.ListProductsQuery{Search: c.String("search"), Category: c.String("category")},
		contract.ListOrdersQuery{Status: c.String("status"), Search: c.String("search")}
}

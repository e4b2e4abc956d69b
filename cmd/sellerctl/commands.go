package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/GTDGit/seller_hub/internal/client"
)

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func table(c *cli.Context, header string, rows func(w io.Writer)) error {
	tw := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, header)
	rows(tw)
	return tw.Flush()
}

func orDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

func showStats(c *cli.Context, api *client.Client) error {
	s, err := api.DashboardStats(c.Context)
	if err != nil {
		return err
	}
	if c.Bool("json") {
		return printJSON(c.App.Writer, s)
	}
	return table(c, "METRIC\tVALUE", func(w io.Writer) {
		fmt.Fprintf(w, "Total orders\t%d\n", s.TotalOrders)
		fmt.Fprintf(w, "Pending dispatch\t%d\n", s.PendingDispatch)
		fmt.Fprintf(w, "Total sales\t%s\n", s.TotalSales)
		fmt.Fprintf(w, "Low stock\t%d\n", s.LowStockCount)
		fmt.Fprintf(w, "Returns\t%d\n", s.ReturnsCount)
	})
}

func listProducts(c *cli.Context, api *client.Client) error {
	filter, _ := listFilters(c)
	products, err := api.Products(c.Context, filter)
	if err != nil {
		return err
	}
	if c.Bool("json") {
		return printJSON(c.App.Writer, products)
	}
	return table(c, "ID\tSKU\tNAME\tPRICE\tSTOCK\tCATEGORY\tACTIVE", func(w io.Writer) {
		for _, p := range products {
			stock := strconv.Itoa(p.Stock)
			if p.IsLowStock() {
				stock += " (low)"
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%t\n", p.ID, p.SKU, p.Name, p.Price, stock, orDash(p.Category), p.IsActive)
		}
	})
}

func showProduct(c *cli.Context, api *client.Client) error {
	id, err := idArg(c)
	if err != nil {
		return err
	}
	p, err := api.Product(c.Context, id)
	if err != nil {
		return err
	}
	if p == nil {
		return cli.Exit(fmt.Sprintf("product %d not found", id), 1)
	}
	return printJSON(c.App.Writer, p)
}

func listOrders(c *cli.Context, api *client.Client) error {
	_, filter := listFilters(c)
	orders, err := api.Orders(c.Context, filter)
	if err != nil {
		return err
	}
	if c.Bool("json") {
		return printJSON(c.App.Writer, orders)
	}
	return table(c, "ID\tORDER\tDATE\tSTATUS\tBUYER\tTOTAL\tDISPATCH BY", func(w io.Writer) {
		for _, o := range orders {
			dispatch := "-"
			if o.DispatchByDate != nil {
				dispatch = o.DispatchByDate.Format(time.DateOnly)
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
				o.ID, o.OrderID, o.OrderDate.Format(time.DateOnly), o.Status, orDash(o.BuyerName), o.TotalAmount, dispatch)
		}
	})
}

func showOrder(c *cli.Context, api *client.Client) error {
	id, err := idArg(c)
	if err != nil {
		return err
	}
	o, err := api.Order(c.Context, id)
	if err != nil {
		return err
	}
	if o == nil {
		return cli.Exit(fmt.Sprintf("order %d not found", id), 1)
	}
	return printJSON(c.App.Writer, o)
}

func listReturns(c *cli.Context, api *client.Client) error {
	returns, err := api.Returns(c.Context)
	if err != nil {
		return err
	}
	if c.Bool("json") {
		return printJSON(c.App.Writer, returns)
	}
	return table(c, "ID\tRETURN\tORDER\tTYPE\tSTATUS\tREASON", func(w io.Writer) {
		for _, r := range returns {
			order := "-"
			if r.OrderID != nil {
				order = strconv.Itoa(*r.OrderID)
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n", r.ID, r.ReturnID, order, orDash(r.Type), orDash(r.Status), orDash(r.Reason))
		}
	})
}

func showSettings(c *cli.Context, api *client.Client) error {
	s, err := api.Settings(c.Context)
	if err != nil {
		return err
	}
	if s == nil {
		return cli.Exit("no settings saved yet", 1)
	}
	return printJSON(c.App.Writer, s)
}

func listSuggestions(c *cli.Context, api *client.Client) error {
	suggestions, err := api.Suggestions(c.Context)
	if err != nil {
		return err
	}
	if c.Bool("json") {
		return printJSON(c.App.Writer, suggestions)
	}
	return table(c, "PRIORITY\tTYPE\tMESSAGE", func(w io.Writer) {
		for _, s := range suggestions {
			fmt.Fprintf(w, "%s\t%s\t%s\n", s.Priority, s.Type, s.Message)
		}
	})
}

func syncOrders(c *cli.Context, api *client.Client) error {
	res, err := api.SyncOrders(c.Context)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "%s: %d orders imported\n", res.Message, res.SyncedCount)
	return nil
}

func generateInvoice(c *cli.Context, api *client.Client) error {
	id, err := idArg(c)
	if err != nil {
		return err
	}
	inv, err := api.GenerateInvoice(c.Context, id)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, inv.URL)
	return nil
}

func bulkStatus(c *cli.Context, api *client.Client) error {
	ids := make([]int, 0, c.NArg())
	for _, raw := range c.Args().Slice() {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return cli.Exit(fmt.Sprintf("invalid order id %q", raw), 2)
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return cli.Exit("at least one order id is required", 2)
	}

	res, err := api.BulkUpdateStatus(c.Context, ids, c.String("status"))
	if err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "%d orders set to %s\n", res.Count, c.String("status"))
	return nil
}

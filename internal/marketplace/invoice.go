package marketplace

import (
	"bytes"
	"fmt"
	"text/tabwriter"

	"github.com/GTDGit/seller_hub/internal/models"
)

// RenderInvoice renders a plain-text tax invoice for order.
func RenderInvoice(order *models.OrderWithItems) []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "TAX INVOICE\n")
	fmt.Fprintf(&buf, "Order:  %s\n", order.OrderID)
	fmt.Fprintf(&buf, "Date:   %s\n", order.OrderDate.UTC().Format("2006-01-02"))
	if order.BuyerName != nil {
		fmt.Fprintf(&buf, "Buyer:  %s\n", *order.BuyerName)
	}
	if order.BuyerAddress != nil {
		fmt.Fprintf(&buf, "Ship to: %s\n", *order.BuyerAddress)
	}
	buf.WriteString("\n")

	w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SKU\tQTY\tPRICE\tAMOUNT")
	for _, it := range order.Items {
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", it.SKU, it.Quantity, it.Price, it.Price.Mul(it.Quantity))
	}
	w.Flush()

	buf.WriteString("\n")
	fmt.Fprintf(&buf, "Shipping:  %s\n", order.ShippingFee)
	fmt.Fprintf(&buf, "GST:       %s\n", order.GST)
	fmt.Fprintf(&buf, "Total:     %s\n", order.TotalAmount)
	return buf.Bytes()
}

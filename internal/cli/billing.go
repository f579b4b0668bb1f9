package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/coosanta-bit/medi/internal/domain"
	"github.com/coosanta-bit/medi/internal/guard"
	"github.com/coosanta-bit/medi/pkg/validator"
)

func (c *CLI) newBillingCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "billing",
		Short: "Products, orders, payments, entitlements, invoices",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if root := cmd.Root(); root.PersistentPreRunE != nil {
				if err := root.PersistentPreRunE(cmd, args); err != nil {
					return err
				}
			}
			return c.requireSection(guard.Employer, "/biz/billing")
		},
	}

	cmd.AddCommand(
		c.newProductListCommand(),
		c.newOrderCommands(),
		c.newPaymentListCommand(),
		c.newEntitlementListCommand(),
		c.newInvoiceCommands(),
	)
	return cmd
}

func (c *CLI) newProductListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "products",
		Short: "List purchasable products",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := c.app.Clients.Billing.ListProducts(cmd.Context())
			if err != nil {
				return err
			}
			return c.render(list, func(w *tabwriter.Writer) {
				fmt.Fprintln(w, "ID\tTYPE\tNAME\tPRICE\tACTIVE")
				for _, p := range list.Items {
					fmt.Fprintf(w, "%s\t%s\t%s\t%d %s\t%t\n",
						p.ID, p.Type, p.Name, p.Price, p.Currency, p.Active)
				}
			})
		},
	}
}

func (c *CLI) newOrderCommands() *cobra.Command {
	cmd := &cobra.Command{Use: "orders", Short: "Manage orders"}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List your orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := c.app.Clients.Billing.ListOrders(cmd.Context())
			if err != nil {
				return err
			}
			return c.render(list, func(w *tabwriter.Writer) {
				fmt.Fprintln(w, "ID\tPRODUCT\tAMOUNT\tSTATUS\tCREATED")
				for _, o := range list.Items {
					fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n",
						o.ID, deref(o.ProductName), o.Amount, o.Status,
						o.CreatedAt.Format("2006-01-02"))
				}
			})
		},
	})

	var productID string
	create := &cobra.Command{
		Use:   "create",
		Short: "Purchase a product",
		RunE: func(cmd *cobra.Command, args []string) error {
			input := domain.OrderCreateInput{ProductID: productID}
			if err := validator.Validate(input); err != nil {
				return err
			}
			order, err := c.app.Clients.Billing.CreateOrder(cmd.Context(), input)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "order created: %s (%s)\n", order.ID, order.Status)
			return nil
		},
	}
	create.Flags().StringVar(&productID, "product", "", "product id")
	_ = create.MarkFlagRequired("product")
	cmd.AddCommand(create)

	return cmd
}

func (c *CLI) newPaymentListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "payments",
		Short: "List payment attempts",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := c.app.Clients.Billing.ListPayments(cmd.Context())
			if err != nil {
				return err
			}
			return c.render(list, func(w *tabwriter.Writer) {
				fmt.Fprintln(w, "ID\tORDER\tPG\tSTATUS\tPAID")
				for _, p := range list.Items {
					paid := "-"
					if p.PaidAt != nil {
						paid = p.PaidAt.Format("2006-01-02")
					}
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", p.ID, p.OrderID, deref(p.PG), p.Status, paid)
				}
			})
		},
	}
}

func (c *CLI) newEntitlementListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "entitlements",
		Short: "List entitlement balances",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := c.app.Clients.Billing.ListEntitlements(cmd.Context())
			if err != nil {
				return err
			}
			return c.render(list, func(w *tabwriter.Writer) {
				fmt.Fprintln(w, "TYPE\tBALANCE\tENDS")
				for _, e := range list.Items {
					ends := "-"
					if e.EndAt != nil {
						ends = e.EndAt.Format("2006-01-02")
					}
					fmt.Fprintf(w, "%s\t%d\t%s\n", e.Type, e.Balance, ends)
				}
			})
		},
	}
}

func (c *CLI) newInvoiceCommands() *cobra.Command {
	cmd := &cobra.Command{Use: "invoices", Short: "Tax invoices"}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List invoice requests",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := c.app.Clients.Billing.ListInvoices(cmd.Context())
			if err != nil {
				return err
			}
			return c.render(list, func(w *tabwriter.Writer) {
				fmt.Fprintln(w, "ID\tORDER\tSTATUS\tREQUESTED")
				for _, inv := range list.Items {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
						inv.ID, inv.OrderID, inv.Status, inv.RequestedAt.Format("2006-01-02"))
				}
			})
		},
	})

	var orderID string
	request := &cobra.Command{
		Use:   "request",
		Short: "Request a tax invoice for a paid order",
		RunE: func(cmd *cobra.Command, args []string) error {
			input := domain.InvoiceRequestInput{OrderID: orderID}
			if err := validator.Validate(input); err != nil {
				return err
			}
			invoice, err := c.app.Clients.Billing.RequestInvoice(cmd.Context(), input)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "invoice requested: %s (%s)\n", invoice.ID, invoice.Status)
			return nil
		},
	}
	request.Flags().StringVar(&orderID, "order", "", "order id")
	_ = request.MarkFlagRequired("order")
	cmd.AddCommand(request)

	return cmd
}

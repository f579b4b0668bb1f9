package client

import (
	"context"

	"github.com/coosanta-bit/medi/internal/api"
	"github.com/coosanta-bit/medi/internal/domain"
)

// BillingClient covers products, orders, payments, entitlements, and
// invoices for employer accounts.
type BillingClient struct {
	api *api.Client
}

// ListProducts lists the purchasable product catalog.
func (c *BillingClient) ListProducts(ctx context.Context) (*domain.ProductList, error) {
	var out domain.ProductList
	if err := c.api.Get(ctx, "/billing/products", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateOrder purchases a product.
func (c *BillingClient) CreateOrder(ctx context.Context, input domain.OrderCreateInput) (*domain.Order, error) {
	var out domain.Order
	if err := c.api.Post(ctx, "/billing/orders", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListOrders lists the company's orders.
func (c *BillingClient) ListOrders(ctx context.Context) (*domain.OrderList, error) {
	var out domain.OrderList
	if err := c.api.Get(ctx, "/billing/orders", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListPayments lists payment attempts against the company's orders.
func (c *BillingClient) ListPayments(ctx context.Context) (*domain.PaymentList, error) {
	var out domain.PaymentList
	if err := c.api.Get(ctx, "/billing/payments", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListEntitlements lists the company's active entitlement balances.
func (c *BillingClient) ListEntitlements(ctx context.Context) (*domain.EntitlementList, error) {
	var out domain.EntitlementList
	if err := c.api.Get(ctx, "/billing/entitlements", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RequestInvoice requests a tax invoice for a paid order.
func (c *BillingClient) RequestInvoice(ctx context.Context, input domain.InvoiceRequestInput) (*domain.Invoice, error) {
	var out domain.Invoice
	if err := c.api.Post(ctx, "/billing/invoices/request", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListInvoices lists the company's invoice requests.
func (c *BillingClient) ListInvoices(ctx context.Context) (*domain.InvoiceList, error) {
	var out domain.InvoiceList
	if err := c.api.Get(ctx, "/billing/invoices", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

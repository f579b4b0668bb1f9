package domain

import "time"

// Product is a purchasable listing or scouting product.
type Product struct {
	ID       string         `json:"id"`
	Type     string         `json:"type"`
	Name     string         `json:"name"`
	Price    int64          `json:"price"`
	Currency string         `json:"currency"`
	Config   map[string]any `json:"config_json"`
	Active   bool           `json:"active"`
}

// ProductList wraps the product catalog.
type ProductList struct {
	Items []Product `json:"items"`
}

// Order is a company's purchase order.
type Order struct {
	ID          string    `json:"id"`
	CompanyID   string    `json:"company_id"`
	ProductID   string    `json:"product_id"`
	ProductName *string   `json:"product_name"`
	Amount      int64     `json:"amount"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// OrderList wraps orders with a total count.
type OrderList struct {
	Items []Order `json:"items"`
	Total int     `json:"total"`
}

// Payment is a payment attempt against an order.
type Payment struct {
	ID        string     `json:"id"`
	OrderID   string     `json:"order_id"`
	PG        *string    `json:"pg"`
	PGTID     *string    `json:"pg_tid"`
	Status    string     `json:"status"`
	PaidAt    *time.Time `json:"paid_at"`
	CreatedAt time.Time  `json:"created_at"`
}

// PaymentList wraps payments with a total count.
type PaymentList struct {
	Items []Payment `json:"items"`
	Total int       `json:"total"`
}

// Entitlement is a purchased capability balance (job slots, scout credits).
type Entitlement struct {
	ID        string     `json:"id"`
	CompanyID string     `json:"company_id"`
	Type      string     `json:"type"`
	Balance   int64      `json:"balance"`
	StartAt   *time.Time `json:"start_at"`
	EndAt     *time.Time `json:"end_at"`
	OrderID   *string    `json:"order_id"`
	CreatedAt time.Time  `json:"created_at"`
}

// EntitlementList wraps the company's entitlements.
type EntitlementList struct {
	Items []Entitlement `json:"items"`
}

// Invoice is a tax-invoice request for an order.
type Invoice struct {
	ID          string     `json:"id"`
	CompanyID   string     `json:"company_id"`
	OrderID     string     `json:"order_id"`
	Status      string     `json:"status"`
	RequestedAt time.Time  `json:"requested_at"`
	IssuedAt    *time.Time `json:"issued_at"`
	CreatedAt   time.Time  `json:"created_at"`
}

// InvoiceList wraps invoices with a total count.
type InvoiceList struct {
	Items []Invoice `json:"items"`
	Total int       `json:"total"`
}

// OrderCreateInput purchases a product.
type OrderCreateInput struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
}

// InvoiceRequestInput requests a tax invoice for a paid order.
type InvoiceRequestInput struct {
	OrderID string `json:"order_id" validate:"required,uuid"`
}

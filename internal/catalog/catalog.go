// Package catalog holds the reference data the dashboard ships with: the
// product inventory and the customer list. Both are read-only for the whole
// session.
package catalog

import (
	"strings"

	"github.com/Renal37/order-dashboard/internal/models"
	"github.com/shopspring/decimal"
)

type Catalog struct {
	products  []models.Product
	customers []models.Customer
}

// New returns a catalog over the given tables. The slices are copied.
func New(products []models.Product, customers []models.Customer) *Catalog {
	return &Catalog{
		products:  append([]models.Product(nil), products...),
		customers: append([]models.Customer(nil), customers...),
	}
}

// Default returns the built-in sample catalog.
func Default() *Catalog {
	return New(defaultProducts, defaultCustomers)
}

func (c *Catalog) Products() []models.Product {
	return append([]models.Product(nil), c.products...)
}

// SearchProducts matches the term case-insensitively against product name,
// category and id. An empty term returns everything.
func (c *Catalog) SearchProducts(term string) []models.Product {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return c.Products()
	}

	result := make([]models.Product, 0)
	for _, p := range c.products {
		if strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.Category), term) ||
			strings.Contains(strings.ToLower(p.ID), term) {
			result = append(result, p)
		}
	}
	return result
}

func (c *Catalog) Product(id string) (models.Product, bool) {
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

func (c *Catalog) Customers() []models.Customer {
	return append([]models.Customer(nil), c.customers...)
}

func (c *Catalog) Customer(id string) (models.Customer, bool) {
	for _, cu := range c.customers {
		if cu.ID == id {
			return cu, true
		}
	}
	return models.Customer{}, false
}

func price(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

var defaultProducts = []models.Product{
	{ID: "RAM001", Name: "Corsair Vengeance 32GB DDR5", Category: "RAM", StockLevel: 50, Price: price("189.99")},
	{ID: "CPU001", Name: "Intel Core i9-13900K", Category: "CPU", StockLevel: 25, Price: price("599.99")},
	{ID: "GPU001", Name: "NVIDIA RTX 4090", Category: "GPU", StockLevel: 10, Price: price("1599.99")},
	{ID: "SSD001", Name: "Samsung 2TB 970 EVO Plus", Category: "Storage", StockLevel: 75, Price: price("179.99")},
	{ID: "MB001", Name: "ASUS ROG Maximus Z790", Category: "Motherboard", StockLevel: 30, Price: price("549.99")},
	{ID: "PSU001", Name: "Corsair RM850x PSU", Category: "Power Supply", StockLevel: 45, Price: price("149.99")},
	{ID: "CASE001", Name: "Lian Li O11 Dynamic", Category: "Case", StockLevel: 20, Price: price("159.99")},
	{ID: "COOL001", Name: "NZXT Kraken X73", Category: "Cooling", StockLevel: 35, Price: price("199.99")},
	{ID: "FAN001", Name: "Noctua NF-A12x25 PWM", Category: "Cooling", StockLevel: 100, Price: price("29.99")},
	{ID: "MON001", Name: "LG 27GP950-B 4K", Category: "Monitor", StockLevel: 15, Price: price("799.99")},
}

var defaultCustomers = []models.Customer{
	{ID: "CUST-001", Name: "John Doe", Email: "john@example.com", Phone: "123-456-7890", Address: "123 Main St, City, Country"},
	{ID: "CUST-002", Name: "Jane Smith", Email: "jane@example.com", Phone: "234-567-8901", Address: "456 Oak Ave, City, Country"},
	{ID: "CUST-003", Name: "Robert Johnson", Email: "robert@example.com", Phone: "345-678-9012", Address: "789 Pine Rd, City, Country"},
	{ID: "CUST-004", Name: "Emily Brown", Email: "emily@example.com", Phone: "456-789-0123", Address: "321 Elm St, City, Country"},
	{ID: "CUST-005", Name: "Michael Wilson", Email: "michael@example.com", Phone: "567-890-1234", Address: "654 Maple Dr, City, Country"},
	{ID: "CUST-006", Name: "Sarah Davis", Email: "sarah@example.com", Phone: "678-901-2345", Address: "987 Cedar Ln, City, Country"},
	{ID: "CUST-007", Name: "David Miller", Email: "david@example.com", Phone: "789-012-3456", Address: "147 Birch Blvd, City, Country"},
	{ID: "CUST-008", Name: "Lisa Anderson", Email: "lisa@example.com", Phone: "890-123-4567", Address: "258 Willow Way, City, Country"},
	{ID: "CUST-009", Name: "James Taylor", Email: "james@example.com", Phone: "901-234-5678", Address: "369 Ash St, City, Country"},
	{ID: "CUST-010", Name: "Jennifer Martin", Email: "jennifer@example.com", Phone: "012-345-6789", Address: "741 Palm Ct, City, Country"},
}

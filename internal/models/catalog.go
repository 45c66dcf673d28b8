package models

import "github.com/shopspring/decimal"

type Product struct {
	ID         string          `json:"product_id"`
	Name       string          `json:"name"`
	Category   string          `json:"category"`
	StockLevel int             `json:"stock_level"`
	Price      decimal.Decimal `json:"price"`
}

type Customer struct {
	ID      string `json:"customer_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

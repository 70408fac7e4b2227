package models

import "time"

// CartItem is a transient (product, quantity) pairing held only in memory
// until checkout; it is never persisted directly.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// TotalPrice returns the extended price of the line.
func (ci CartItem) TotalPrice() float64 {
	return ci.Product.Price * float64(ci.Quantity)
}

// ReceiptItem is a denormalized snapshot of product name and price at the
// time of sale. Rows are created only as part of receipt creation and
// deleted only as part of receipt deletion.
type ReceiptItem struct {
	ReceiptItemID uint    `json:"receipt_item_id" gorm:"column:ReceiptItemId;primaryKey"`
	ReceiptID     uint    `json:"receipt_id" gorm:"column:ReceiptId;not null"`
	ProductID     uint    `json:"product_id" gorm:"column:ProductId;not null"`
	ProductName   string  `json:"product_name" gorm:"column:ProductName;not null"`
	Price         float64 `json:"price" gorm:"column:Price;not null"`
	Quantity      int     `json:"quantity" gorm:"column:Quantity;not null"`
}

func (ReceiptItem) TableName() string { return "ReceiptItems" }

// Receipt is the persisted record of one settled checkout. It is immutable
// after creation except for deletion. Items is managed explicitly by the
// receipt repository (header first, then line items, one transaction) so the
// parent row always exists before any line item.
type Receipt struct {
	ReceiptID  uint      `json:"receipt_id" gorm:"column:ReceiptId;primaryKey"`
	Date       time.Time `json:"date" gorm:"column:Date;not null"`
	Total      float64   `json:"total" gorm:"column:Total;not null"`
	AmountPaid float64   `json:"amount_paid" gorm:"column:AmountPaid;not null"`
	Change     float64   `json:"change" gorm:"column:Change;not null"`

	Items []ReceiptItem `json:"items" gorm:"-"`
}

func (Receipt) TableName() string { return "Receipts" }

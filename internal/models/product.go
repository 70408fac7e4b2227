package models

// Category groups products for the catalog browser. Categories are created
// at seed time and referenced by Product via a nullable foreign key.
type Category struct {
	CategoryID uint   `json:"category_id" gorm:"column:CategoryId;primaryKey"`
	Name       string `json:"name" gorm:"column:Name;uniqueIndex;not null" validate:"required"`
}

func (Category) TableName() string { return "Categories" }

// Product represents a product in the catalog.
//
// Category holds the joined category label when the product was loaded via
// List or Search; it is never written back, the CategoryID column is the
// source of truth. Products with a missing category still surface with an
// empty label.
type Product struct {
	ProductID  uint    `json:"product_id" gorm:"column:ProductId;primaryKey"`
	Name       string  `json:"name" gorm:"column:Name;not null" validate:"required,max=100"`
	Price      float64 `json:"price" gorm:"column:Price;not null" validate:"gte=0"`
	CategoryID *uint   `json:"category_id" gorm:"column:CategoryId"`
	ImagePath  *string `json:"image_path" gorm:"column:ImagePath"`
	Stock      int     `json:"stock" gorm:"column:Stock;default:0" validate:"gte=0"`

	Category string `json:"category" gorm:"column:Category;->;-:migration" validate:"-"`
}

func (Product) TableName() string { return "Products" }

package models

import "time"

// Product is a catalog item. CO2Emission is the per-unit environmental
// figure used by the checkout reward calculator.
type Product struct {
	ID          uint    `gorm:"primarykey"`
	Name        string  `gorm:"not null"`
	Price       float64 `gorm:"not null"`
	CO2Emission float64 `gorm:"column:co2_emission;not null"`
	CategoryID  *uint
	Category    *Category `gorm:"foreignKey:CategoryID"`
	Image       string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Category struct {
	ID   uint   `gorm:"primarykey"`
	Name string `gorm:"uniqueIndex;not null"`
}

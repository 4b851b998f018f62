package models

import (
	"gorm.io/gorm"
)

// User roles
const (
	RoleConsumer = "consumer"
	RoleShipper  = "shipper"
	RoleBusiness = "business"
	RoleVerifier = "verifier"
	RoleAdmin    = "admin"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"`
	Name     string `gorm:"not null"`
	Role     string `gorm:"default:'consumer'"`
	Status   string `gorm:"default:'active'"`
	// GreenPoints is the legacy points field of the relational store.
	// The snapshot ledger is the ledger of record; this field is
	// display-only and never reconciled with the ECO balance.
	GreenPoints  float64 `gorm:"default:0"`
	TokenVersion int     `gorm:"default:1"`
}

// internal/models/common.go
package models

// Store collections
const (
	CollectionProduct = "product"
	CollectionInquiry = "inquiry"
)

// internal/models/inquiry.go
package models

import (
	"github.com/forgepeptides/forge-backend/internal/store"
)

// Conventional inquiry types. The field is free-form; these are the two
// values the storefront sends.
const (
	InquiryTypeContact = "contact"
	InquiryTypeQuote   = "quote"
)

// SubmitInquiryRequest is the payload for POST /api/inquiry.
type SubmitInquiryRequest struct {
	Name         string `json:"name" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Organization string `json:"organization"`
	Subject      string `json:"subject" validate:"required"`
	Message      string `json:"message" validate:"required"`
	Type         string `json:"type"`
	ProductID    string `json:"product_id"`
}

// Document returns the stored-field form of the inquiry. Enrichment
// (product_name) and timestamps are added later, by the service and the
// data-access layer respectively.
func (r *SubmitInquiryRequest) Document() store.Document {
	typ := r.Type
	if typ == "" {
		typ = InquiryTypeContact
	}
	return store.Document{
		"name":         r.Name,
		"email":        r.Email,
		"organization": r.Organization,
		"subject":      r.Subject,
		"message":      r.Message,
		"type":         typ,
		"product_id":   r.ProductID,
	}
}

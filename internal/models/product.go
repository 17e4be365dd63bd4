// internal/models/product.go
package models

import (
	"github.com/spf13/cast"

	"github.com/forgepeptides/forge-backend/internal/store"
)

// Product is a catalog record. ID is the store-assigned identifier in hex
// form; the remaining fields mirror the stored document one to one.
type Product struct {
	ID           string  `json:"id"`
	Name         string  `json:"name" validate:"required"`
	Sequence     string  `json:"sequence" validate:"required"`
	Purity       float64 `json:"purity" validate:"gte=0,lte=100"`
	Description  string  `json:"description"`
	Category     string  `json:"category" validate:"required"`
	Length       int     `json:"length" validate:"gte=1"`
	DatasheetURL string  `json:"datasheet_url"`
	Image        string  `json:"image"`
}

// Document returns the stored-field form of the product. The id and the
// timestamps are left out; the data-access layer assigns those.
func (p *Product) Document() store.Document {
	return store.Document{
		"name":          p.Name,
		"sequence":      p.Sequence,
		"purity":        p.Purity,
		"description":   p.Description,
		"category":      p.Category,
		"length":        p.Length,
		"datasheet_url": p.DatasheetURL,
		"image":         p.Image,
	}
}

// ProductFromDocument maps a stored document onto the API shape. Only the
// declared fields are copied; extra stored fields are dropped. Numeric
// fields are coerced because the store may hand back narrower integer or
// wider float types than the ones written.
func ProductFromDocument(doc store.Document) Product {
	id, _ := doc["_id"].(string)
	return Product{
		ID:           id,
		Name:         cast.ToString(doc["name"]),
		Sequence:     cast.ToString(doc["sequence"]),
		Purity:       cast.ToFloat64(doc["purity"]),
		Description:  cast.ToString(doc["description"]),
		Category:     cast.ToString(doc["category"]),
		Length:       cast.ToInt(doc["length"]),
		DatasheetURL: cast.ToString(doc["datasheet_url"]),
		Image:        cast.ToString(doc["image"]),
	}
}

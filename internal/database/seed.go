// internal/database/seed.go
package database

import (
	"context"
	"fmt"
	"log"

	"github.com/forgepeptides/forge-backend/internal/models"
	"github.com/forgepeptides/forge-backend/internal/store"
	"github.com/forgepeptides/forge-backend/internal/utils"
)

// SampleProducts returns the catalog the service seeds into an empty
// product collection.
func SampleProducts() []models.Product {
	return []models.Product{
		{
			Name:         "BPC-157",
			Sequence:     "Gly-Glu-Pro-Pro-Pro-Gly-Lys-Pro-Ala-Asp-Asp-Ala-Gly-Leu-Val",
			Purity:       98.5,
			Description:  ">98% purity, research-grade peptide",
			Category:     "Bioactive Peptides",
			Length:       15,
			DatasheetURL: "https://example.com/datasheets/bpc-157.pdf",
			Image:        "/vial.png",
		},
		{
			Name:         "GHRP-6",
			Sequence:     "His-DTrp-Ala-Trp-DPhe-Lys-NH2",
			Purity:       99.2,
			Description:  "HPLC purified, MS verified",
			Category:     "Bioactive Peptides",
			Length:       6,
			DatasheetURL: "https://example.com/datasheets/ghrp6.pdf",
			Image:        "/vial.png",
		},
		{
			Name:         "Magainin II",
			Sequence:     "GIGKFLHSAKKFGKAFVGEIMNS",
			Purity:       98.0,
			Description:  "Antibacterial peptide, >98%",
			Category:     "Antibacterial",
			Length:       23,
			DatasheetURL: "https://example.com/datasheets/magainin2.pdf",
			Image:        "/vial.png",
		},
		{
			Name:         "Palmitoyl Tripeptide-1",
			Sequence:     "Palmitoyl-Gly-His-Lys",
			Purity:       98.7,
			Description:  "Cosmetic grade, MS/HPLC documented",
			Category:     "Cosmetic",
			Length:       3,
			DatasheetURL: "https://example.com/datasheets/pal-ghk.pdf",
			Image:        "/vial.png",
		},
	}
}

// SeedSampleProducts populates an empty product collection with the sample
// catalog. A non-empty collection is left untouched. Per-product failures
// are logged and skipped; the rest of the batch still goes in.
func SeedSampleProducts(ctx context.Context, s store.Store) error {
	if s == nil {
		return nil
	}

	count, err := s.Count(ctx, models.CollectionProduct)
	if err != nil {
		return fmt.Errorf("failed to count products: %w", err)
	}
	if count > 0 {
		return nil
	}

	log.Println("Seeding sample products...")

	seeded := 0
	for _, product := range SampleProducts() {
		if err := utils.ValidateStruct(&product); err != nil {
			log.Printf("Warning: Skipping invalid sample product %s: %v", product.Name, err)
			continue
		}

		if _, err := store.CreateDocument(ctx, s, models.CollectionProduct, product.Document()); err != nil {
			log.Printf("Warning: Failed to seed product %s: %v", product.Name, err)
			continue
		}
		seeded++
	}

	log.Printf("Sample product seeding completed (%d seeded)", seeded)
	return nil
}

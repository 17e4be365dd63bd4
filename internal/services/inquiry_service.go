// internal/services/inquiry_service.go
package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/forgepeptides/forge-backend/internal/models"
	"github.com/forgepeptides/forge-backend/internal/store"
)

// InquiryService persists contact and quote inquiries.
type InquiryService struct {
	store store.Store
}

func NewInquiryService(st store.Store) *InquiryService {
	return &InquiryService{store: st}
}

// Submit stores a validated inquiry and returns its id. When the payload
// references a product, the product's name is denormalized onto the inquiry;
// any failure during that lookup (malformed id, missing product, store
// error) leaves the inquiry unenriched rather than blocking it. The insert
// itself is not atomic with the lookup.
func (s *InquiryService) Submit(ctx context.Context, req *models.SubmitInquiryRequest) (string, error) {
	doc := req.Document()

	if req.ProductID != "" && s.store != nil {
		if name, ok := s.productName(ctx, req.ProductID); ok {
			doc["product_name"] = name
		}
	}

	return store.CreateDocument(ctx, s.store, models.CollectionInquiry, doc)
}

func (s *InquiryService) productName(ctx context.Context, id string) (string, bool) {
	doc, err := s.store.FindByID(ctx, models.CollectionProduct, id)
	if err != nil {
		logrus.WithError(err).WithField("product_id", id).
			Warn("Inquiry product lookup failed, storing inquiry without product_name")
		return "", false
	}
	name, ok := doc["name"].(string)
	return name, ok && name != ""
}

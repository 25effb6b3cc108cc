package documents

import (
	"context"
	"fmt"
	"time"

	"keshwala/database/repository/docstore"
	"keshwala/models"
	"keshwala/services/result"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"
)

// NotAvailable is the failure message when no document store is configured.
const NotAvailable = "Database not available"

// TestimonialLimit caps the testimonials listing.
const TestimonialLimit = 10

// DefaultDocumentService implements DocumentService over a docstore.Store.
type DefaultDocumentService struct {
	store  docstore.Store
	logger *zap.Logger
	now    func() time.Time
}

// NewDocumentService returns a gateway over store. A nil store yields a
// gateway whose every call fails with NotAvailable.
func NewDocumentService(store docstore.Store, logger *zap.Logger) *DefaultDocumentService {
	return &DefaultDocumentService{store: store, logger: logger, now: time.Now}
}

// WithClock replaces the timestamp source.
func (s *DefaultDocumentService) WithClock(now func() time.Time) *DefaultDocumentService {
	s.now = now
	return s
}

func (s *DefaultDocumentService) AddDocument(ctx context.Context, collection string, data map[string]any) result.Result[string] {
	if s.store == nil {
		return result.Unavailable[string](NotAvailable)
	}
	now := s.now()
	doc := make(map[string]any, len(data)+2)
	for k, v := range data {
		doc[k] = v
	}
	doc[models.FieldCreatedAt] = now
	doc[models.FieldUpdatedAt] = now

	id, err := s.store.Add(ctx, collection, doc)
	if err != nil {
		s.logger.Warn("AddDocument failed", zap.String("collection", collection), zap.Error(err))
		return result.Backend[string](err)
	}
	return result.Ok(id)
}

func (s *DefaultDocumentService) GetDocuments(ctx context.Context, collection string, constraints ...docstore.Constraint) result.Result[[]docstore.Document] {
	if s.store == nil {
		return result.Unavailable[[]docstore.Document](NotAvailable)
	}
	docs, err := s.store.Query(ctx, collection, docstore.Build(constraints...))
	if err != nil {
		s.logger.Warn("GetDocuments failed", zap.String("collection", collection), zap.Error(err))
		return result.Backend[[]docstore.Document](err)
	}
	return result.Ok(docs)
}

func (s *DefaultDocumentService) UpdateDocument(ctx context.Context, collection, id string, data map[string]any) result.Result[struct{}] {
	if s.store == nil {
		return result.Unavailable[struct{}](NotAvailable)
	}
	doc := make(map[string]any, len(data)+1)
	for k, v := range data {
		doc[k] = v
	}
	doc[models.FieldUpdatedAt] = s.now()

	if err := s.store.Update(ctx, collection, id, doc); err != nil {
		s.logger.Warn("UpdateDocument failed", zap.String("collection", collection), zap.String("id", id), zap.Error(err))
		return result.Backend[struct{}](err)
	}
	return result.Ok(struct{}{})
}

func (s *DefaultDocumentService) DeleteDocument(ctx context.Context, collection, id string) result.Result[struct{}] {
	if s.store == nil {
		return result.Unavailable[struct{}](NotAvailable)
	}
	if err := s.store.Delete(ctx, collection, id); err != nil {
		s.logger.Warn("DeleteDocument failed", zap.String("collection", collection), zap.String("id", id), zap.Error(err))
		return result.Backend[struct{}](err)
	}
	return result.Ok(struct{}{})
}

// AddBooking stores a booking request. Status is forced to pending.
func (s *DefaultDocumentService) AddBooking(ctx context.Context, booking models.Booking) result.Result[string] {
	booking.Status = models.BookingStatusPending
	return s.AddDocument(ctx, models.CollectionBookings, booking.Fields())
}

// GetBookings lists bookings, restricted to userID when it is non-empty.
func (s *DefaultDocumentService) GetBookings(ctx context.Context, userID string) result.Result[[]models.Booking] {
	var constraints []docstore.Constraint
	if userID != "" {
		constraints = append(constraints, docstore.Where("userId", docstore.OpEqual, userID))
	}
	return decodeAll[models.Booking](s.GetDocuments(ctx, models.CollectionBookings, constraints...), func(b *models.Booking, id string) { b.ID = id })
}

// AddContactMessage stores a contact enquiry. Status is forced to new.
func (s *DefaultDocumentService) AddContactMessage(ctx context.Context, msg models.ContactMessage) result.Result[string] {
	msg.Status = models.MessageStatusNew
	return s.AddDocument(ctx, models.CollectionContactMessages, msg.Fields())
}

func (s *DefaultDocumentService) GetServices(ctx context.Context) result.Result[[]models.Service] {
	docs := s.GetDocuments(ctx, models.CollectionServices, docstore.OrderBy(models.FieldCreatedAt, docstore.Desc))
	return decodeAll[models.Service](docs, func(v *models.Service, id string) { v.ID = id })
}

func (s *DefaultDocumentService) GetWigs(ctx context.Context) result.Result[[]models.Wig] {
	docs := s.GetDocuments(ctx, models.CollectionWigs, docstore.OrderBy(models.FieldCreatedAt, docstore.Desc))
	return decodeAll[models.Wig](docs, func(v *models.Wig, id string) { v.ID = id })
}

// GetTestimonials returns the highest rated testimonials first.
func (s *DefaultDocumentService) GetTestimonials(ctx context.Context) result.Result[[]models.Testimonial] {
	docs := s.GetDocuments(ctx, models.CollectionTestimonials,
		docstore.OrderBy("rating", docstore.Desc),
		docstore.Limit(TestimonialLimit),
	)
	return decodeAll[models.Testimonial](docs, func(v *models.Testimonial, id string) { v.ID = id })
}

func (s *DefaultDocumentService) GetBlogPosts(ctx context.Context) result.Result[[]models.BlogPost] {
	docs := s.GetDocuments(ctx, models.CollectionBlogPosts, docstore.OrderBy(models.FieldCreatedAt, docstore.Desc))
	return decodeAll[models.BlogPost](docs, func(v *models.BlogPost, id string) { v.ID = id })
}

// decodeAll turns raw documents into typed values using their firestore tags.
// A document that cannot be decoded fails the whole read.
func decodeAll[T any](docs result.Result[[]docstore.Document], setID func(*T, string)) result.Result[[]T] {
	raw, rerr := docs.Unwrap()
	if rerr != nil {
		return result.Fail[[]T](rerr)
	}
	out := make([]T, 0, len(raw))
	for _, d := range raw {
		var v T
		if err := Decode(d.Data, &v); err != nil {
			return result.Backend[[]T](fmt.Errorf("decode document %s: %w", d.ID, err))
		}
		setID(&v, d.ID)
		out = append(out, v)
	}
	return result.Ok(out)
}

// Decode copies a document's fields into out, matching on firestore tags.
func Decode(data map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "firestore",
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	return dec.Decode(data)
}

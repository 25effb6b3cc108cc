package documents

import (
	"context"

	"keshwala/database/repository/docstore"
	"keshwala/models"
	"keshwala/services/result"
)

// DocumentService is the gateway to the hosted document store. Every method
// reports its outcome as a result.Result; none of them retries.
type DocumentService interface {
	AddDocument(ctx context.Context, collection string, data map[string]any) result.Result[string]
	GetDocuments(ctx context.Context, collection string, constraints ...docstore.Constraint) result.Result[[]docstore.Document]
	UpdateDocument(ctx context.Context, collection, id string, data map[string]any) result.Result[struct{}]
	DeleteDocument(ctx context.Context, collection, id string) result.Result[struct{}]

	AddBooking(ctx context.Context, booking models.Booking) result.Result[string]
	GetBookings(ctx context.Context, userID string) result.Result[[]models.Booking]
	AddContactMessage(ctx context.Context, msg models.ContactMessage) result.Result[string]
	GetServices(ctx context.Context) result.Result[[]models.Service]
	GetWigs(ctx context.Context) result.Result[[]models.Wig]
	GetTestimonials(ctx context.Context) result.Result[[]models.Testimonial]
	GetBlogPosts(ctx context.Context) result.Result[[]models.BlogPost]
}

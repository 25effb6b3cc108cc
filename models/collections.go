package models

// Collection names in the document store. These are the only collections the
// application ever addresses.
const (
	CollectionBookings        = "bookings"
	CollectionContactMessages = "contactMessages"
	CollectionServices        = "services"
	CollectionWigs            = "wigs"
	CollectionTestimonials    = "testimonials"
	CollectionBlogPosts       = "blogPosts"
)

// Common document fields stamped by the document gateway.
const (
	FieldCreatedAt = "createdAt"
	FieldUpdatedAt = "updatedAt"
)

package models

import "time"

// Service is a bookable service shown in the services section.
type Service struct {
	ID          string    `json:"id" firestore:"-"`
	Title       string    `json:"title" firestore:"title"`
	Description string    `json:"description" firestore:"description"`
	Price       string    `json:"price" firestore:"price"`
	Category    string    `json:"category" firestore:"category"` // haircare, wigs, event, subscription
	Features    []string  `json:"features" firestore:"features"`
	Image       string    `json:"image,omitempty" firestore:"image,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitempty" firestore:"createdAt"`
}

// Wig is an item of the wigs & hair solutions collection.
type Wig struct {
	ID          string    `json:"id" firestore:"-"`
	Name        string    `json:"name" firestore:"name"`
	Description string    `json:"description" firestore:"description"`
	Price       string    `json:"price" firestore:"price"`
	Type        string    `json:"type" firestore:"type"` // Synthetic, Human Hair, Hair Extension
	Rating      float64   `json:"rating" firestore:"rating"`
	Reviews     int       `json:"reviews" firestore:"reviews"`
	Features    []string  `json:"features,omitempty" firestore:"features,omitempty"`
	Image       string    `json:"image,omitempty" firestore:"image,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitempty" firestore:"createdAt"`
}

// Testimonial is a client review.
type Testimonial struct {
	ID        string    `json:"id" firestore:"-"`
	Name      string    `json:"name" firestore:"name"`
	Location  string    `json:"location" firestore:"location"`
	Rating    float64   `json:"rating" firestore:"rating"`
	Text      string    `json:"text" firestore:"text"`
	Service   string    `json:"service,omitempty" firestore:"service,omitempty"`
	Image     string    `json:"image,omitempty" firestore:"image,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty" firestore:"createdAt"`
}

// BlogPost is a teaser for an article in the blog section.
type BlogPost struct {
	ID        string    `json:"id" firestore:"-"`
	Title     string    `json:"title" firestore:"title"`
	Excerpt   string    `json:"excerpt" firestore:"excerpt"`
	Category  string    `json:"category" firestore:"category"`
	Date      string    `json:"date" firestore:"date"`
	ReadTime  string    `json:"readTime" firestore:"readTime"`
	Author    string    `json:"author" firestore:"author"`
	Image     string    `json:"image,omitempty" firestore:"image,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty" firestore:"createdAt"`
}

// Fields returns the stored fields of a service. Timestamps are left to the
// document gateway.
func (s Service) Fields() map[string]any {
	return withImage(map[string]any{
		"title":       s.Title,
		"description": s.Description,
		"price":       s.Price,
		"category":    s.Category,
		"features":    s.Features,
	}, s.Image)
}

func (w Wig) Fields() map[string]any {
	fields := map[string]any{
		"name":        w.Name,
		"description": w.Description,
		"price":       w.Price,
		"type":        w.Type,
		"rating":      w.Rating,
		"reviews":     w.Reviews,
	}
	if len(w.Features) > 0 {
		fields["features"] = w.Features
	}
	return withImage(fields, w.Image)
}

func (t Testimonial) Fields() map[string]any {
	fields := map[string]any{
		"name":     t.Name,
		"location": t.Location,
		"rating":   t.Rating,
		"text":     t.Text,
	}
	if t.Service != "" {
		fields["service"] = t.Service
	}
	return withImage(fields, t.Image)
}

func (p BlogPost) Fields() map[string]any {
	return withImage(map[string]any{
		"title":    p.Title,
		"excerpt":  p.Excerpt,
		"category": p.Category,
		"date":     p.Date,
		"readTime": p.ReadTime,
		"author":   p.Author,
	}, p.Image)
}

func withImage(fields map[string]any, image string) map[string]any {
	if image != "" {
		fields["image"] = image
	}
	return fields
}

package catalog

import "keshwala/models"

// The fallback catalog is shown whenever the document store has nothing to
// offer. The seed tool writes the same items to the store.

var fallbackServices = []models.Service{
	{ID: "1", Title: "Hair Cut & Styling", Description: "Professional haircuts and styling tailored to your face shape and lifestyle.", Price: "₹800", Category: "haircare", Features: []string{"Expert Consultation", "Modern Techniques", "Home Service"}},
	{ID: "2", Title: "Hair Coloring", Description: "Beautiful hair coloring services with premium products and expert application.", Price: "₹1,500", Category: "haircare", Features: []string{"Color Consultation", "Premium Products", "Aftercare Tips"}},
	{ID: "3", Title: "Wig Fitting & Styling", Description: "Professional wig fitting, cutting, and styling for the perfect look.", Price: "₹1,200", Category: "wigs", Features: []string{"Custom Fitting", "Professional Styling", "Maintenance Tips"}},
	{ID: "4", Title: "Bridal Hair & Makeup", Description: "Complete bridal hair and makeup services for your special day.", Price: "₹5,000", Category: "event", Features: []string{"Trial Session", "Wedding Day Service", "Touch-up Kit"}},
	{ID: "5", Title: "Monthly Hair Care", Description: "Regular hair care subscription with personalized treatments and maintenance.", Price: "₹2,500/mo", Category: "subscription", Features: []string{"Monthly Visits", "Personalized Care", "Priority Booking"}},
	{ID: "6", Title: "Wig Maintenance", Description: "Regular wig cleaning, styling, and maintenance services.", Price: "₹600", Category: "wigs", Features: []string{"Deep Cleaning", "Restyling", "Storage Tips"}},
}

var fallbackWigs = []models.Wig{
	{ID: "1", Name: "Silky Straight Wig", Type: "Synthetic", Price: "₹3,500", Description: "Luxurious straight hair with natural shine and movement", Features: []string{"Heat Resistant", "Easy Maintenance", "Natural Look"}, Rating: 4.9, Reviews: 127},
	{ID: "2", Name: "Curly Bob Wig", Type: "Human Hair", Price: "₹8,500", Description: "Beautiful curly bob with bounce and volume", Features: []string{"100% Human Hair", "Stylable", "Long Lasting"}, Rating: 4.8, Reviews: 89},
	{ID: "3", Name: "Wavy Long Wig", Type: "Synthetic", Price: "₹4,200", Description: "Elegant wavy hair perfect for special occasions", Features: []string{"Tangle Free", "Color Safe", "Comfortable Cap"}, Rating: 4.7, Reviews: 156},
	{ID: "4", Name: "Pixie Cut Wig", Type: "Human Hair", Price: "₹6,800", Description: "Modern pixie cut with texture and style", Features: []string{"Professional Grade", "Easy Styling", "Natural Hairline"}, Rating: 4.9, Reviews: 73},
	{ID: "5", Name: "Bridal Wig", Type: "Human Hair", Price: "₹12,000", Description: "Special bridal collection with premium quality", Features: []string{"Wedding Ready", "Luxury Quality", "Custom Styling"}, Rating: 5.0, Reviews: 45},
	{ID: "6", Name: "Hair Patch", Type: "Hair Extension", Price: "₹2,500", Description: "Hair patches for thinning areas and volume", Features: []string{"Natural Blend", "Easy Application", "Comfortable"}, Rating: 4.6, Reviews: 98},
}

var fallbackTestimonials = []models.Testimonial{
	{ID: "1", Name: "Priya Mehta", Location: "Mumbai", Rating: 5, Service: "Hair Cut & Styling", Text: "Keshwala transformed my hair completely! The stylist was so professional and made me feel comfortable throughout the entire process. I love my new look!"},
	{ID: "2", Name: "Anita Sharma", Location: "Delhi", Rating: 5, Service: "Wig Fitting", Text: "The wig fitting service was exceptional. They helped me find the perfect wig that looks so natural. I feel confident and beautiful again."},
	{ID: "3", Name: "Rekha Patel", Location: "Bangalore", Rating: 5, Service: "Hair Coloring", Text: "I was skeptical about at-home services, but Keshwala exceeded my expectations. The quality is amazing and the convenience is unbeatable."},
	{ID: "4", Name: "Sunita Singh", Location: "Pune", Rating: 5, Service: "Bridal Hair & Makeup", Text: "The bridal hair service was perfect! They understood exactly what I wanted and delivered beyond my expectations. Highly recommended!"},
	{ID: "5", Name: "Meera Joshi", Location: "Chennai", Rating: 5, Service: "Monthly Hair Care", Text: "Professional, punctual, and amazing results. The monthly hair care subscription has been a game-changer for me."},
	{ID: "6", Name: "Kavita Reddy", Location: "Hyderabad", Rating: 5, Service: "Wig Maintenance", Text: "The team is so friendly and skilled. They made me feel special and the results speak for themselves. Will definitely book again!"},
}

var fallbackBlogPosts = []models.BlogPost{
	{ID: "1", Title: "5 Essential Hair Care Tips for Winter", Excerpt: "Keep your hair healthy and beautiful during the cold winter months with these expert tips.", Category: "Hair Care", Date: "Dec 15, 2023", ReadTime: "5 min read", Author: "Priya Sharma"},
	{ID: "2", Title: "How to Choose the Perfect Wig for Your Face Shape", Excerpt: "Find the ideal wig style that complements your face shape and enhances your natural beauty.", Category: "Wig Care", Date: "Dec 10, 2023", ReadTime: "7 min read", Author: "Rekha Singh"},
	{ID: "3", Title: "Bridal Hair Trends for 2024", Excerpt: "Discover the latest bridal hair trends and styles that will make you look stunning on your special day.", Category: "Bridal", Date: "Dec 5, 2023", ReadTime: "6 min read", Author: "Anita Patel"},
	{ID: "4", Title: "At-Home Hair Color Maintenance Guide", Excerpt: "Learn how to maintain your hair color at home and keep it looking fresh between salon visits.", Category: "Hair Care", Date: "Nov 28, 2023", ReadTime: "8 min read", Author: "Priya Sharma"},
	{ID: "5", Title: "Wig Styling Techniques for Beginners", Excerpt: "Master the basics of wig styling with these simple techniques that anyone can learn.", Category: "Wig Care", Date: "Nov 20, 2023", ReadTime: "4 min read", Author: "Rekha Singh"},
	{ID: "6", Title: "The Science Behind Hair Growth", Excerpt: "Understand the biology of hair growth and learn natural ways to promote healthy hair growth.", Category: "Hair Care", Date: "Nov 15, 2023", ReadTime: "9 min read", Author: "Anita Patel"},
}

// FallbackServices returns a copy of the built-in services.
func FallbackServices() []models.Service { return append([]models.Service(nil), fallbackServices...) }

// FallbackWigs returns a copy of the built-in wigs.
func FallbackWigs() []models.Wig { return append([]models.Wig(nil), fallbackWigs...) }

// FallbackTestimonials returns a copy of the built-in testimonials.
func FallbackTestimonials() []models.Testimonial {
	return append([]models.Testimonial(nil), fallbackTestimonials...)
}

// FallbackBlogPosts returns a copy of the built-in blog posts.
func FallbackBlogPosts() []models.BlogPost { return append([]models.BlogPost(nil), fallbackBlogPosts...) }

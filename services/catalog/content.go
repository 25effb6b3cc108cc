package catalog

import (
	"strings"

	"keshwala/models"
)

// Content is the static copy of the single-page site.
type Content struct {
	Sections        []models.Section
	HeroStats       []models.Stat
	Steps           []models.Step
	Team            []models.TeamMember
	AboutStats      []models.Stat
	Values          []models.Value
	ClientStats     []models.Stat
	CarePlans       []models.CarePlan
	ContactInfo     []models.ContactInfo
	QuickLinks      []models.Link
	FooterServices  []string
	FloatingActions []models.FloatingAction
	ServiceTypes    []string
	TimeSlots       []string
}

// Sections in render order.
var Sections = []models.Section{
	{ID: "home", Title: "Home"},
	{ID: "services", Title: "Services"},
	{ID: "wigs", Title: "Wigs & Hair Solutions"},
	{ID: "how-it-works", Title: "How It Works"},
	{ID: "booking", Title: "Book Appointment"},
	{ID: "about", Title: "About Us"},
	{ID: "blog", Title: "Blog"},
	{ID: "testimonials", Title: "Testimonials"},
	{ID: "contact", Title: "Contact"},
	{ID: "footer", Title: "Footer"},
}

// SiteContent returns the page copy. phone is the dialable number
// ("+919876543210"), whatsapp the wa.me number ("919876543210").
func SiteContent(phone, whatsapp string) Content {
	return Content{
		Sections: Sections,
		HeroStats: []models.Stat{
			{Value: "500+", Label: "Happy Clients"},
			{Value: "4.9", Label: "Rating"},
			{Value: "50+", Label: "Expert Stylists"},
		},
		Steps: []models.Step{
			{Number: "01", Title: "Choose Service", Description: "Browse our services and select what you need - haircut, styling, wig care, or special event services."},
			{Number: "02", Title: "Pick Date & Time", Description: "Select your preferred date and time slot. We offer flexible scheduling to fit your busy lifestyle."},
			{Number: "03", Title: "Professional Visits You", Description: "Our expert stylist arrives at your doorstep with all necessary tools and premium products."},
			{Number: "04", Title: "Enjoy Your New Look", Description: "Relax and enjoy your transformation. We ensure you leave feeling confident and beautiful."},
		},
		Team: []models.TeamMember{
			{Name: "Priya Sharma", Role: "Founder & Lead Stylist", Experience: "8+ years", Specialty: "Bridal Hair & Wig Styling", Description: "Passionate about making every client feel beautiful and confident."},
			{Name: "Anita Patel", Role: "Senior Hair Stylist", Experience: "6+ years", Specialty: "Hair Coloring & Cutting", Description: "Expert in modern hair techniques and color trends."},
			{Name: "Rekha Singh", Role: "Wig Specialist", Experience: "5+ years", Specialty: "Wig Fitting & Maintenance", Description: "Dedicated to helping clients find their perfect wig solution."},
		},
		AboutStats: []models.Stat{
			{Value: "500+", Label: "Happy Clients"},
			{Value: "50+", Label: "Expert Stylists"},
			{Value: "4.9", Label: "Average Rating"},
			{Value: "1000+", Label: "Services Delivered"},
		},
		Values: []models.Value{
			{Title: "Quality", Description: "We use only the finest products and techniques to ensure exceptional results."},
			{Title: "Comfort", Description: "Your comfort and convenience are our top priorities in every service."},
			{Title: "Trust", Description: "We build lasting relationships based on trust, reliability, and transparency."},
		},
		ClientStats: []models.Stat{
			{Value: "500+", Label: "Happy Clients"},
			{Value: "4.9/5", Label: "Average Rating"},
			{Value: "1000+", Label: "Services Delivered"},
			{Value: "98%", Label: "Client Satisfaction"},
		},
		CarePlans: []models.CarePlan{
			{Name: "Basic Care", Price: "₹500/mo", Features: []string{"Monthly Cleaning", "Basic Styling", "Storage Tips"}},
			{Name: "Premium Care", Price: "₹1,200/mo", Features: []string{"Bi-weekly Maintenance", "Professional Styling", "Deep Cleaning"}},
			{Name: "Luxury Care", Price: "₹2,000/mo", Features: []string{"Weekly Maintenance", "Custom Styling", "Priority Service"}},
		},
		ContactInfo: []models.ContactInfo{
			{Title: "Phone", Details: []string{"+91 98765 43210", "+91 87654 32109"}},
			{Title: "Email", Details: []string{"hello@keshwala.com", "support@keshwala.com"}},
			{Title: "Service Areas", Details: []string{"Mumbai", "Delhi", "Bangalore", "Pune", "Chennai"}},
			{Title: "Working Hours", Details: []string{"Mon - Sat: 9:00 AM - 8:00 PM", "Sunday: 10:00 AM - 6:00 PM"}},
		},
		QuickLinks: []models.Link{
			{Name: "Home", Href: "#home"},
			{Name: "Services", Href: "#services"},
			{Name: "Wigs & Hair Solutions", Href: "#wigs"},
			{Name: "Book Appointment", Href: "#booking"},
			{Name: "About Us", Href: "#about"},
			{Name: "Blog", Href: "#blog"},
			{Name: "Contact", Href: "#contact"},
		},
		FooterServices:  models.BookableServices[:6],
		FloatingActions: FloatingActions(phone, whatsapp),
		ServiceTypes:    models.BookableServices,
		TimeSlots:       models.BookingTimeSlots,
	}
}

// FloatingActions are the quick actions of the floating control: jump to the
// booking form, dial, and open a chat.
func FloatingActions(phone, whatsapp string) []models.FloatingAction {
	return []models.FloatingAction{
		{Label: "Book Appointment", Href: "#booking"},
		{Label: "Call Now", Href: "tel:" + strings.ReplaceAll(phone, " ", "")},
		{Label: "WhatsApp", Href: "https://wa.me/" + strings.TrimPrefix(strings.ReplaceAll(whatsapp, " ", ""), "+"), Target: "_blank"},
	}
}

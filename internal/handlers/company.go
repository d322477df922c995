package handlers

// Company is the contact block shared by the footer, the CTA and the
// contact page.
type Company struct {
	Name        string
	Phone       string
	Email       string
	Address     []string
	Hours       string
	MapEmbedURL string
	MapTitle    string
	Logo        string
}

// Almil is the company shown across the site.
var Almil = Company{
	Name:        "Almil Systems India",
	Phone:       "+91 9024268374",
	Email:       "info@almil.org",
	Address:     []string{"N 286, New Atish Market", "Jaipur, Rajasthan 302020", "India"},
	Hours:       "Mon-Sat: 9:00 AM - 6:00 PM",
	MapEmbedURL: "https://www.google.com/maps/embed?pb=!1m18!1m12!1m3!1d3558.2!2d75.8!3d26.9!2m3!1f0!2f0!3f0!3m2!1i1024!2i768!4f13.1!3m3!1m2!1s0x0%3A0x0!2zMjbCsDU0JzAwLjAiTiA3NcKwNDgnMDAuMCJF!5e0!3m2!1sen!2sin!4v1234567890",
	MapTitle:    "Almil Systems Location in Jaipur",
	Logo:        "/assets/images/logo.png",
}

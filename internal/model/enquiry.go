package model

// Enquiry is a public contact-form submission relayed by email
type Enquiry struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Pickup  string `json:"pickup"`
	Drop    string `json:"drop"`
	Message string `json:"message"`
}

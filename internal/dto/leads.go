package dto

// LeadRequest is the payload for POST /api/leads.
type LeadRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
	Message string `json:"message"`
	Source  string `json:"source"`
}

// ContactRequest is the payload for POST /api/contact.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// CheckoutCustomer identifies the buyer on a checkout request.
type CheckoutCustomer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CheckoutRequest is the payload for POST /api/checkout.
type CheckoutRequest struct {
	PlanID     string           `json:"planId"`
	Customer   CheckoutCustomer `json:"customer"`
	SuccessURL string           `json:"successUrl"`
	CancelURL  string           `json:"cancelUrl"`
}

// CheckoutSession is the provider response passed back to the frontend.
type CheckoutSession struct {
	CheckoutURL string `json:"checkoutUrl"`
	SessionID   string `json:"sessionId"`
}

package models

// Dog is one entry in the boopable dog catalog
type Dog struct {
	ID  string `json:"id"`
	URL string `json:"url"`
	Alt string `json:"alt"`
}

// SendBoopRequest is the form payload submitted by a sender
type SendBoopRequest struct {
	Dog            Dog    `json:"dog"`
	SenderName     string `json:"senderName"`
	SenderEmail    string `json:"senderEmail"`
	RecipientName  string `json:"recipientName"`
	RecipientEmail string `json:"recipientEmail"`
	Message        string `json:"message"`
}

// SendBoopResponse acknowledges that a verification email was sent
type SendBoopResponse struct {
	Success             bool   `json:"success"`
	PendingVerification bool   `json:"pendingVerification"`
	Message             string `json:"message"`
}

// VerifyBoopResponse is returned once a boop reached its recipient
type VerifyBoopResponse struct {
	Success       bool   `json:"success"`
	RecipientName string `json:"recipientName"`
	DogID         string `json:"dogId"`
}

// ContactRequest is a contact form submission
type ContactRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Comments string `json:"comments"`
}

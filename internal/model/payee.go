package model

// Payee is a saved transfer recipient.
type Payee struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Mask string `json:"mask"` // e.g. "Checking ••2198"
}

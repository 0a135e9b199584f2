package model

// CreditsResponse is returned when fetching the current balance.
type CreditsResponse struct {
	Username string `json:"username"`
	Credits  int    `json:"credits"`
}

// UseCreditResponse is returned after a debit attempt.
type UseCreditResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Credits int    `json:"credits"`
}

// BuyCreditsRequest represents a credit purchase. The amount is trusted;
// payment settlement happens outside this service.
type BuyCreditsRequest struct {
	Amount int `json:"amount"`
}

// BuyCreditsResponse is returned after a successful purchase.
type BuyCreditsResponse struct {
	Message string `json:"message"`
	Credits int    `json:"credits"`
}

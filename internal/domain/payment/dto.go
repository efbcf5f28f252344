package payment

// SummaryResponse is the payment overview the contractor dashboard shows.
type SummaryResponse struct {
	TotalAmount float64 `json:"totalAmount"`
	DaysWorked  int     `json:"daysWorked"`
	DailyRate   float64 `json:"dailyRate"`
}

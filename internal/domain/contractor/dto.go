package contractor

// ProfileResponse is what the mobile app shows on the contractor profile
// screen. The profile may be backed by a contractor row or, for newly
// registered accounts, synthesized from the user row.
type ProfileResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	CompanyName string `json:"companyName"`
	IsActive    bool   `json:"isActive"`
}

type DashboardResponse struct {
	Name        string   `json:"name"`
	Company     *string  `json:"company"`
	TotalBudget *float64 `json:"totalBudget"`
	Active      bool     `json:"active"`
}

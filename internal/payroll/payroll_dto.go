package payroll

import "github.com/shopspring/decimal"

type UpsertEntryRequest struct {
	UserID     string `json:"user_id" binding:"required"`
	Month      string `json:"month" binding:"required"`
	BaseSalary string `json:"base_salary" binding:"required"`
	Bonus      string `json:"bonus"`
	Deductions string `json:"deductions"`
	CustomSlip string `json:"custom_slip"`
	FileName   string `json:"file_name"`
}

type EntryResponse struct {
	ID         string `json:"id"`
	UserID     string `json:"userId"`
	UserName   string `json:"userName,omitempty"`
	Month      string `json:"month"`
	BaseSalary string `json:"baseSalary"`
	Bonus      string `json:"bonus"`
	Deductions string `json:"deductions"`
	NetSalary  string `json:"netSalary"`
	Status     string `json:"status"`
	FileName   string `json:"fileName,omitempty"`
	HasSlip    bool   `json:"hasSlip"`
}

func mapToResponse(e Entry, userName string) EntryResponse {
	return EntryResponse{
		ID:         e.ID,
		UserID:     e.UserID,
		UserName:   userName,
		Month:      e.Month,
		BaseSalary: e.BaseSalary.StringFixed(2),
		Bonus:      e.Bonus.StringFixed(2),
		Deductions: e.Deductions.StringFixed(2),
		NetSalary:  e.NetSalary.StringFixed(2),
		Status:     e.Status,
		FileName:   e.FileName,
		HasSlip:    e.CustomSlip != "",
	}
}

// parseAmount accepts a decimal string; empty means zero.
func parseAmount(v string) (decimal.Decimal, bool) {
	if v == "" {
		return decimal.Zero, true
	}
	d, err := decimal.NewFromString(v)
	if err != nil || d.IsNegative() {
		return decimal.Zero, false
	}
	return d, true
}

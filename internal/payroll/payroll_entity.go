package payroll

import "github.com/shopspring/decimal"

const (
	StatusPaid       = "Paid"
	StatusProcessing = "Processing"
)

// Entry is one user's payroll for one month ("YYYY-MM"). Net salary is
// always derived, never supplied by a client. CustomSlip holds an uploaded
// payslip document as base64 when present.
type Entry struct {
	ID         string
	UserID     string
	Month      string
	BaseSalary decimal.Decimal
	Bonus      decimal.Decimal
	Deductions decimal.Decimal
	NetSalary  decimal.Decimal
	Status     string
	CustomSlip string
	FileName   string
}

func (e *Entry) recomputeNet() {
	e.NetSalary = e.BaseSalary.Add(e.Bonus).Sub(e.Deductions)
}

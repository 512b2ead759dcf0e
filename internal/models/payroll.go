package models

// PayrollStatus enumerates the processing states of a salary slip.
type PayrollStatus string

const (
	PayrollStatusDraft     PayrollStatus = "draft"
	PayrollStatusProcessed PayrollStatus = "processed"
	PayrollStatusOnHold    PayrollStatus = "on_hold"
	PayrollStatusPaid      PayrollStatus = "paid"
)

// PayrollSlip represents a monthly salary slip.
type PayrollSlip struct {
	ID         string        `json:"id"`
	Employee   string        `json:"employee"`
	Department string        `json:"department"`
	Month      string        `json:"month"`
	Basic      float64       `json:"basic"`
	Allowances float64       `json:"allowances"`
	Deductions float64       `json:"deductions"`
	NetPay     float64       `json:"net_pay"`
	Status     PayrollStatus `json:"status"`
}

// Recalculate derives NetPay from the slip components.
func (p PayrollSlip) Recalculate() PayrollSlip {
	p.NetPay = p.Basic + p.Allowances - p.Deductions
	return p
}

package payroll

import (
	"bytes"
	"encoding/base64"
	"html/template"
	"strings"

	"hr-panel/internal/user"
)

var payslipTmpl = template.Must(template.New("payslip").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Payslip {{.Month}} - {{.Name}}</title>
<style>
body { font-family: Arial, sans-serif; margin: 40px; color: #1f2937; }
h1 { font-size: 20px; border-bottom: 2px solid #1f2937; padding-bottom: 8px; }
table { width: 100%; border-collapse: collapse; margin-top: 16px; }
td, th { border: 1px solid #d1d5db; padding: 8px 12px; text-align: left; }
th { background: #f3f4f6; }
.net { font-weight: bold; background: #f3f4f6; }
</style>
</head>
<body>
<h1>Payslip &mdash; {{.Month}}</h1>
<table>
<tr><th>Employee</th><td>{{.Name}}</td></tr>
<tr><th>Employee ID</th><td>{{.UserID}}</td></tr>
<tr><th>Department</th><td>{{.Department}}</td></tr>
<tr><th>Designation</th><td>{{.Designation}}</td></tr>
</table>
<table>
<tr><th>Component</th><th>Amount</th></tr>
<tr><td>Base Salary</td><td>{{.BaseSalary}}</td></tr>
<tr><td>Bonus</td><td>{{.Bonus}}</td></tr>
<tr><td>Deductions</td><td>-{{.Deductions}}</td></tr>
<tr class="net"><td>Net Salary</td><td>{{.NetSalary}}</td></tr>
</table>
</body>
</html>
`))

type payslipData struct {
	Name        string
	UserID      string
	Department  string
	Designation string
	Month       string
	BaseSalary  string
	Bonus       string
	Deductions  string
	NetSalary   string
}

func renderPayslip(e Entry, u user.User) ([]byte, error) {
	var buf bytes.Buffer
	err := payslipTmpl.Execute(&buf, payslipData{
		Name:        u.Name,
		UserID:      u.ID,
		Department:  u.Department,
		Designation: string(u.Role),
		Month:       e.Month,
		BaseSalary:  e.BaseSalary.StringFixed(2),
		Bonus:       e.Bonus.StringFixed(2),
		Deductions:  e.Deductions.StringFixed(2),
		NetSalary:   e.NetSalary.StringFixed(2),
	})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// decodeSlip accepts raw base64 as well as data URLs from browser uploads.
func decodeSlip(v string) ([]byte, error) {
	if i := strings.Index(v, ","); i >= 0 && strings.HasPrefix(v, "data:") {
		v = v[i+1:]
	}
	return base64.StdEncoding.DecodeString(v)
}

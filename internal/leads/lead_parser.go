package leads

import (
	"io"
	"strings"

	leaderrors "hr-panel/internal/leads/errors"

	"github.com/xuri/excelize/v2"
)

// ParsedLead is a raw row from pasted text or a spreadsheet, before
// assignment. Rows without a name are dropped by the parsers.
type ParsedLead struct {
	Name  string
	Email string
	Phone string
}

// ParseText reads line-delimited "Name, Email, Phone" input. Missing
// trailing fields are tolerated.
func ParseText(input string) []ParsedLead {
	out := make([]ParsedLead, 0)
	for _, line := range strings.Split(input, "\n") {
		parts := strings.Split(line, ",")
		row := ParsedLead{Name: strings.TrimSpace(parts[0])}
		if len(parts) > 1 {
			row.Email = strings.TrimSpace(parts[1])
		}
		if len(parts) > 2 {
			row.Phone = strings.TrimSpace(parts[2])
		}
		if row.Name == "" {
			continue
		}
		out = append(out, row)
	}
	return out
}

// ParseWorkbook reads the first sheet of an xlsx file. Columns are matched
// by fuzzy header names: the first header containing "name", "email" or
// "mail", and "phone", "contact" or "mobile" respectively.
func ParseWorkbook(r io.Reader) ([]ParsedLead, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, leaderrors.ErrUnreadableWorkbook
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, leaderrors.ErrUnreadableWorkbook
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, leaderrors.ErrUnreadableWorkbook
	}
	if len(rows) == 0 {
		return nil, leaderrors.ErrNoValidRows
	}

	nameCol, emailCol, phoneCol := matchColumns(rows[0])
	if nameCol < 0 {
		return nil, leaderrors.ErrNoValidRows
	}

	out := make([]ParsedLead, 0, len(rows)-1)
	for _, row := range rows[1:] {
		lead := ParsedLead{
			Name:  cell(row, nameCol),
			Email: cell(row, emailCol),
			Phone: cell(row, phoneCol),
		}
		if lead.Name == "" {
			continue
		}
		out = append(out, lead)
	}
	return out, nil
}

func matchColumns(header []string) (nameCol, emailCol, phoneCol int) {
	nameCol, emailCol, phoneCol = -1, -1, -1
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(h))
		switch {
		case nameCol < 0 && strings.Contains(h, "name"):
			nameCol = i
		case emailCol < 0 && (strings.Contains(h, "email") || strings.Contains(h, "mail")):
			emailCol = i
		case phoneCol < 0 && (strings.Contains(h, "phone") || strings.Contains(h, "contact") || strings.Contains(h, "mobile")):
			phoneCol = i
		}
	}
	return nameCol, emailCol, phoneCol
}

func cell(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}

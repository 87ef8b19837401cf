package attendance

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"hr-panel/internal/domain"
)

// csvHeader is the fixed 7-column report layout.
var csvHeader = []string{
	"Employee Name",
	"Date",
	"Check In",
	"Check Out",
	"Status",
	"Work Duration (Hours)",
	"Break Duration (Hours)",
}

// ExportCSV renders the actor-visible records as the attendance report.
// Only closed segments count toward the durations.
func (s *service) ExportCSV(ctx context.Context, actorID string, actorRole domain.Role, now time.Time) ([]byte, string, error) {
	records, err := s.GetAll(ctx, actorID, actorRole)
	if err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, "", err
	}

	for _, rec := range records {
		full := Record{CheckIn: rec.CheckIn, Segments: rec.Segments}
		st, err := full.ClosedStats()
		if err != nil {
			return nil, "", err
		}

		checkOut := "N/A"
		if rec.CheckOut != nil {
			checkOut = *rec.CheckOut
		}

		row := []string{
			rec.UserName,
			rec.Date,
			rec.CheckIn,
			checkOut,
			rec.Status,
			strconv.FormatFloat(st.WorkHours, 'f', 2, 64),
			strconv.FormatFloat(st.BreakHours, 'f', 2, 64),
		}
		if err := w.Write(row); err != nil {
			return nil, "", err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("Attendance_Report_%s.csv", DateOf(now))
	return buf.Bytes(), filename, nil
}

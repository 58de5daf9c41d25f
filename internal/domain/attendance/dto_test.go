package attendance

import (
	"errors"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestAttendanceFilter_Validate(t *testing.T) {
	tests := []struct {
		name       string
		filter     AttendanceFilter
		wantFields []string
	}{
		{"empty filter", AttendanceFilter{}, nil},
		{"full filter", AttendanceFilter{
			EmployeeCode: strPtr("EMP001"),
			StartDate:    strPtr("2025-03-01"),
			EndDate:      strPtr("2025-03-31"),
			Status:       strPtr("half-day"),
		}, nil},
		{"bad start date", AttendanceFilter{StartDate: strPtr("01/03/2025")}, []string{"start_date"}},
		{"end before start", AttendanceFilter{StartDate: strPtr("2025-03-10"), EndDate: strPtr("2025-03-09")}, []string{"end_date"}},
		{"unknown status", AttendanceFilter{Status: strPtr("on-leave")}, []string{"status"}},
		{"blank values ignored", AttendanceFilter{StartDate: strPtr(""), Status: strPtr("")}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.filter.Validate()
			if tt.wantFields == nil {
				assert.NoError(t, err)
				return
			}

			var verrs validator.ValidationErrors
			require.True(t, errors.As(err, &verrs))
			fields := make([]string, 0, len(verrs))
			for _, v := range verrs {
				fields = append(fields, v.Field)
			}
			assert.Equal(t, tt.wantFields, fields)
		})
	}
}

func TestPeriodFilter(t *testing.T) {
	f := PeriodFilter{Month: intPtr(3)}
	assert.NoError(t, f.Validate())
	assert.False(t, f.IsSet())

	f.Year = intPtr(2025)
	assert.True(t, f.IsSet())

	bad := PeriodFilter{Month: intPtr(13), Year: intPtr(1900)}
	var verrs validator.ValidationErrors
	require.True(t, errors.As(bad.Validate(), &verrs))
	assert.Len(t, verrs, 2)
}

func TestNewAttendanceResponse(t *testing.T) {
	in := time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)
	rec := Record{
		ID:           "rec-1",
		EmployeeID:   "emp-1",
		Date:         time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
		CheckInTime:  &in,
		Status:       StatusPresent,
		TotalHours:   decimal.Zero,
		EmployeeCode: strPtr("EMP001"),
	}

	resp := NewAttendanceResponse(rec)
	assert.Equal(t, "2025-03-10", resp.Date)
	require.NotNil(t, resp.CheckInTime)
	assert.Equal(t, "2025-03-10T09:00:00Z", *resp.CheckInTime)
	assert.Nil(t, resp.CheckOutTime)
	assert.Equal(t, 0.0, resp.TotalHours)
	assert.Empty(t, resp.CreatedAt)
	assert.Equal(t, "EMP001", *resp.EmployeeCode)

	assert.NotNil(t, NewAttendanceResponses(nil))
}

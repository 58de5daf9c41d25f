package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
)

// identity reads the caller from the verified token, writing the error
// response itself when the token does not carry one.
func identity(w http.ResponseWriter, r *http.Request) (jwt.Identity, bool) {
	id, err := jwt.IdentityFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return jwt.Identity{}, false
	}
	return id, true
}

// optionalQuery returns nil when the query parameter is absent or blank.
func optionalQuery(r *http.Request, key string) *string {
	if v := r.URL.Query().Get(key); !validator.IsEmpty(v) {
		v = strings.TrimSpace(v)
		return &v
	}
	return nil
}

// periodFromQuery parses ?month=&year=.
func periodFromQuery(r *http.Request) (attendance.PeriodFilter, error) {
	var period attendance.PeriodFilter
	var errs validator.ValidationErrors

	if m := r.URL.Query().Get("month"); m != "" {
		month, err := strconv.Atoi(m)
		if !validator.IsNumeric(m) || err != nil {
			errs = append(errs, validator.ValidationError{Field: "month", Message: "month must be a number"})
		} else {
			period.Month = &month
		}
	}

	if y := r.URL.Query().Get("year"); y != "" {
		year, err := strconv.Atoi(y)
		if !validator.IsNumeric(y) || err != nil {
			errs = append(errs, validator.ValidationError{Field: "year", Message: "year must be a number"})
		} else {
			period.Year = &year
		}
	}

	if len(errs) > 0 {
		return period, errs
	}
	return period, nil
}

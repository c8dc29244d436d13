package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/nexus-ceredi/nexus-backend-go/internal/domain/attendance"
)

// getUserIDFromContext extracts the authenticated user ID from JWT claims.
func getUserIDFromContext(r *http.Request) string {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return ""
	}
	userID, _ := claims["user_id"].(string)
	return userID
}

// partitionFromURL reads the {year}/{month} URL segments and returns the
// partition pair, e.g. /2026/2/... -> ("2026", "02_Febrero").
func partitionFromURL(r *http.Request) (year string, monthBucket string, month time.Month, ok bool) {
	year = chi.URLParam(r, "year")
	monthNum, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil || monthNum < 1 || monthNum > 12 || len(year) != 4 {
		return "", "", 0, false
	}

	month = time.Month(monthNum)
	filter := attendance.MonthFilter{Year: year, Month: month}
	return year, filter.Bucket(), month, true
}

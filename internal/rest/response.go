package rest

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ResponseError is the error body for every failing endpoint.
type ResponseError struct {
	Error string `json:"error"`
}

// validationMessage flattens a validator error into one message that names
// every failing field, not just the first.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("field %q failed on the %q rule", fe.Field(), fe.Tag()))
	}

	return "invalid request: " + strings.Join(parts, ", ")
}

// The dashboard client renders amounts and counters as the decimal strings
// the original schema stored. The domain is typed; conversion lives here.

func formatAmount(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}

func formatAmountPtr(f *float64) *string {
	if f == nil {
		return nil
	}
	s := formatAmount(*f)
	return &s
}

func formatCount(n int) string {
	return strconv.Itoa(n)
}

// parseAmount accepts the client's decimal strings, tolerating thousand
// separators ("4,350.00").
func parseAmount(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil || f < 0 {
		return 0, fmt.Errorf("invalid amount %q", s)
	}

	return f, nil
}

func parseCount(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid count %q", s)
	}

	return n, nil
}

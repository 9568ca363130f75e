package finance

import (
	"strings"
	"time"

	"github.com/pkg/errors"
)

const (
	displayDateLayout = "02/01/2006" // dd/MM/yyyy, what users type
	apiDateLayout     = "2006-01-02" // yyyy-MM-dd, what the API speaks
)

// ToAPIDate converts a user-entered dd/MM/yyyy date to the API's
// yyyy-MM-dd form. Empty input stays empty.
func ToAPIDate(d string) (string, error) {
	if d == "" {
		return "", nil
	}
	t, err := time.Parse(displayDateLayout, d)
	if err != nil {
		return "", errors.Wrapf(err, "invalid date %q, expected dd/MM/yyyy", d)
	}
	return t.Format(apiDateLayout), nil
}

// FromAPIDate converts an API yyyy-MM-dd date to the dd/MM/yyyy display
// form. Values already containing "/" or otherwise unparseable pass
// through unchanged, matching how the pages render whatever they get.
func FromAPIDate(d string) string {
	if d == "" || strings.Contains(d, "/") {
		return d
	}
	t, err := time.Parse(apiDateLayout, d)
	if err != nil {
		return d
	}
	return t.Format(displayDateLayout)
}

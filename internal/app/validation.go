package app

import (
	"fmt"
	"strings"
	"time"

	"hotel_manager/internal/domain"
)

// normalizeClient trims surrounding blanks; the store keeps what the operator meant.
func normalizeClient(c domain.NewClient) domain.NewClient {
	c.Name = strings.TrimSpace(c.Name)
	c.Address = strings.TrimSpace(c.Address)
	c.City = strings.TrimSpace(c.City)
	c.Email = strings.TrimSpace(c.Email)
	c.Phone = strings.TrimSpace(c.Phone)
	return c
}

func validateClient(c domain.NewClient) error {
	var missing []string
	for _, f := range []struct {
		name string
		ok   bool
	}{
		{"name", c.Name != ""},
		{"address", c.Address != ""},
		{"city", c.City != ""},
		{"postal_code", c.PostalCode != 0},
		{"email", c.Email != ""},
		{"phone", c.Phone != ""},
	} {
		if !f.ok {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return domain.Invalid("missing required fields: " + strings.Join(missing, ", "))
	}
	return nil
}

// parseStay checks both dates are YYYY-MM-DD and end is after start.
func parseStay(start, end string) (domain.Stay, error) {
	s, err := time.Parse(domain.DateLayout, strings.TrimSpace(start))
	if err != nil {
		return domain.Stay{}, domain.Invalid(fmt.Sprintf("start date %q is not a YYYY-MM-DD date", start))
	}
	e, err := time.Parse(domain.DateLayout, strings.TrimSpace(end))
	if err != nil {
		return domain.Stay{}, domain.Invalid(fmt.Sprintf("end date %q is not a YYYY-MM-DD date", end))
	}
	if !s.Before(e) {
		return domain.Stay{}, domain.Invalid("end date must be after start date")
	}
	return domain.Stay{Start: s.Format(domain.DateLayout), End: e.Format(domain.DateLayout)}, nil
}

func validateID(entity string, id int64) error {
	if id <= 0 {
		return domain.Invalid(entity + " id must be a positive integer")
	}
	return nil
}

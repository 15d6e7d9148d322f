package handler

import (
	"strconv"
	"strings"
	"time"

	"inventory/internal/domain/constants"
	domainerrors "inventory/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const dateLayout = "2006-01-02"

// Date accepts either a calendar date (2006-01-02) or an RFC 3339 timestamp and normalizes it to UTC.
type Date struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	if raw == "" || raw == "null" {
		d.Time = time.Time{}

		return nil
	}

	if t, err := time.Parse(dateLayout, raw); err == nil {
		d.Time = t.UTC()

		return nil
	}

	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return errors.Errorf("invalid date %q: expected %s or RFC 3339", raw, dateLayout)
	}
	d.Time = t.UTC()

	return nil
}

// Ptr returns nil for an unset date.
func (d *Date) Ptr() *time.Time {
	if d == nil || d.IsZero() {
		return nil
	}
	t := d.Time

	return &t
}

// bindAndValidate binds the request into req and runs the struct validator on it.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, "malformed request body")
	}

	return errors.WithStack(c.Validate(req))
}

func pathID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, errors.Wrapf(domainerrors.ErrValidationFailed, "invalid %s", name)
	}

	return id, nil
}

// pageParams reads ?offset&limit. Absent values fall back to the defaults.
func pageParams(c echo.Context) (offset, limit int, err error) {
	offset, limit = 0, constants.DefaultPageLimit
	if raw := c.QueryParam("offset"); raw != "" {
		if offset, err = strconv.Atoi(raw); err != nil || offset < 0 {
			return 0, 0, errors.Wrap(domainerrors.ErrValidationFailed, "offset must be a non-negative integer")
		}
	}
	if raw := c.QueryParam("limit"); raw != "" {
		if limit, err = strconv.Atoi(raw); err != nil || limit <= 0 {
			return 0, 0, errors.Wrap(domainerrors.ErrValidationFailed, "limit must be a positive integer")
		}
	}
	if limit > constants.MaxPageLimit {
		limit = constants.MaxPageLimit
	}

	return offset, limit, nil
}

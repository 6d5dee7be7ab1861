package wizard

import (
	"net/mail"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

var (
	hhmm  = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
	phone = regexp.MustCompile(`^\+?[0-9][0-9\- ]{6,18}[0-9]$`)
)

// checker acumula errores de campo; cada validador de paso arma uno.
type checker struct {
	errs []FieldError
}

func (c *checker) add(field, msg string) {
	c.errs = append(c.errs, FieldError{Field: field, Message: msg})
}

func (c *checker) required(field, v string) bool {
	if strings.TrimSpace(v) == "" {
		c.add(field, "required")
		return false
	}
	return true
}

func (c *checker) maxLen(field, v string, n int) {
	if utf8.RuneCountInString(v) > n {
		c.add(field, "too long")
	}
}

func (c *checker) email(field, v string) {
	if !c.required(field, v) {
		return
	}
	if _, err := mail.ParseAddress(strings.TrimSpace(v)); err != nil {
		c.add(field, "invalid email")
	}
}

func (c *checker) phone(field, v string) {
	if !c.required(field, v) {
		return
	}
	if !phone.MatchString(strings.TrimSpace(v)) {
		c.add(field, "invalid phone")
	}
}

func (c *checker) date(field, v string) {
	if !c.required(field, v) {
		return
	}
	if _, err := time.Parse("2006-01-02", strings.TrimSpace(v)); err != nil {
		c.add(field, "expected YYYY-MM-DD")
	}
}

func (c *checker) clock(field, v string) {
	if !c.required(field, v) {
		return
	}
	if !hhmm.MatchString(strings.TrimSpace(v)) {
		c.add(field, "expected HH:MM")
	}
}

func (c *checker) positive(field string, v float64) {
	if v <= 0 {
		c.add(field, "must be greater than 0")
	}
}

func (c *checker) result() []FieldError {
	if c.errs == nil {
		return []FieldError{}
	}
	return c.errs
}

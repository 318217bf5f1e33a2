package config

import (
	"fmt"
	"strings"
	"time"
)

// section renders one configuration block of the startup log.
type section struct {
	b strings.Builder
}

func newSection(title string) *section {
	s := &section{}
	fmt.Fprintf(&s.b, "\n--- %s ---\n", title)
	return s
}

func (s *section) field(key string, value any) *section {
	fmt.Fprintf(&s.b, "  %s: %v\n", key, value)
	return s
}

func (s *section) String() string {
	return s.b.String()
}

// positive reports key as misconfigured when d is not a positive duration.
func positive(key string, d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("%s must be greater than 0, got %v", key, d)
	}
	return nil
}

// firstError returns the first non-nil error.
func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

package bug

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/bugtracker/internal/domain"
)

const (
	maxTitleLen       = 200
	maxDescriptionLen = 10000
	maxLabels         = 20
	maxLabelLen       = 50
)

// BugInput carries the writable fields of a bug as received at the boundary.
// Severity and CreatedAt are loosely typed and coerced on write.
type BugInput struct {
	Title       string
	Description string
	Severity    any
	CreatedAt   any
	Labels      []string
}

// Validate validates the bug input. Title is checked after trimming.
func (i BugInput) Validate() error {
	var errs []domain.FieldError

	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if utf8.RuneCountInString(title) > maxTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
	}

	if utf8.RuneCountInString(i.Description) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long"})
	}

	if len(i.Labels) > maxLabels {
		errs = append(errs, domain.FieldError{Field: "labels", Message: "too many"})
	}
	for _, l := range i.Labels {
		if utf8.RuneCountInString(l) > maxLabelLen {
			errs = append(errs, domain.FieldError{Field: "labels", Message: "label too long"})
			break
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// apply writes the coerced input over b. createdAt is replaced only when the
// input carries a parseable value.
func (i BugInput) apply(b *domain.Bug) {
	b.Title = strings.TrimSpace(i.Title)
	b.Description = i.Description
	b.Severity = domain.CoerceSeverity(i.Severity)
	if t, ok := domain.ParseCreatedAt(i.CreatedAt); ok {
		b.CreatedAt = t
	}
	b.Labels = make([]string, len(i.Labels))
	copy(b.Labels, i.Labels)
}

package domain

import "time"

// Bug is a stored defect report.
type Bug struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Severity    int       `json:"severity"`
	CreatedAt   time.Time `json:"createdAt"`
	Labels      []string  `json:"labels"`
	Creator     *Creator  `json:"creator,omitempty"`
}

// Creator is the back-reference from a bug to the user who filed it.
type Creator struct {
	ID       string `json:"_id"`
	Fullname string `json:"fullname"`
}

// HasLabel reports whether the bug carries the exact label.
func (b *Bug) HasLabel(label string) bool {
	for _, l := range b.Labels {
		if l == label {
			return true
		}
	}
	return false
}

// CreatedBy reports whether the bug was filed by the given user.
func (b *Bug) CreatedBy(userID string) bool {
	return b.Creator != nil && userID != "" && b.Creator.ID == userID
}

// Clone returns a deep copy so callers can't alias the stored slices.
func (b Bug) Clone() Bug {
	out := b
	out.Labels = append(make([]string, 0, len(b.Labels)), b.Labels...)
	if b.Creator != nil {
		c := *b.Creator
		out.Creator = &c
	}
	return out
}

// DemoBugs returns the records inserted into an empty store on seeding.
func DemoBugs(now time.Time) []Bug {
	return []Bug{
		{
			Title:       "Ant invasion",
			Description: "Ants keep coming through the kitchen window",
			Severity:    2,
			CreatedAt:   now,
			Labels:      []string{"ant", "home"},
		},
		{
			Title:       "Spider in the shower",
			Description: "A large spider lives behind the shampoo",
			Severity:    3,
			CreatedAt:   now,
			Labels:      []string{"spider", "bathroom"},
		},
		{
			Title:       "Mosquito at night",
			Description: "Buzzing right next to the ear at 3am",
			Severity:    4,
			CreatedAt:   now,
			Labels:      []string{"mosquito", "night"},
		},
	}
}

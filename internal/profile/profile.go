// Package profile holds the candidate record collected over one intake session.
package profile

import "strings"

// FieldName identifies one collectable profile field. The values double as the
// human-readable names used when asking for missing information.
type FieldName string

const (
	FieldFullName        FieldName = "full name"
	FieldEmail           FieldName = "email address"
	FieldPhone           FieldName = "phone number"
	FieldYearsExperience FieldName = "years of experience"
	FieldPositions       FieldName = "desired position(s)"
	FieldLocation        FieldName = "current location"
	FieldTechStack       FieldName = "tech stack"
)

// Candidate is the mutable record of fields collected for one session.
// Scalar fields follow a first-write-wins policy: once set to a non-empty
// value they are never overwritten by a later extraction pass. List fields
// only grow and never contain case-insensitive duplicates.
type Candidate struct {
	FullName         string   `json:"full_name,omitempty"`
	Email            string   `json:"email,omitempty"`
	Phone            string   `json:"phone,omitempty"`
	YearsExperience  *int     `json:"years_experience,omitempty"`
	DesiredPositions []string `json:"desired_positions,omitempty"`
	CurrentLocation  string   `json:"current_location,omitempty"`
	TechStack        []string `json:"tech_stack,omitempty"`
}

// New returns an empty candidate profile.
func New() *Candidate {
	return &Candidate{}
}

// SetFullName records the name unless one is already present.
func (c *Candidate) SetFullName(name string) bool {
	return setScalar(&c.FullName, name)
}

// SetEmail records the email unless one is already present.
func (c *Candidate) SetEmail(email string) bool {
	return setScalar(&c.Email, email)
}

// SetPhone records the phone number unless one is already present.
func (c *Candidate) SetPhone(phone string) bool {
	return setScalar(&c.Phone, phone)
}

// SetLocation records the location unless one is already present.
func (c *Candidate) SetLocation(location string) bool {
	return setScalar(&c.CurrentLocation, location)
}

// SetYearsExperience records the experience unless already set. Negative
// values are rejected.
func (c *Candidate) SetYearsExperience(years int) bool {
	if c.YearsExperience != nil || years < 0 {
		return false
	}
	c.YearsExperience = &years
	return true
}

// AddPositions appends positions not yet present under case-insensitive
// comparison and reports how many were added.
func (c *Candidate) AddPositions(positions ...string) int {
	return appendUnique(&c.DesiredPositions, positions)
}

// AddTech appends technologies not yet present under case-insensitive
// comparison and reports how many were added.
func (c *Candidate) AddTech(items ...string) int {
	return appendUnique(&c.TechStack, items)
}

// Overwrite replaces a single scalar field regardless of its current value.
// It is the only way around the first-write-wins rule and exists for the
// explicit update flow during technical questions.
func (c *Candidate) Overwrite(field FieldName, value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		return
	}

	switch field {
	case FieldFullName:
		c.FullName = value
	case FieldEmail:
		c.Email = value
	case FieldPhone:
		c.Phone = value
	case FieldLocation:
		c.CurrentLocation = value
	}
}

// IsComplete reports whether every scalar field is set and every list field
// is non-empty.
func (c *Candidate) IsComplete() bool {
	return len(c.MissingFields()) == 0
}

// MissingFields returns the unset fields in the fixed asking order.
func (c *Candidate) MissingFields() []FieldName {
	var missing []FieldName
	if c.FullName == "" {
		missing = append(missing, FieldFullName)
	}
	if c.Email == "" {
		missing = append(missing, FieldEmail)
	}
	if c.Phone == "" {
		missing = append(missing, FieldPhone)
	}
	if c.YearsExperience == nil {
		missing = append(missing, FieldYearsExperience)
	}
	if len(c.DesiredPositions) == 0 {
		missing = append(missing, FieldPositions)
	}
	if c.CurrentLocation == "" {
		missing = append(missing, FieldLocation)
	}
	if len(c.TechStack) == 0 {
		missing = append(missing, FieldTechStack)
	}
	return missing
}

// Progress returns the completion ratio in percent.
func (c *Candidate) Progress() float64 {
	const total = 7
	return float64(total-len(c.MissingFields())) / total * 100
}

func setScalar(dst *string, value string) bool {
	value = strings.TrimSpace(value)
	if *dst != "" || value == "" {
		return false
	}
	*dst = value
	return true
}

func appendUnique(dst *[]string, items []string) int {
	added := 0
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}

		duplicate := false
		for _, existing := range *dst {
			if strings.EqualFold(existing, item) {
				duplicate = true
				break
			}
		}

		if !duplicate {
			*dst = append(*dst, item)
			added++
		}
	}
	return added
}

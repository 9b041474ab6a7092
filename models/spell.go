package models

// APIReference represents a nested {index, name, url} object in the reference API
type APIReference struct {
	Index string `json:"index"`
	Name  string `json:"name"`
	URL   string `json:"url"`
}

// SpellDetail represents the full record for one spell
// Example: {"index": "fireball", "name": "Fireball", "level": 3, "school": {"name": "Evocation"}, ...}
type SpellDetail struct {
	Index         string         `json:"index"`
	Name          string         `json:"name"`
	Level         int            `json:"level"` // 0 = cantrip
	School        *APIReference  `json:"school,omitempty"`
	CastingTime   string         `json:"casting_time"`
	Range         string         `json:"range"`
	Duration      string         `json:"duration"`
	Concentration bool           `json:"concentration"`
	Ritual        bool           `json:"ritual"`
	AttackType    string         `json:"attack_type,omitempty"` // Empty when the spell has no attack roll
	Components    []string       `json:"components"`
	Classes       []APIReference `json:"classes"`
}

// SchoolName returns the school name, or "" when the record carries no school
func (s SpellDetail) SchoolName() string {
	if s.School == nil {
		return ""
	}
	return s.School.Name
}

// HasClass reports whether the spell lists the given class by exact name
func (s SpellDetail) HasClass(name string) bool {
	for _, c := range s.Classes {
		if c.Name == name {
			return true
		}
	}
	return false
}

// LoadResult is the outcome of one load cycle: either a spell list or a failure.
// A failed result always carries an empty, non-nil Spells slice.
type LoadResult struct {
	Spells []SpellDetail
	Err    error
}

// Failed reports whether the load cycle aborted
func (r LoadResult) Failed() bool {
	return r.Err != nil
}

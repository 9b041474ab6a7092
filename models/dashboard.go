package models

// SpellRow represents one rendered row of the spell table
type SpellRow struct {
	Index         int    `json:"index"` // 1-based, recomputed on every filter pass
	Key           string `json:"key"`   // Spell index from the API
	Icon          string `json:"icon"`
	Name          string `json:"name"`
	Level         int    `json:"level"`
	School        string `json:"school"`
	CastingTime   string `json:"castingTime"`
	Range         string `json:"range"`
	Duration      string `json:"duration"`
	Concentration string `json:"concentration"` // "Yes" / "No"
	Ritual        string `json:"ritual"`        // "Yes" / "No"
	AttackType    string `json:"attackType"`
	Components    string `json:"components"` // Comma-joined
}

// DashboardStats represents the three summary cards
type DashboardStats struct {
	Total        int     `json:"total"`
	Visible      int     `json:"visible"`
	AverageLevel float64 `json:"averageLevel"`
	AverageLabel string  `json:"averageLabel"` // "0" when empty, one decimal otherwise
}

// BandOption represents one entry of the level selector
type BandOption struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
}

// NavLink represents a sidebar navigation link
type NavLink struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// DashboardData represents the data structure passed to the dashboard template
type DashboardData struct {
	Title       string         `json:"title"`
	TargetClass string         `json:"targetClass"`
	Loading     bool           `json:"loading"`
	Search      string         `json:"search"`
	Level       string         `json:"level"`
	Bands       []BandOption   `json:"bands"`
	Stats       DashboardStats `json:"stats"`
	Rows        []SpellRow     `json:"rows"`
	Nav         []NavLink      `json:"nav"`
}

package models

// CatalogEntry represents a single spell reference returned by the list endpoint
type CatalogEntry struct {
	Index string `json:"index"`
	Name  string `json:"name"`
	URL   string `json:"url"` // Relative locator (e.g., "/api/spells/fireball")
}

// CatalogListResponse represents the body of GET /api/spells
type CatalogListResponse struct {
	Count   int            `json:"count"`
	Results []CatalogEntry `json:"results"`
}

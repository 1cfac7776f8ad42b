package models

// Property status values. The scraper maps listing-site sections onto
// these; anything else is normalized to StatusNewLaunch.
const (
	StatusNewLaunch         = "new_launch"
	StatusUnderConstruction = "under_construction"
	StatusReadyToMove       = "ready_to_move"
)

// PropertyRecord is one scraped residential project listing. Rows are
// bulk-replaced by the scraper on each run and read-only from the web
// layer. Nullable columns map to pointer fields.
type PropertyRecord struct {
	URL           string   `json:"url"`
	ID            string   `json:"id"`
	Source        string   `json:"source"`
	Status        string   `json:"status"`
	Name          string   `json:"name"`
	Builder       string   `json:"builder"`
	Locality      string   `json:"locality"`
	PriceMinLakhs *float64 `json:"price_min_lakhs"`
	PriceMaxLakhs *float64 `json:"price_max_lakhs"`
	PriceDisplay  string   `json:"price_display"`
	Handover      string   `json:"handover"`
	HandoverYear  *int     `json:"handover_year"`
	BHK           string   `json:"bhk"`
	UpdatedAt     string   `json:"updated_at,omitempty"`
}

// HasPrice reports whether either price bound is known. Rows with a known
// price sort before rows without one in every property sort mode.
func (p PropertyRecord) HasPrice() bool {
	return p.PriceMinLakhs != nil || p.PriceMaxLakhs != nil
}

// PropertyPage is one page of query results plus the unpaginated total.
type PropertyPage struct {
	Data  []PropertyRecord `json:"data"`
	Total int              `json:"total"`
}

package models

// AuctionRecord is one bank-auction property listing. Same lifecycle as
// PropertyRecord: bulk-replaced by the scraper, read-only thereafter.
type AuctionRecord struct {
	URL             string   `json:"url"`
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	PriceDisplay    string   `json:"price_display"`
	PriceLakhs      *float64 `json:"price_lakhs"`
	EMDDisplay      string   `json:"emd_display"`
	EMDLakhs        *float64 `json:"emd_lakhs"`
	SqFt            string   `json:"sq_ft"`
	BankName        string   `json:"bank_name"`
	BranchName      string   `json:"branch_name"`
	Contact         string   `json:"contact"`
	ContactPerson   string   `json:"contact_person"`
	ContactMobile   string   `json:"contact_mobile"`
	Address         string   `json:"address"`
	AuctionStart    string   `json:"auction_start"`
	AuctionEnd      string   `json:"auction_end"`
	AuctionDatetime string   `json:"auction_datetime"`
	Category        string   `json:"category"`
	Source          string   `json:"source"`
	UpdatedAt       string   `json:"updated_at,omitempty"`
}

// AuctionPage is one page of query results plus the unpaginated total.
type AuctionPage struct {
	Data  []AuctionRecord `json:"data"`
	Total int             `json:"total"`
}

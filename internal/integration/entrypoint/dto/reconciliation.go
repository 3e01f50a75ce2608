package dto

// NormalizeEntriesRequest addresses one owner partition for the text
// normalization pass.
type NormalizeEntriesRequest struct {
	OwnerType string `json:"owner_type" binding:"required,oneof=beekeeper factory supplier"`
	OwnerID   string `json:"owner_id" binding:"required"`
}

// NormalizeEntriesResponse reports what the pass touched.
type NormalizeEntriesResponse struct {
	Examined int `json:"examined"`
	Updated  int `json:"updated"`
	Batches  int `json:"batches"`
}

// BackfillSoldRequest addresses one factory partition for the sold
// reference backfill pass.
type BackfillSoldRequest struct {
	FactoryID string `json:"factory_id" binding:"required"`
}

// BackfillSoldResponse reports what the pass touched.
type BackfillSoldResponse struct {
	Examined int `json:"examined"`
	Updated  int `json:"updated"`
	Skipped  int `json:"skipped"`
	Batches  int `json:"batches"`
}

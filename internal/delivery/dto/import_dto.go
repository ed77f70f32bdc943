package dto

// SkippedProduct names an import row that was not inserted and why.
type SkippedProduct struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// ImportSummary is the final report of a CSV import run.
type ImportSummary struct {
	Added           int              `json:"added"`
	Skipped         int              `json:"skipped"`
	SkippedProducts []SkippedProduct `json:"skippedProducts"`
}

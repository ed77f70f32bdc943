package entity

// ProductFilter is a domain-level filter for querying products.
// Used by repository layer to avoid coupling with delivery DTOs.
// Sort and Order are expected to be sanitized before reaching the
// repository; Sort may be a SQL expression such as LOWER(name).
type ProductFilter struct {
	Search   string // Substring match against name and brand
	Category string // Exact match
	Sort     string
	Order    string // "asc" or "desc"
}

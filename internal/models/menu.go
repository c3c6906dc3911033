package models

// MenuItem is one line of a parsed menu: a dish name, its listed price, and
// which source image it came from (menus can span multiple photographs).
type MenuItem struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	SourceImage int     `json:"source_image,omitempty"`
}

// PartialResult is the interim sum reported to a client while items are
// awaiting human review; it excludes anything still pending.
type PartialResult struct {
	TotalSum       float64 `json:"total_sum"`
	ItemCount      int     `json:"item_count"`
	PendingCount   int     `json:"pending_count"`
	CertainSum     float64 `json:"certain_sum"`
	UncertainCount int     `json:"uncertain_count"`
}

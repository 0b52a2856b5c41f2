package dto

// Pagination defines parameters for paginated requests.
// These are typically query parameters.
type Pagination struct {
	Limit  int `query:"limit"`  // Number of items per page
	Offset int `query:"offset"` // Number of items to skip
	Page   int `query:"page"`   // Page number (alternative to offset)
}

// PaginationInfo defines pagination details for responses.
type PaginationInfo struct {
	TotalItems  int `json:"total_items"`
	Limit       int `json:"limit"`
	Offset      int `json:"offset"`
	CurrentPage int `json:"current_page"`
	TotalPages  int `json:"total_pages"`
}

// AttemptFilters defines parameters for filtering lists of quiz attempts.
type AttemptFilters struct {
	SubjectID string `query:"subject_id"`
	TopicID   string `query:"topic_id"`
	StartDate string `query:"start_date"` // Format: YYYY-MM-DD
	EndDate   string `query:"end_date"`   // Format: YYYY-MM-DD
	SortBy    string `query:"sort_by"`    // e.g. "attempted_at", "marks"
	SortOrder string `query:"sort_order"` // "ASC" or "DESC"
}

// MessageResponse represents a generic message response.
// @Description Generic message response
type MessageResponse struct {
	Message string `json:"message"`
}

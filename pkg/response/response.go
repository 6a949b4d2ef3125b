package response

// Pagination describes one page of a listing.
type Pagination struct {
	Limit    int   `json:"limit"`
	Page     int   `json:"page"`
	Total    int64 `json:"total"`
	LastPage int   `json:"last_page"`
}

// NewPagination computes the last page from the total row count.
func NewPagination(page, limit int, total int64) *Pagination {
	lastPage := int((total + int64(limit) - 1) / int64(limit))
	return &Pagination{
		Limit:    limit,
		Page:     page,
		Total:    total,
		LastPage: lastPage,
	}
}

// Result is the envelope every endpoint answers with.
type Result struct {
	Status     int         `json:"status"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// OK builds a success envelope.
func OK(status int, message string, data interface{}) Result {
	return Result{Status: status, Message: message, Data: data}
}

// Page builds a success envelope with pagination.
func Page(status int, message string, data interface{}, pagination *Pagination) Result {
	return Result{Status: status, Message: message, Data: data, Pagination: pagination}
}

// Error builds a failure envelope.
func Error(status int, message string) Result {
	return Result{Status: status, Message: message}
}

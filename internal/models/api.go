package models

// Response envelopes matching the contract the browser client consumes.

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ListResponse wraps the paginated customer listing. Deliberately carries no
// total-count or total-pages metadata; the client infers "has more" from
// whether the page is empty.
type ListResponse struct {
	Data []Customer `json:"data"`
}

// DataResponse wraps a single entity or sub-collection lookup.
type DataResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// CreatedResponse reports the generated id of a newly inserted row.
type CreatedResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// ChangesResponse reports how many rows an update or delete affected.
type ChangesResponse struct {
	Message string `json:"message"`
	Changes int64  `json:"changes"`
}

package models

// Page is the backend's pagination envelope for list endpoints.
type Page[T any] struct {
	Content       []T   `json:"content"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	Number        int   `json:"number"`
	Size          int   `json:"size"`
}

// PageParams are the optional pagination query parameters accepted by
// paginated endpoints. Zero values mean "let the backend pick".
type PageParams struct {
	Page int
	Size int
}

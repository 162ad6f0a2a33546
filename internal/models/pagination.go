package models

// PageSize is fixed for every list endpoint; only the page number is
// client-controlled.
const PageSize = 10

type PaginatedResponse struct {
	Data     any `json:"data"`
	Total    int `json:"total"`
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
}

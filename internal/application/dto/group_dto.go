package dto

import "time"

// CreateGroupRequest alta de grupo.
type CreateGroupRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

// GroupResponse representación HTTP de un grupo.
type GroupResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Color       string    `json:"color"`
	CreatedAt   time.Time `json:"created_at"`
}

// GroupListResponse listado de grupos.
type GroupListResponse struct {
	Items []GroupResponse `json:"items"`
	Total int             `json:"total"`
}

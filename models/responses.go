// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ErrorResponse is the minimum body of every error reply.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// Pagination is attached verbatim to every list response.
type Pagination struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Message string  `json:"message"`
	User    User    `json:"user"`
	Auth    Session `json:"auth"`
}

// UserResponse wraps a single profile.
type UserResponse struct {
	User User `json:"user"`
}

// UserListResponse is one page of the users list.
type UserListResponse struct {
	Data       []User     `json:"data"`
	Pagination Pagination `json:"pagination"`
	Sort       string     `json:"sort"`
}

// UserSearchResponse is the result of a users search.
type UserSearchResponse struct {
	Results    []User `json:"results"`
	TotalFound int    `json:"total_found"`
	Query      string `json:"query"`
}

// UserUpdateResponse reports an applied profile update.
type UserUpdateResponse struct {
	Message       string   `json:"message"`
	User          User     `json:"user"`
	UpdatedFields []string `json:"updated_fields"`
}

// DiveCreateStats reports the counters computed for a new dive.
type DiveCreateStats struct {
	DiveNumber       int  `json:"dive_number"`
	IsNewDepthRecord bool `json:"is_new_depth_record"`
}

// DiveCreateResponse is returned by POST /api/dives/create.
type DiveCreateResponse struct {
	Message string          `json:"message"`
	Dive    Dive            `json:"dive"`
	Stats   DiveCreateStats `json:"stats"`
}

// DiveResponse wraps a single dive.
type DiveResponse struct {
	Dive Dive `json:"dive"`
}

// DiveListResponse is one page of the dives list.
type DiveListResponse struct {
	Data       []Dive          `json:"data"`
	Pagination Pagination      `json:"pagination"`
	Filters    DiveListFilters `json:"filters"`
}

// NotFoundResponse is returned for unmatched routes.
type NotFoundResponse struct {
	Error              string   `json:"error"`
	Message            string   `json:"message"`
	AvailableEndpoints []string `json:"available_endpoints"`
}

// MessageResponse is a bare acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}

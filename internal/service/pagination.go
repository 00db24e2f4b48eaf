// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"strconv"
	"strings"

	"github.com/MKhiriev/dive-log/models"
)

// Pagination defaults.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// PageRequest is a parsed page/limit pair.
type PageRequest struct {
	Page  int
	Limit int
}

// NewPageRequest parses raw page and limit values. Missing, non-numeric or
// non-positive values fall back to the defaults; limit is capped at
// MaxLimit.
func NewPageRequest(page, limit string) PageRequest {
	p := PageRequest{
		Page:  parsePositive(page, DefaultPage),
		Limit: parsePositive(limit, DefaultLimit),
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

// Start is the zero-based offset of the first row.
func (p PageRequest) Start() int {
	return (p.Page - 1) * p.Limit
}

// End is the inclusive offset of the last row.
func (p PageRequest) End() int {
	return p.Start() + p.Limit - 1
}

// NewPagination derives the response pagination block for total rows.
func NewPagination(p PageRequest, total int) models.Pagination {
	totalPages := 0
	if p.Limit > 0 {
		totalPages = (total + p.Limit - 1) / p.Limit
	}
	return models.Pagination{
		Page:       p.Page,
		Limit:      p.Limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    p.Start()+p.Limit < total,
		HasPrev:    p.Page > 1,
	}
}

func parsePositive(raw string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

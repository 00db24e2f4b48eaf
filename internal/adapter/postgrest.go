// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"
)

// Query is a PostgREST request against one table. It is built with the
// chained filter methods and executed by Get, Head, Insert or Update. All
// table access goes through the elevated credential tier.
type Query struct {
	client *Client
	table  string
	params url.Values
	order  []string
	count  bool
	single bool
}

// From starts a query against table.
func (c *Client) From(table string) *Query {
	return &Query{
		client: c,
		table:  table,
		params: url.Values{},
	}
}

// Select sets the column list. Embedded resources use PostgREST syntax,
// e.g. "*,user:users(name,diving_experience)".
func (q *Query) Select(columns string) *Query {
	q.params.Set("select", columns)
	return q
}

// Eq adds an equality filter.
func (q *Query) Eq(column string, value any) *Query {
	q.params.Add(column, "eq."+fmt.Sprint(value))
	return q
}

// ILike adds a case-insensitive pattern filter. Use '*' as the wildcard.
func (q *Query) ILike(column, pattern string) *Query {
	q.params.Add(column, "ilike."+pattern)
	return q
}

// Or adds a disjunction of conditions built with [Cond].
func (q *Query) Or(conds ...string) *Query {
	if len(conds) > 0 {
		q.params.Add("or", "("+strings.Join(conds, ",")+")")
	}
	return q
}

// Order appends a sort key.
func (q *Query) Order(column string, descending bool) *Query {
	dir := "asc"
	if descending {
		dir = "desc"
	}
	q.order = append(q.order, column+"."+dir)
	return q
}

// Range restricts the result to rows from..to inclusive (zero-based).
func (q *Query) Range(from, to int) *Query {
	if from < 0 || to < from {
		return q
	}
	q.params.Set("offset", strconv.Itoa(from))
	q.params.Set("limit", strconv.Itoa(to-from+1))
	return q
}

// Limit caps the number of rows returned.
func (q *Query) Limit(n int) *Query {
	if n > 0 {
		q.params.Set("limit", strconv.Itoa(n))
	}
	return q
}

// Count requests the exact total of matching rows alongside the data.
func (q *Query) Count() *Query {
	q.count = true
	return q
}

// Single requests exactly one object. Zero matching rows yield [ErrNoRows].
func (q *Query) Single() *Query {
	q.single = true
	return q
}

// Get executes a read and decodes the body into dest. The returned total is
// the exact count when Count was requested, otherwise zero.
//
// A counted read whose range starts past the last row leaves dest untouched
// and still reports the total, so callers see an empty page.
func (q *Query) Get(ctx context.Context, dest any) (int, error) {
	resp, err := q.request(ctx).Get(q.path())
	if err != nil {
		return 0, transportError("select "+q.table, err)
	}
	if err = mapHTTPError(resp); err != nil {
		if q.count && errors.Is(err, ErrRangeNotSatisfiable) {
			return parseContentRange(resp.Header().Get(headerContentRange)), nil
		}
		return 0, err
	}
	if err = decode(resp, dest); err != nil {
		return 0, fmt.Errorf("decode %s rows: %w", q.table, err)
	}

	return parseContentRange(resp.Header().Get(headerContentRange)), nil
}

// Head executes a count-only read.
func (q *Query) Head(ctx context.Context) (int, error) {
	q.count = true
	resp, err := q.request(ctx).Head(q.path())
	if err != nil {
		return 0, transportError("count "+q.table, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	return parseContentRange(resp.Header().Get(headerContentRange)), nil
}

// Insert creates rows from body. When dest is non-nil the stored
// representation is decoded into it.
func (q *Query) Insert(ctx context.Context, body, dest any) error {
	resp, err := q.write(ctx, body, dest).Post(q.path())
	if err != nil {
		return transportError("insert "+q.table, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}
	if err = decode(resp, dest); err != nil {
		return fmt.Errorf("decode inserted %s: %w", q.table, err)
	}
	return nil
}

// Update patches the rows matching the query's filters with body. When
// dest is non-nil the updated representation is decoded into it.
func (q *Query) Update(ctx context.Context, body, dest any) error {
	resp, err := q.write(ctx, body, dest).Patch(q.path())
	if err != nil {
		return transportError("update "+q.table, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}
	if err = decode(resp, dest); err != nil {
		return fmt.Errorf("decode updated %s: %w", q.table, err)
	}
	return nil
}

func (q *Query) path() string {
	return restPath + "/" + q.table
}

func (q *Query) request(ctx context.Context) *resty.Request {
	params := url.Values{}
	for k, v := range q.params {
		params[k] = append([]string(nil), v...)
	}
	if len(q.order) > 0 {
		params.Set("order", strings.Join(q.order, ","))
	}

	req := q.client.elevated.R().
		SetContext(ctx).
		SetQueryParamsFromValues(params)
	if q.count {
		req.SetHeader(headerPrefer, "count=exact")
	}
	if q.single {
		req.SetHeader(headerAccept, mimeSingleObject)
	}
	return req
}

func (q *Query) write(ctx context.Context, body, dest any) *resty.Request {
	prefer := "return=minimal"
	if dest != nil {
		prefer = "return=representation"
	}
	return q.request(ctx).
		SetHeader(headerContentType, mimeJSON).
		SetHeader(headerPrefer, prefer).
		SetBody(body)
}

func decode(resp *resty.Response, dest any) error {
	if dest == nil || len(resp.Body()) == 0 {
		return nil
	}
	return json.Unmarshal(resp.Body(), dest)
}

// parseContentRange extracts the total from "0-9/42" or "*/0". An unknown
// total ("*") or a missing header yields zero.
func parseContentRange(v string) int {
	i := strings.LastIndexByte(v, '/')
	if i < 0 {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(v[i+1:]))
	if err != nil {
		return 0
	}
	return n
}

// Cond builds one condition for [Query.Or], e.g. Cond("name", "ilike",
// "*reef*"). Values containing PostgREST reserved characters are quoted.
func Cond(column, operator, value string) string {
	return column + "." + operator + "." + quoteValue(value)
}

func quoteValue(v string) string {
	if !strings.ContainsAny(v, ",.:()\"\\ ") {
		return v
	}
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`)
	return `"` + r.Replace(v) + `"`
}

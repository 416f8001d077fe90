package query

import "strconv"

const (
	// DefaultPageSize is the server-side default limit. Callers pass it explicitly
	// to Paginate; the web client uses its own page size of 10 and always sends it.
	DefaultPageSize = 20
	// MaxPageSize caps every limit, requested or default.
	MaxPageSize = 100
)

// PageRequest asks for one page. Nil fields take their defaults.
type PageRequest struct {
	Page  *int `json:"page"`
	Limit *int `json:"limit"`
}

// PageInfo describes the returned page relative to the whole sequence.
type PageInfo struct {
	Page            int     `json:"page"`
	Limit           int     `json:"limit"`
	TotalCount      int     `json:"totalCount"`
	HasNextPage     bool    `json:"hasNextPage"`
	HasPreviousPage bool    `json:"hasPreviousPage"`
	StartCursor     *string `json:"startCursor"`
	EndCursor       *string `json:"endCursor"`
}

// Edge pairs a node with its cursor.
//
// Cursors are the node's absolute index in the filtered and sorted sequence.
// They are only meaningful for the same filter and sort, and any insert
// shifts them.
type Edge[T any] struct {
	Node   T      `json:"node"`
	Cursor string `json:"cursor"`
}

// Connection is one page of edges plus its PageInfo.
type Connection[T any] struct {
	Edges    []Edge[T] `json:"edges"`
	PageInfo PageInfo  `json:"pageInfo"`
}

// ClampLimit bounds limit to [1, MaxPageSize].
func ClampLimit(limit int) int {
	return min(max(limit, 1), MaxPageSize)
}

// Paginate slices items into the requested page. defaultLimit applies when
// the request has no limit; it is clamped like any other limit.
func Paginate[T any](items []T, req *PageRequest, defaultLimit int) Connection[T] {
	limit := defaultLimit
	page := 1
	if req != nil {
		if req.Limit != nil {
			limit = *req.Limit
		}
		if req.Page != nil {
			page = *req.Page
		}
	}
	limit = ClampLimit(limit)
	page = max(page, 1)

	total := len(items)
	start := (page - 1) * limit
	end := start + limit

	edges := make([]Edge[T], 0, limit)
	for i := start; i < end && i < total; i++ {
		edges = append(edges, Edge[T]{Node: items[i], Cursor: strconv.Itoa(i)})
	}

	info := PageInfo{
		Page:            page,
		Limit:           limit,
		TotalCount:      total,
		HasNextPage:     end < total,
		HasPreviousPage: page > 1,
	}
	if len(edges) > 0 {
		first, last := edges[0].Cursor, edges[len(edges)-1].Cursor
		info.StartCursor = &first
		info.EndCursor = &last
	}
	return Connection[T]{Edges: edges, PageInfo: info}
}

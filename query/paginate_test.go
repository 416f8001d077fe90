package query

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int { return &i }

func sequence(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestPaginate_SecondPageOfFifteen(t *testing.T) {
	// act
	conn := Paginate(sequence(15), &PageRequest{Page: intPtr(2), Limit: intPtr(10)}, DefaultPageSize)

	// assert
	require.Len(t, conn.Edges, 5)
	assert.Equal(t, 10, conn.Edges[0].Node)
	assert.Equal(t, "10", conn.Edges[0].Cursor)
	assert.Equal(t, "14", conn.Edges[4].Cursor)
	assert.False(t, conn.PageInfo.HasNextPage)
	assert.True(t, conn.PageInfo.HasPreviousPage)
	assert.Equal(t, 15, conn.PageInfo.TotalCount)
	assert.Equal(t, 2, conn.PageInfo.Page)
	assert.Equal(t, 10, conn.PageInfo.Limit)
	require.NotNil(t, conn.PageInfo.StartCursor)
	require.NotNil(t, conn.PageInfo.EndCursor)
	assert.Equal(t, "10", *conn.PageInfo.StartCursor)
	assert.Equal(t, "14", *conn.PageInfo.EndCursor)
}

func TestPaginate_Defaults(t *testing.T) {
	tests := []struct {
		name          string
		req           *PageRequest
		defaultLimit  int
		expectedPage  int
		expectedLimit int
		expectedEdges int
	}{
		{name: "nil_request_uses_default_limit", req: nil, defaultLimit: 20, expectedPage: 1, expectedLimit: 20, expectedEdges: 20},
		{name: "per_call_default_limit", req: &PageRequest{}, defaultLimit: 10, expectedPage: 1, expectedLimit: 10, expectedEdges: 10},
		{name: "zero_page_is_first_page", req: &PageRequest{Page: intPtr(0)}, defaultLimit: 20, expectedPage: 1, expectedLimit: 20, expectedEdges: 20},
		{name: "negative_page_is_first_page", req: &PageRequest{Page: intPtr(-3)}, defaultLimit: 20, expectedPage: 1, expectedLimit: 20, expectedEdges: 20},
		{name: "limit_below_one_is_clamped", req: &PageRequest{Limit: intPtr(0)}, defaultLimit: 20, expectedPage: 1, expectedLimit: 1, expectedEdges: 1},
		{name: "limit_above_max_is_clamped", req: &PageRequest{Limit: intPtr(500)}, defaultLimit: 20, expectedPage: 1, expectedLimit: MaxPageSize, expectedEdges: 100},
		{name: "bad_default_is_clamped_too", req: nil, defaultLimit: 0, expectedPage: 1, expectedLimit: 1, expectedEdges: 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			conn := Paginate(sequence(150), tc.req, tc.defaultLimit)

			assert.Equal(t, tc.expectedPage, conn.PageInfo.Page)
			assert.Equal(t, tc.expectedLimit, conn.PageInfo.Limit)
			assert.Len(t, conn.Edges, tc.expectedEdges)
			assert.False(t, conn.PageInfo.HasPreviousPage)
		})
	}
}

func TestPaginate_PageBeyondEnd(t *testing.T) {
	conn := Paginate(sequence(15), &PageRequest{Page: intPtr(5), Limit: intPtr(10)}, DefaultPageSize)

	assert.Empty(t, conn.Edges)
	assert.False(t, conn.PageInfo.HasNextPage)
	assert.True(t, conn.PageInfo.HasPreviousPage)
	assert.Equal(t, 15, conn.PageInfo.TotalCount)
	assert.Nil(t, conn.PageInfo.StartCursor)
	assert.Nil(t, conn.PageInfo.EndCursor)
}

func TestPaginate_EmptySequence(t *testing.T) {
	conn := Paginate([]int{}, nil, DefaultPageSize)

	assert.Empty(t, conn.Edges)
	assert.Equal(t, 0, conn.PageInfo.TotalCount)
	assert.False(t, conn.PageInfo.HasNextPage)
	assert.False(t, conn.PageInfo.HasPreviousPage)
	assert.Nil(t, conn.PageInfo.StartCursor)
}

func TestPaginate_ExactFitHasNoNextPage(t *testing.T) {
	conn := Paginate(sequence(20), &PageRequest{Page: intPtr(2), Limit: intPtr(10)}, DefaultPageSize)

	assert.Len(t, conn.Edges, 10)
	assert.False(t, conn.PageInfo.HasNextPage)
}

func TestPaginate_WalkingAllPagesVisitsEveryItemOnce(t *testing.T) {
	for _, total := range []int{0, 1, 9, 10, 11, 57, 100} {
		for _, limit := range []int{1, 3, 10, 25} {
			items := sequence(total)
			seen := 0
			page := 1
			for {
				conn := Paginate(items, &PageRequest{Page: intPtr(page), Limit: intPtr(limit)}, DefaultPageSize)
				require.Equal(t, total, conn.PageInfo.TotalCount)
				for _, e := range conn.Edges {
					require.Equal(t, strconv.Itoa(seen), e.Cursor, "cursor is the absolute index")
					seen++
				}
				if !conn.PageInfo.HasNextPage {
					break
				}
				page++
			}
			assert.Equal(t, total, seen, "total=%d limit=%d", total, limit)
		}
	}
}

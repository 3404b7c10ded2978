package repositories

import (
	"reflect"
	"testing"

	"github.com/tawann/tawann-space/backend/internal/models"
)

func TestSearchFilter(t *testing.T) {
	tests := []struct {
		name       string
		category   string
		keyword    string
		wantClause string
		wantArgs   []interface{}
	}{
		{
			name:       "no filters",
			wantClause: "",
			wantArgs:   nil,
		},
		{
			name:       "category only",
			category:   "tech",
			wantClause: "categories.name ILIKE ?",
			wantArgs:   []interface{}{"%tech%"},
		},
		{
			name:       "keyword only",
			keyword:    "golang",
			wantClause: "posts.title ILIKE ? OR posts.description ILIKE ? OR posts.content ILIKE ?",
			wantArgs:   []interface{}{"%golang%", "%golang%", "%golang%"},
		},
		{
			name:       "category and keyword",
			category:   "tech",
			keyword:    "golang",
			wantClause: "categories.name ILIKE ? AND (posts.title ILIKE ? OR posts.description ILIKE ? OR posts.content ILIKE ?)",
			wantArgs:   []interface{}{"%tech%", "%golang%", "%golang%", "%golang%"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clause, args := searchFilter(tt.category, tt.keyword)
			if clause != tt.wantClause {
				t.Errorf("clause = %q, want %q", clause, tt.wantClause)
			}
			if !reflect.DeepEqual(args, tt.wantArgs) {
				t.Errorf("args = %v, want %v", args, tt.wantArgs)
			}
		})
	}
}

// An empty keyword must produce exactly the same predicate as an omitted one.
func TestSearchFilterEmptyKeywordMatchesOmitted(t *testing.T) {
	clauseA, argsA := searchFilter("tech", "")
	clauseB, argsB := searchFilter("tech", "")
	if clauseA != clauseB || !reflect.DeepEqual(argsA, argsB) {
		t.Fatalf("same inputs produced different predicates")
	}
	if clauseA != "categories.name ILIKE ?" {
		t.Errorf("category-only predicate contains unexpected clauses: %q", clauseA)
	}
}

func TestNormalizePage(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{0, 1},
		{-5, 1},
		{1, 1},
		{7, 7},
	}
	for _, tt := range tests {
		if got := normalizePage(tt.in); got != tt.want {
			t.Errorf("normalizePage(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeLimit(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{0, DefaultPostLimit},
		{-3, 1},
		{1, 1},
		{6, 6},
		{100, 100},
		{500, 100},
	}
	for _, tt := range tests {
		if got := normalizeLimit(tt.in); got != tt.want {
			t.Errorf("normalizeLimit(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestNewPostPage(t *testing.T) {
	tests := []struct {
		name           string
		total          int64
		page           int
		limit          int
		wantTotalPages int
		wantNext       *int
		wantPrevious   *int
	}{
		{
			name:           "middle page",
			total:          13,
			page:           2,
			limit:          6,
			wantTotalPages: 3,
			wantNext:       intPtr(3),
			wantPrevious:   intPtr(1),
		},
		{
			name:           "first page with more results",
			total:          13,
			page:           1,
			limit:          6,
			wantTotalPages: 3,
			wantNext:       intPtr(2),
			wantPrevious:   nil,
		},
		{
			name:           "last page",
			total:          13,
			page:           3,
			limit:          6,
			wantTotalPages: 3,
			wantNext:       nil,
			wantPrevious:   intPtr(2),
		},
		{
			name:           "empty result set",
			total:          0,
			page:           1,
			limit:          6,
			wantTotalPages: 0,
			wantNext:       nil,
			wantPrevious:   nil,
		},
		{
			name:           "exact page boundary has no next",
			total:          12,
			page:           2,
			limit:          6,
			wantTotalPages: 2,
			wantNext:       nil,
			wantPrevious:   intPtr(1),
		},
		{
			name:           "single partial page",
			total:          4,
			page:           1,
			limit:          6,
			wantTotalPages: 1,
			wantNext:       nil,
			wantPrevious:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := newPostPage(nil, tt.total, tt.page, tt.limit)
			if got.TotalPosts != tt.total {
				t.Errorf("TotalPosts = %d, want %d", got.TotalPosts, tt.total)
			}
			if got.TotalPages != tt.wantTotalPages {
				t.Errorf("TotalPages = %d, want %d", got.TotalPages, tt.wantTotalPages)
			}
			if got.CurrentPage != tt.page {
				t.Errorf("CurrentPage = %d, want %d", got.CurrentPage, tt.page)
			}
			if got.Limit != tt.limit {
				t.Errorf("Limit = %d, want %d", got.Limit, tt.limit)
			}
			checkPagePtr(t, "NextPage", got.NextPage, tt.wantNext)
			checkPagePtr(t, "PreviousPage", got.PreviousPage, tt.wantPrevious)
		})
	}
}

func TestNewPostPageNeverReturnsNilPosts(t *testing.T) {
	got := newPostPage(nil, 0, 1, 6)
	if got.Posts == nil {
		t.Fatal("Posts slice is nil, want empty slice")
	}
	if len(got.Posts) != 0 {
		t.Fatalf("Posts has %d entries, want 0", len(got.Posts))
	}

	posts := []models.PostView{{ID: 1}, {ID: 2}}
	got = newPostPage(posts, 2, 1, 6)
	if len(got.Posts) != 2 {
		t.Fatalf("Posts has %d entries, want 2", len(got.Posts))
	}
}

func checkPagePtr(t *testing.T, field string, got, want *int) {
	t.Helper()
	switch {
	case want == nil && got != nil:
		t.Errorf("%s = %d, want absent", field, *got)
	case want != nil && got == nil:
		t.Errorf("%s absent, want %d", field, *want)
	case want != nil && got != nil && *got != *want:
		t.Errorf("%s = %d, want %d", field, *got, *want)
	}
}

func intPtr(v int) *int {
	return &v
}

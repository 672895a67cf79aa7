package listing

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type item struct {
	Name   string
	Email  string
	Status string
}

func sampleItems(n int) []item {
	items := make([]item, 0, n)
	for i := 0; i < n; i++ {
		status := "ACTIVE"
		if i%3 == 0 {
			status = "CANCELLED"
		}
		items = append(items, item{
			Name:   fmt.Sprintf("Person %d", i),
			Email:  fmt.Sprintf("person%d@example.com", i),
			Status: status,
		})
	}
	return items
}

func itemFields(i item) []string { return []string{i.Name, i.Email} }
func itemStatus(i item) string   { return i.Status }

func TestFilter(t *testing.T) {
	items := []item{
		{Name: "Alice Smith", Email: "alice@example.com", Status: "ACTIVE"},
		{Name: "Bob Jones", Email: "bob@example.com", Status: "CANCELLED"},
		{Name: "Carol Smith", Email: "carol@example.com", Status: "ACTIVE"},
	}

	t.Run("search is case-insensitive across fields", func(t *testing.T) {
		got := Filter(items, "SMITH", "", itemFields, itemStatus)
		assert.Len(t, got, 2)

		got = Filter(items, "bob@", "", itemFields, itemStatus)
		assert.Len(t, got, 1)
	})

	t.Run("status filter", func(t *testing.T) {
		got := Filter(items, "", "CANCELLED", itemFields, itemStatus)
		assert.Len(t, got, 1)
		assert.Equal(t, "Bob Jones", got[0].Name)
	})

	t.Run("ALL keeps every status", func(t *testing.T) {
		got := Filter(items, "", "ALL", itemFields, itemStatus)
		assert.Len(t, got, 3)
	})

	t.Run("search and status combine", func(t *testing.T) {
		got := Filter(items, "smith", "ACTIVE", itemFields, itemStatus)
		assert.Len(t, got, 2)
	})
}

func TestPaginate(t *testing.T) {
	items := sampleItems(37)

	t.Run("full pages", func(t *testing.T) {
		page, current, totalPages := Paginate(items, 1, 12)
		assert.Len(t, page, 12)
		assert.Equal(t, 1, current)
		assert.Equal(t, 4, totalPages)
	})

	t.Run("last page holds the remainder", func(t *testing.T) {
		page, _, _ := Paginate(items, 4, 12)
		assert.Len(t, page, 1)
	})

	t.Run("out-of-range page clamps and reports the served page", func(t *testing.T) {
		page, current, _ := Paginate(items, 99, 12)
		assert.Len(t, page, 1)
		assert.Equal(t, 4, current)

		page, current, _ = Paginate(items, 0, 12)
		assert.Len(t, page, 12)
		assert.Equal(t, 1, current)
	})

	t.Run("empty input is a single empty page", func(t *testing.T) {
		page, current, totalPages := Paginate([]item{}, 1, 12)
		assert.Empty(t, page)
		assert.Equal(t, 1, current)
		assert.Equal(t, 1, totalPages)
	})
}

func TestWindow(t *testing.T) {
	t.Run("few pages show everything", func(t *testing.T) {
		assert.Equal(t, []int{1, 2, 3}, Window(2, 3))
	})

	t.Run("near the start", func(t *testing.T) {
		assert.Equal(t, []int{1, 2, 3, 4, 5}, Window(2, 10))
		assert.Equal(t, []int{1, 2, 3, 4, 5}, Window(3, 10))
	})

	t.Run("near the end", func(t *testing.T) {
		assert.Equal(t, []int{6, 7, 8, 9, 10}, Window(9, 10))
		assert.Equal(t, []int{6, 7, 8, 9, 10}, Window(8, 10))
	})

	t.Run("middle centers on current", func(t *testing.T) {
		assert.Equal(t, []int{3, 4, 5, 6, 7}, Window(5, 10))
	})
}

func TestStateApply(t *testing.T) {
	s := &State{}

	page := s.Apply("", "", 3)
	assert.Equal(t, 3, page)

	t.Run("search change resets page", func(t *testing.T) {
		page := s.Apply("alice", "", 3)
		assert.Equal(t, 1, page)
	})

	t.Run("status change resets page", func(t *testing.T) {
		s.Apply("alice", "", 2)
		page := s.Apply("alice", "ACTIVE", 2)
		assert.Equal(t, 1, page)
	})

	t.Run("unchanged controls keep the page", func(t *testing.T) {
		s.Apply("alice", "ACTIVE", 4)
		page := s.Apply("alice", "ACTIVE", 4)
		assert.Equal(t, 4, page)
	})
}

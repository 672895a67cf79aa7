package controllers

import (
	"healthapp-admin/internal/app/services/shared/listing"
	"healthapp-admin/internal/pkg/constvars"
	"healthapp-admin/internal/pkg/dto/responses"
	"net/http"
	"strconv"
	"sync"
	"time"
)

const requestTimeout = 10 * time.Second

func listControls(r *http.Request) (string, string, int) {
	query := r.URL.Query()
	search := query.Get(constvars.ParamSearch)
	status := query.Get(constvars.ParamStatus)
	page, err := strconv.Atoi(query.Get(constvars.ParamPage))
	if err != nil {
		page = 0
	}
	return search, status, page
}

// buildListView applies the shared list pipeline: fold the controls into
// the per-resource state, filter, paginate, and attach the page window.
func buildListView[T any](
	items []T,
	ok bool,
	state *listing.State,
	mu *sync.Mutex,
	search, status string,
	page int,
	fields func(T) []string,
	statusOf func(T) string,
) *responses.ListView[T] {
	mu.Lock()
	effectivePage := state.Apply(search, status, page)
	mu.Unlock()

	filtered := listing.Filter(items, search, status, fields, statusOf)
	pageItems, effectivePage, totalPages := listing.Paginate(filtered, effectivePage, constvars.ItemsPerPage)

	return &responses.ListView[T]{
		Items:      pageItems,
		Total:      len(filtered),
		Page:       effectivePage,
		TotalPages: totalPages,
		PageWindow: listing.Window(effectivePage, totalPages),
		Search:     search,
		Status:     status,
		Partial:    !ok,
	}
}

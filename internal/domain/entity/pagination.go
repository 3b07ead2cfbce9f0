package entity

// Pagination is the page metadata returned with list endpoints
type Pagination struct {
	CurrentPage  int
	TotalPages   int
	TotalItems   int
	ItemsPerPage int
}

// HasNextPage reports whether another page can be requested
func (p Pagination) HasNextPage() bool {
	return p.CurrentPage < p.TotalPages
}

// NextPage returns the next page number, or 0 when there is none
func (p Pagination) NextPage() int {
	if !p.HasNextPage() {
		return 0
	}
	return p.CurrentPage + 1
}

// Page is one page of a paginated list
type Page[T any] struct {
	Items      []T
	Pagination Pagination
}

// Identifiable items can be de-duplicated across pages
type Identifiable interface {
	RecordID() string
}

// FlattenPages concatenates page items in order, dropping repeated IDs
func FlattenPages[T Identifiable](pages []Page[T]) []T {
	seen := make(map[string]struct{})
	var items []T
	for _, page := range pages {
		for _, item := range page.Items {
			id := item.RecordID()
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			items = append(items, item)
		}
	}
	return items
}

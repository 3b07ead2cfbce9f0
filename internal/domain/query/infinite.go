package query

import (
	"context"
	"sync"

	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/entity"
)

// PageFetcher loads one page of a list, page numbers start at 1
type PageFetcher[T any] func(ctx context.Context, page int) (*entity.Page[T], error)

// InfiniteList accumulates pages of a list. Page requests run one at a time.
type InfiniteList[T entity.Identifiable] struct {
	mu    sync.Mutex
	pages []entity.Page[T]
	fetch PageFetcher[T]
}

// NewInfiniteList creates an empty list
func NewInfiniteList[T entity.Identifiable](fetch PageFetcher[T]) *InfiniteList[T] {
	return &InfiniteList[T]{fetch: fetch}
}

// HasNextPage reports whether FetchNext would request another page
func (l *InfiniteList[T]) HasNextPage() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.hasNextLocked()
}

func (l *InfiniteList[T]) hasNextLocked() bool {
	if len(l.pages) == 0 {
		return true
	}
	return l.pages[len(l.pages)-1].Pagination.HasNextPage()
}

// FetchNext loads the next page when there is one. It is a no-op on the last page.
func (l *InfiniteList[T]) FetchNext(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.fetchNextLocked(ctx)
}

func (l *InfiniteList[T]) fetchNextLocked(ctx context.Context) error {
	if !l.hasNextLocked() {
		return nil
	}

	next := 1
	if len(l.pages) > 0 {
		next = l.pages[len(l.pages)-1].Pagination.NextPage()
	}

	page, err := l.fetch(ctx, next)
	if err != nil {
		return err
	}
	l.pages = append(l.pages, *page)
	return nil
}

// EnsurePages loads pages until n are present or the list is exhausted
func (l *InfiniteList[T]) EnsurePages(ctx context.Context, n int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for len(l.pages) < n && l.hasNextLocked() {
		before := len(l.pages)
		if err := l.fetchNextLocked(ctx); err != nil {
			return err
		}
		if len(l.pages) == before {
			break
		}
	}
	return nil
}

// PageCount returns how many pages are loaded
func (l *InfiniteList[T]) PageCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.pages)
}

// Items returns every loaded item in page order without duplicates
func (l *InfiniteList[T]) Items() []T {
	l.mu.Lock()
	defer l.mu.Unlock()
	return entity.FlattenPages(l.pages)
}

// Total returns the server-reported item count from the latest page
func (l *InfiniteList[T]) Total() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.pages) == 0 {
		return 0
	}
	return l.pages[len(l.pages)-1].Pagination.TotalItems
}

// GetInfinite returns the list stored under key, creating an empty one when absent or stale.
// Callers then extend it with EnsurePages.
func GetInfinite[T entity.Identifiable](ctx context.Context, c Cache, key Key, opts Options, fetch PageFetcher[T]) (*InfiniteList[T], error) {
	return Get(ctx, c, key, opts.NoRetry(), func(context.Context) (*InfiniteList[T], error) {
		return NewInfiniteList(fetch), nil
	})
}

package article

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"
)

const (
	DefaultLimit  = 10
	DefaultOffset = 0
)

// Store is the single source of truth for article records.
// Lookups report absence through the bool return, never through an error.
type Store interface {
	List(ctx context.Context, f Filter) ([]Article, error)
	Get(ctx context.Context, id int) (Article, bool, error)
	Create(ctx context.Context, in InsertArticle) (Article, error)
	RecordView(ctx context.Context, id int) error
	AdjustLikes(ctx context.Context, id int, increment bool) error
	AdjustDislikes(ctx context.Context, id int, increment bool) error
	Stats(ctx context.Context) (Stats, error)
}

// MemStore keeps all articles in process memory. It is the authoritative
// implementation: state lives for the lifetime of the process only.
type MemStore struct {
	mu       sync.Mutex
	articles map[int]Article
	nextID   int
	now      func() time.Time
}

func NewMemStore() *MemStore {
	return &MemStore{
		articles: make(map[int]Article),
		nextID:   1,
		now:      time.Now,
	}
}

func (s *MemStore) List(_ context.Context, f Filter) ([]Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := make([]Article, 0, len(s.articles))
	for _, a := range s.articles {
		if matches(a, f) {
			filtered = append(filtered, a)
		}
	}

	// newest first
	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].Timestamp.After(filtered[j].Timestamp)
	})

	offset := f.Offset
	if offset < 0 {
		offset = DefaultOffset
	}
	limit := f.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	if offset >= len(filtered) {
		return []Article{}, nil
	}
	end := offset + limit
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[offset:end], nil
}

func matches(a Article, f Filter) bool {
	if f.Search != "" {
		search := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(a.Title), search) &&
			!strings.Contains(strings.ToLower(a.Excerpt), search) &&
			!strings.Contains(strings.ToLower(a.Company), search) {
			return false
		}
	}

	if len(f.Categories) > 0 {
		found := false
		for _, c := range f.Categories {
			if a.Category == c {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if f.Severity != "" && f.Severity != "all" && a.Severity != f.Severity {
		return false
	}

	return true
}

func (s *MemStore) Get(_ context.Context, id int) (Article, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.articles[id]
	return a, ok, nil
}

func (s *MemStore) Create(_ context.Context, in InsertArticle) (Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a := Article{
		ID:        s.nextID,
		Title:     in.Title,
		Excerpt:   in.Excerpt,
		Content:   in.Content,
		Category:  in.Category,
		Severity:  in.Severity,
		Company:   in.Company,
		Location:  in.Location,
		Reporter:  in.Reporter,
		ReadTime:  in.ReadTime,
		Timestamp: s.now(),
	}
	s.nextID++
	s.articles[a.ID] = a
	return a, nil
}

func (s *MemStore) RecordView(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if a, ok := s.articles[id]; ok {
		a.Views++
		s.articles[id] = a
	}
	return nil
}

func (s *MemStore) AdjustLikes(_ context.Context, id int, increment bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if a, ok := s.articles[id]; ok {
		if increment {
			a.Likes++
		} else if a.Likes > 0 {
			a.Likes--
		}
		s.articles[id] = a
	}
	return nil
}

func (s *MemStore) AdjustDislikes(_ context.Context, id int, increment bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if a, ok := s.articles[id]; ok {
		if increment {
			a.Dislikes++
		} else if a.Dislikes > 0 {
			a.Dislikes--
		}
		s.articles[id] = a
	}
	return nil
}

func (s *MemStore) Stats(_ context.Context) (Stats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := Stats{
		CategoryCounts: make(map[string]int),
	}
	weekAgo := s.now().Add(-7 * 24 * time.Hour)

	for _, a := range s.articles {
		stats.TotalIncidents++
		if a.Timestamp.After(weekAgo) {
			stats.ActiveThisWeek++
		}
		if a.Severity == SeverityCritical {
			stats.CriticalLevel++
		}
		stats.CategoryCounts[a.Category]++
	}

	return stats, nil
}

package article

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type MemStoreSuite struct {
	suite.Suite

	ctx   context.Context
	store *MemStore
	now   time.Time
}

func TestMemStoreSuite(t *testing.T) {
	suite.Run(t, new(MemStoreSuite))
}

func (s *MemStoreSuite) SetupTest() {
	s.ctx = context.Background()
	s.now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	s.store = NewMemStore()
	s.store.now = func() time.Time { return s.now }
}

// create inserts an article and advances the clock so every record gets a
// distinct timestamp.
func (s *MemStoreSuite) create(in InsertArticle) Article {
	a, err := s.store.Create(s.ctx, in)
	s.Require().NoError(err)
	s.now = s.now.Add(time.Minute)
	return a
}

func (s *MemStoreSuite) insert(n int) []Article {
	created := make([]Article, 0, n)
	for i := 0; i < n; i++ {
		created = append(created, s.create(InsertArticle{
			Title:    fmt.Sprintf("Incident %d", i),
			Excerpt:  "excerpt",
			Content:  "content",
			Category: Categories[i%len(Categories)],
			Severity: SeverityLevels[i%len(SeverityLevels)],
			Company:  "MegaCorp",
		}))
	}
	return created
}

func (s *MemStoreSuite) TestCreateAssignsSequentialIDs() {
	first := s.create(InsertArticle{Title: "First", Category: Categories[0], Severity: "critical", Company: "MegaCorp"})
	second := s.create(InsertArticle{Title: "Second", Category: Categories[1], Severity: "monitoring", Company: "TechFlow"})

	s.Equal(1, first.ID)
	s.Equal(2, second.ID)
}

func (s *MemStoreSuite) TestCreateZeroesCountersAndStampsTime() {
	created := s.create(InsertArticle{Title: "First", Category: Categories[0], Severity: "critical", Company: "MegaCorp"})

	s.Zero(created.Views)
	s.Zero(created.Comments)
	s.Zero(created.Likes)
	s.Zero(created.Dislikes)
	s.Equal(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC), created.Timestamp)
}

func (s *MemStoreSuite) TestGetUnknownID() {
	_, ok, err := s.store.Get(s.ctx, 42)
	s.NoError(err)
	s.False(ok)
}

func (s *MemStoreSuite) TestRecordViewIncrementsViewsOnly() {
	created := s.create(InsertArticle{Title: "First", Category: Categories[0], Severity: "critical", Company: "MegaCorp"})

	s.Require().NoError(s.store.RecordView(s.ctx, created.ID))

	got, ok, err := s.store.Get(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Require().True(ok)

	want := created
	want.Views = created.Views + 1
	s.Equal(want, got)
}

func (s *MemStoreSuite) TestRecordViewUnknownIDIsNoop() {
	s.NoError(s.store.RecordView(s.ctx, 999))
}

func (s *MemStoreSuite) TestAdjustLikesFloorsAtZero() {
	created := s.create(InsertArticle{Title: "First", Category: Categories[0], Severity: "critical", Company: "MegaCorp"})

	s.Require().NoError(s.store.AdjustLikes(s.ctx, created.ID, false))

	got, _, err := s.store.Get(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Zero(got.Likes)
}

func (s *MemStoreSuite) TestAdjustLikesRoundTrip() {
	created := s.create(InsertArticle{Title: "First", Category: Categories[0], Severity: "critical", Company: "MegaCorp"})

	s.Require().NoError(s.store.AdjustLikes(s.ctx, created.ID, true))
	s.Require().NoError(s.store.AdjustLikes(s.ctx, created.ID, true))
	s.Require().NoError(s.store.AdjustLikes(s.ctx, created.ID, false))

	got, _, err := s.store.Get(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Equal(1, got.Likes)
}

func (s *MemStoreSuite) TestAdjustDislikesUnknownIDIsNoop() {
	s.NoError(s.store.AdjustDislikes(s.ctx, 999, true))
}

func (s *MemStoreSuite) TestListNewestFirst() {
	s.insert(3)

	got, err := s.store.List(s.ctx, Filter{})
	s.Require().NoError(err)
	s.Require().Len(got, 3)
	s.Equal("Incident 2", got[0].Title)
	s.Equal("Incident 1", got[1].Title)
	s.Equal("Incident 0", got[2].Title)
}

func (s *MemStoreSuite) TestListDefaultLimit() {
	s.insert(15)

	got, err := s.store.List(s.ctx, Filter{})
	s.Require().NoError(err)
	s.Len(got, DefaultLimit)
}

func (s *MemStoreSuite) TestListOffsetPastEnd() {
	s.insert(2)

	got, err := s.store.List(s.ctx, Filter{Offset: 5})
	s.Require().NoError(err)
	s.Empty(got)
}

// Pagination law: page(0,n) ++ page(n,m) == page(0,n+m) for an unchanged set.
func (s *MemStoreSuite) TestListPaginationComposes() {
	s.insert(9)

	first, err := s.store.List(s.ctx, Filter{Offset: 0, Limit: 4})
	s.Require().NoError(err)
	second, err := s.store.List(s.ctx, Filter{Offset: 4, Limit: 3})
	s.Require().NoError(err)
	whole, err := s.store.List(s.ctx, Filter{Offset: 0, Limit: 7})
	s.Require().NoError(err)

	s.Equal(whole, append(first, second...))
}

func (s *MemStoreSuite) TestListIsIdempotent() {
	s.insert(6)

	first, err := s.store.List(s.ctx, Filter{Severity: "critical", Limit: 5})
	s.Require().NoError(err)
	second, err := s.store.List(s.ctx, Filter{Severity: "critical", Limit: 5})
	s.Require().NoError(err)

	s.Equal(first, second)
}

func (s *MemStoreSuite) TestListSearchIsCaseInsensitive() {
	s.create(InsertArticle{Title: "Chatbot Achieves World Peace", Excerpt: "e", Content: "c", Category: Categories[0], Severity: "critical", Company: "MegaCorp"})
	s.create(InsertArticle{Title: "Robot Moves the Destination", Excerpt: "e", Content: "c", Category: Categories[1], Severity: "concerning", Company: "TechFlow"})

	got, err := s.store.List(s.ctx, Filter{Search: "WORLD peace"})
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.Equal("Chatbot Achieves World Peace", got[0].Title)

	// company matches too
	got, err = s.store.List(s.ctx, Filter{Search: "techflow"})
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.Equal("Robot Moves the Destination", got[0].Title)
}

func (s *MemStoreSuite) TestListCategoryMembership() {
	s.insert(5) // one article per category

	got, err := s.store.List(s.ctx, Filter{Categories: []string{Categories[0], Categories[2]}})
	s.Require().NoError(err)
	s.Len(got, 2)
}

func (s *MemStoreSuite) TestListUnusedCategoryYieldsNothing() {
	s.create(InsertArticle{Title: "First", Excerpt: "e", Content: "c", Category: Categories[0], Severity: "critical", Company: "MegaCorp"})

	got, err := s.store.List(s.ctx, Filter{Categories: []string{Categories[4]}})
	s.Require().NoError(err)
	s.Empty(got)
}

func (s *MemStoreSuite) TestListSeverityAllMeansUnfiltered() {
	s.insert(6)

	all, err := s.store.List(s.ctx, Filter{Severity: "all"})
	s.Require().NoError(err)
	s.Len(all, 6)

	critical, err := s.store.List(s.ctx, Filter{Severity: "critical"})
	s.Require().NoError(err)
	s.Len(critical, 2)
}

func (s *MemStoreSuite) TestStatsCategoryCountsSumToTotal() {
	s.insert(7)

	stats, err := s.store.Stats(s.ctx)
	s.Require().NoError(err)

	sum := 0
	for _, n := range stats.CategoryCounts {
		sum += n
	}
	s.Equal(stats.TotalIncidents, sum)
}

func (s *MemStoreSuite) TestStatsScenario() {
	// five articles across four categories, exactly one critical
	specs := []struct {
		category string
		severity string
	}{
		{Categories[0], "critical"},
		{Categories[1], "concerning"},
		{Categories[2], "monitoring"},
		{Categories[3], "concerning"},
		{Categories[0], "monitoring"},
	}
	for i, sp := range specs {
		s.create(InsertArticle{
			Title:    fmt.Sprintf("Incident %d", i),
			Excerpt:  "e",
			Content:  "c",
			Category: sp.category,
			Severity: sp.severity,
			Company:  "MegaCorp",
		})
	}

	stats, err := s.store.Stats(s.ctx)
	s.Require().NoError(err)

	s.Equal(5, stats.TotalIncidents)
	s.Equal(1, stats.CriticalLevel)
	s.Equal(5, stats.ActiveThisWeek)
	s.Len(stats.CategoryCounts, 4)
}

func (s *MemStoreSuite) TestStatsActiveThisWeekWindow() {
	old := s.create(InsertArticle{Title: "Old", Excerpt: "e", Content: "c", Category: Categories[0], Severity: "monitoring", Company: "MegaCorp"})

	// age the first article past the window
	s.store.mu.Lock()
	aged := s.store.articles[old.ID]
	aged.Timestamp = s.now.Add(-8 * 24 * time.Hour)
	s.store.articles[old.ID] = aged
	s.store.mu.Unlock()

	s.create(InsertArticle{Title: "Fresh", Excerpt: "e", Content: "c", Category: Categories[0], Severity: "monitoring", Company: "MegaCorp"})

	stats, err := s.store.Stats(s.ctx)
	s.Require().NoError(err)
	s.Equal(2, stats.TotalIncidents)
	s.Equal(1, stats.ActiveThisWeek)
}

func (s *MemStoreSuite) TestSeedLoadsFiveArticles() {
	s.store.Seed()

	stats, err := s.store.Stats(s.ctx)
	s.Require().NoError(err)
	s.Equal(5, stats.TotalIncidents)
	s.Equal(2, stats.CriticalLevel)

	sum := 0
	for _, n := range stats.CategoryCounts {
		sum += n
	}
	s.Equal(5, sum)

	// ids continue past the seed
	created := s.create(InsertArticle{Title: "Sixth", Excerpt: "e", Content: "c", Category: Categories[0], Severity: "critical", Company: "MegaCorp"})
	s.Equal(6, created.ID)
}

package ingest

import (
	"context"
	"log"
	"strings"

	"ai-safety-tribune/internal/article"
	"ai-safety-tribune/internal/github"

	"github.com/google/uuid"
)

// Publisher notifies downstream consumers about newly created articles.
type Publisher interface {
	PublishArticleCreated(ctx context.Context, a *article.Article) error
}

type Service struct {
	store      article.Store
	fetcher    github.Fetcher
	publisher  Publisher // nil disables event publishing
	mainRef    string
	contentDir string
	contentExt string
	logger     *log.Logger
}

func NewService(store article.Store, fetcher github.Fetcher, publisher Publisher, mainRef, contentDir, contentExt string, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}

	return &Service{
		store:      store,
		fetcher:    fetcher,
		publisher:  publisher,
		mainRef:    mainRef,
		contentDir: contentDir,
		contentExt: contentExt,
		logger:     logger,
	}
}

// ProcessPush turns one push event into zero or more stored articles.
// Every per-file problem is logged and skipped; a single bad content file
// must never block the rest of the push.
func (s *Service) ProcessPush(ctx context.Context, payload PushEvent) PushResult {
	if payload.Ref != s.mainRef {
		s.logger.Printf("ignoring push to %s", payload.Ref)
		return PushResult{
			Message: "Ignored non-main branch push",
			Titles:  []string{},
			Ignored: true,
		}
	}

	// batch id ties together the log lines of one delivery
	batch := uuid.NewString()
	titles := []string{}

	for _, commit := range payload.Commits {
		for _, filePath := range s.candidateFiles(commit) {
			created, err := s.createFromFile(ctx, payload.Repository.FullName, filePath)
			if err != nil {
				s.logger.Printf("batch %s: failed to process %s: %v", batch, filePath, err)
				continue
			}
			titles = append(titles, created.Title)
		}
	}

	s.logger.Printf("batch %s: created %d article(s)", batch, len(titles))

	return PushResult{
		Message:       "Webhook processed successfully",
		ArticlesAdded: len(titles),
		Titles:        titles,
	}
}

// candidateFiles picks the content files touched by a commit. Removed files
// are ignored: articles are never deleted through the pipeline.
func (s *Service) candidateFiles(commit Commit) []string {
	var files []string
	for _, paths := range [][]string{commit.Added, commit.Modified} {
		for _, p := range paths {
			if strings.HasPrefix(p, s.contentDir) && strings.HasSuffix(p, s.contentExt) {
				files = append(files, p)
			}
		}
	}
	return files
}

// CreateFromFile runs a single fetch+validate+create cycle. The manual test
// endpoint uses it directly, outside any push event.
func (s *Service) CreateFromFile(ctx context.Context, repoFullName, filePath string) (article.Article, error) {
	return s.createFromFile(ctx, repoFullName, filePath)
}

func (s *Service) createFromFile(ctx context.Context, repoFullName, filePath string) (article.Article, error) {
	content, err := s.fetcher.FetchFile(ctx, repoFullName, filePath)
	if err != nil {
		return article.Article{}, err
	}

	in, err := ValidateArticleFile([]byte(content))
	if err != nil {
		return article.Article{}, err
	}

	// defaults are applied after validation, never by the schema itself
	if in.Reporter == "" {
		in.Reporter = article.DefaultReporter
	}
	if in.ReadTime == "" {
		in.ReadTime = article.DefaultReadTime
	}

	created, err := s.store.Create(ctx, in)
	if err != nil {
		return article.Article{}, err
	}

	if s.publisher != nil {
		if err := s.publisher.PublishArticleCreated(ctx, &created); err != nil {
			s.logger.Printf("failed to publish created event for article %d: %v", created.ID, err)
		}
	}

	return created, nil
}

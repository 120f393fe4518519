package ingest

import (
	"encoding/json"
	"fmt"
	"strings"

	"ai-safety-tribune/internal/article"
)

// articleFile is the on-disk shape of a content file in the source repo.
type articleFile struct {
	Title    string `json:"title"`
	Excerpt  string `json:"excerpt"`
	Content  string `json:"content"`
	Category string `json:"category"`
	Severity string `json:"severity"`
	Company  string `json:"company"`
	Location string `json:"location"`
	Reporter string `json:"reporter"`
	ReadTime string `json:"readTime"`
}

// FieldError describes a single failed constraint on an incoming file.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError carries every field that failed, so a bad file is
// diagnosable from one log line.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "invalid article file: " + strings.Join(parts, "; ")
}

// ValidateArticleFile parses raw JSON and checks it against the article
// schema. Reporter and readTime stay empty here when absent: defaulting is
// the caller's job, not the schema's.
func ValidateArticleFile(raw []byte) (article.InsertArticle, error) {
	var file articleFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return article.InsertArticle{}, fmt.Errorf("parse article file: %w", err)
	}

	var fields []FieldError
	requireText := func(name, value string) {
		if value == "" {
			fields = append(fields, FieldError{Field: name, Message: "required"})
		}
	}

	requireText("title", file.Title)
	requireText("excerpt", file.Excerpt)
	requireText("content", file.Content)
	requireText("company", file.Company)

	if !article.ValidCategory(file.Category) {
		fields = append(fields, FieldError{
			Field:   "category",
			Message: fmt.Sprintf("%q is not a known category", file.Category),
		})
	}
	if !article.ValidSeverity(file.Severity) {
		fields = append(fields, FieldError{
			Field:   "severity",
			Message: fmt.Sprintf("%q is not a known severity", file.Severity),
		})
	}

	if len(fields) > 0 {
		return article.InsertArticle{}, &ValidationError{Fields: fields}
	}

	return article.InsertArticle{
		Title:    file.Title,
		Excerpt:  file.Excerpt,
		Content:  file.Content,
		Category: file.Category,
		Severity: file.Severity,
		Company:  file.Company,
		Location: file.Location,
		Reporter: file.Reporter,
		ReadTime: file.ReadTime,
	}, nil
}

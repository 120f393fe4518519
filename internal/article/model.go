package article

import (
	"time"
)

// Categories is the closed set of failure-mode labels an article may carry.
var Categories = []string{
	"Goal Misgeneralization",
	"Reward Hacking",
	"Distribution Shift",
	"Mesa-Optimization",
	"Deceptive Alignment",
}

// SeverityLevels is the closed set of severity labels, most urgent first.
var SeverityLevels = []string{
	"critical",
	"concerning",
	"monitoring",
}

const (
	SeverityCritical = "critical"

	DefaultReporter = "AI Safety Fails Team"
	DefaultReadTime = "5 min read"
)

type Article struct {
	ID        int       `json:"id" bson:"_id"`
	Title     string    `json:"title" bson:"title"`
	Excerpt   string    `json:"excerpt" bson:"excerpt"`
	Content   string    `json:"content" bson:"content"`
	Category  string    `json:"category" bson:"category"`
	Severity  string    `json:"severity" bson:"severity"`
	Company   string    `json:"company" bson:"company"`
	Location  string    `json:"location" bson:"location"`
	Views     int       `json:"views" bson:"views"`
	Comments  int       `json:"comments" bson:"comments"`
	Likes     int       `json:"likes" bson:"likes"`
	Dislikes  int       `json:"dislikes" bson:"dislikes"`
	Reporter  string    `json:"reporter" bson:"reporter"`
	ReadTime  string    `json:"readTime" bson:"readTime"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
}

// InsertArticle is the shape accepted by Store.Create: content fields only.
// The store assigns id, counters and timestamp.
type InsertArticle struct {
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

// Filter narrows and pages a List call. Zero values mean "unfiltered";
// a Severity of "all" is treated the same as empty.
type Filter struct {
	Search     string
	Categories []string
	Severity   string
	Limit      int
	Offset     int
}

type Stats struct {
	TotalIncidents int            `json:"totalIncidents"`
	ActiveThisWeek int            `json:"activeThisWeek"`
	CriticalLevel  int            `json:"criticalLevel"`
	CategoryCounts map[string]int `json:"categoryCounts"`
}

func ValidCategory(c string) bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

func ValidSeverity(s string) bool {
	for _, v := range SeverityLevels {
		if v == s {
			return true
		}
	}
	return false
}

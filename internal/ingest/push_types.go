package ingest

// PushEvent is the push-notification payload delivered to the webhook.
// Only the fields the pipeline reads are modelled.
type PushEvent struct {
	Ref        string     `json:"ref"`
	Commits    []Commit   `json:"commits"`
	Repository Repository `json:"repository"`
	Pusher     Pusher     `json:"pusher"`
}

type Commit struct {
	ID       string   `json:"id"`
	Message  string   `json:"message"`
	Added    []string `json:"added"`
	Modified []string `json:"modified"`
	Removed  []string `json:"removed"`
	Author   Author   `json:"author"`
}

type Author struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Repository struct {
	Name     string `json:"name"`
	FullName string `json:"full_name"`
}

type Pusher struct {
	Name string `json:"name"`
}

// PushResult summarises one webhook delivery.
type PushResult struct {
	Message       string   `json:"message"`
	ArticlesAdded int      `json:"articlesAdded"`
	Titles        []string `json:"titles"`
	Ignored       bool     `json:"-"`
}

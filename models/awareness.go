package models

import "time"

// Awareness content categories accepted by the admin API.
var awarenessCategories = map[string]struct{}{
	"banking":    {},
	"government": {},
	"healthcare": {},
	"education":  {},
	"legal":      {},
	"general":    {},
}

// IsAwarenessCategory reports whether category is one of the accepted values.
func IsAwarenessCategory(category string) bool {
	_, ok := awarenessCategories[category]
	return ok
}

// Translation is one localized variant of an awareness article.
type Translation struct {
	Language string `json:"language"`
	Title    string `json:"title"`
	Content  string `json:"content"`
}

// AwarenessContent is an editorial article shown on the awareness pages.
// Articles are created unpublished and become publicly readable only after
// an explicit publish.
type AwarenessContent struct {
	ContentID    int64         `json:"contentId"`
	Title        string        `json:"title"`
	Content      string        `json:"content"`
	Category     string        `json:"category"`
	Slug         string        `json:"slug"`
	Tags         []string      `json:"tags,omitempty"`
	Translations []Translation `json:"translations,omitempty"`
	IsPublished  bool          `json:"isPublished"`
	Views        int64         `json:"views"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the AwarenessContent model.
func (a AwarenessContent) TableName() string {
	return "awareness_content"
}

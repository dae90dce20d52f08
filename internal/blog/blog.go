package blog

import (
	"errors"
	"time"
)

var ErrBlogNotFound = errors.New("blog not found")

const LatestLimit = 3

type BlogPost struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	ImageURL    string    `json:"imageUrl"`
	VideoURL    string    `json:"videoUrl"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// BlogPostUpdate carries a partial update, nil fields stay unchanged.
type BlogPostUpdate struct {
	Title       *string
	Description *string
	Date        *time.Time
	ImageURL    *string
	VideoURL    *string
}

func (u BlogPostUpdate) Empty() bool {
	return u.Title == nil && u.Description == nil && u.Date == nil && u.ImageURL == nil && u.VideoURL == nil
}

package projects

import (
	"errors"
	"time"
)

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrInvalidCategory = errors.New("invalid project category")
)

const (
	CategoryApplication = "application"
	CategoryOpenSource  = "opensource"
)

func IsValidCategory(category string) bool {
	return category == CategoryApplication || category == CategoryOpenSource
}

type Project struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	GithubURL   string    `json:"githubUrl"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ProjectUpdate carries a partial update, nil fields stay unchanged.
type ProjectUpdate struct {
	Title       *string
	Description *string
	GithubURL   *string
	Category    *string
}

func (u ProjectUpdate) Empty() bool {
	return u.Title == nil && u.Description == nil && u.GithubURL == nil && u.Category == nil
}

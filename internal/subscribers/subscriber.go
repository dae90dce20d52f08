package subscribers

import (
	"errors"
	"time"
)

var ErrEmailExists = errors.New("email already exists")

type Subscriber struct {
	ID        int       `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

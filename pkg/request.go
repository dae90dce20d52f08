package pkg

import (
	"mime"
	"net/http"
)

// IsJSONRequest reports whether the request body is declared as JSON, ignoring media type params.
func IsJSONRequest(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return false
	}
	return mediaType == ContentType.JSON
}

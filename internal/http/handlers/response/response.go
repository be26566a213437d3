package response

import (
	"encoding/json"
	"net/http"
	"time"
)

type errorResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
	Path      string    `json:"path"`
}

func RenderUnauthorized(rw http.ResponseWriter, r *http.Request) {
	RenderError(rw, r, "invalid authentication token", http.StatusUnauthorized)
}

func RenderNotFound(rw http.ResponseWriter, r *http.Request, msg string) {
	RenderError(rw, r, msg, http.StatusNotFound)
}

func RenderInternalError(rw http.ResponseWriter, r *http.Request) {
	RenderError(rw, r, "internal error", http.StatusInternalServerError)
}

func RenderRateLimitExceeded(rw http.ResponseWriter, r *http.Request) {
	RenderError(rw, r, "rate limit exceeded", http.StatusTooManyRequests)
}

func RenderError(rw http.ResponseWriter, r *http.Request, msg string, status int) {
	Render(rw, errorResponse{Timestamp: time.Now().UTC(), Message: msg, Path: r.URL.Path}, status)
}

func Render(rw http.ResponseWriter, res interface{}, status int) {
	rw.Header().Set("Content-Type", "application/json")

	content, err := json.Marshal(res)
	if err != nil {
		rw.WriteHeader(http.StatusInternalServerError)
		return
	}

	rw.WriteHeader(status)
	rw.Write(content)
}

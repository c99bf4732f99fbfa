package books

import (
	"fmt"
	"strings"
)

// Book mirrors a record returned by GET /books. The server assigns ID.
type Book struct {
	ID          string `json:"_id"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Description string `json:"description"`
}

// Draft is the body of POST /books.
type Draft struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	Description string `json:"description"`
}

// Complete reports whether every field holds something other than whitespace.
func (d Draft) Complete() bool {
	return strings.TrimSpace(d.Title) != "" &&
		strings.TrimSpace(d.Author) != "" &&
		strings.TrimSpace(d.Description) != ""
}

// StatusError is returned when the API answers with a 4xx or 5xx status.
type StatusError struct {
	Method string
	Path   string
	Code   int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("api %s %s returned status %d", e.Method, e.Path, e.Code)
}

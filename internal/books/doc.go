// Package books provides an HTTP client for the books REST API.
//
// # Overview
//
// The API is an external collaborator exposing one collection:
//
//   - GET    /books       → JSON array of {_id, title, author, description}
//   - POST   /books       → create from {title, author, description}
//   - DELETE /books/{id}  → remove one book
//
// Client implements the Gateway interface, which is what the UI depends on.
// Tests substitute their own Gateway.
//
// # Client Usage
//
//	client, err := books.NewClient("http://localhost:8000/books",
//		books.WithTimeout(5*time.Second),
//		books.WithLogger(logger),
//	)
//	if err != nil {
//		return err
//	}
//	list, err := client.FetchAll(ctx)
//
// # Request Handling
//
// All requests:
//   - Use the caller's context for cancellation
//   - Set Accept: application/json and User-Agent: bookshelf/0.1
//   - Carry a fresh X-Request-ID so server logs can be correlated
//   - Are bounded by the http.Client timeout (10s unless overridden)
//
// Bodies are encoded and decoded with json-iterator in its standard-library
// compatible configuration. A null list body decodes to an empty slice.
//
// # Error Handling
//
// Every call returns an explicit error:
//
//   - "execute request: ..." for network failures and cancellation
//   - *StatusError for 4xx/5xx answers ("api DELETE /books/42 returned status 404")
//   - "decode response: ..." for malformed JSON
//   - "book id required" when Delete is called with a blank id (no request is sent)
//
// The client never retries. Recovery policy belongs to the caller.
//
// # URL Construction
//
// The configured URL is the collection endpoint itself:
//
//   - "" → http://localhost:8000/books
//   - "localhost:9000/api/books/" → http://localhost:9000/api/books
//
// Query strings and fragments are dropped.
package books

// Package dispatch builds, sends and classifies HTTP requests to blockchain backends.
package dispatch

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/goodnatureofminers/blockinsight7000-sysclient/internal/sysclient/jsonview"
)

// QueryItem is one query parameter; keys may repeat and order is preserved.
type QueryItem struct {
	Key   string
	Value string
}

// Query builds query items from alternating key/value strings.
func Query(pairs ...string) []QueryItem {
	items := make([]QueryItem, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		items = append(items, QueryItem{Key: pairs[i], Value: pairs[i+1]})
	}
	return items
}

// Decoder turns a successful response body into a value.
type Decoder func([]byte) (any, error)

// JSONDecoder parses bodies as JSON.
func JSONDecoder(body []byte) (any, error) {
	return jsonview.Parse(body)
}

// RawDecoder hands back the body unchanged.
func RawDecoder(body []byte) (any, error) {
	return body, nil
}

// Request describes one backend call. URL, when set, replaces Path and Query.
type Request struct {
	Method string
	Path   string
	Query  []QueryItem
	URL    *url.URL
	Body   any
	// Decoder defaults to JSONDecoder.
	Decoder Decoder
	// AllowEmpty treats an empty success body as a nil value instead of a no-data failure.
	AllowEmpty bool
}

// Get builds a GET request.
func Get(path string, query ...QueryItem) Request {
	return Request{Method: http.MethodGet, Path: path, Query: query}
}

// Follow builds a GET request for a pagination link.
func Follow(next *url.URL) Request {
	return Request{Method: http.MethodGet, URL: next}
}

func encodeQuery(items []QueryItem) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		if item.Key == "" {
			continue
		}
		parts = append(parts, url.QueryEscape(item.Key)+"="+url.QueryEscape(item.Value))
	}
	return strings.Join(parts, "&")
}

var acceptedStatus = map[string][]int{
	http.MethodGet:    {http.StatusOK},
	http.MethodPost:   {http.StatusOK, http.StatusCreated},
	http.MethodPut:    {http.StatusOK, http.StatusCreated, http.StatusNoContent},
	http.MethodDelete: {http.StatusOK, http.StatusAccepted, http.StatusNoContent},
}

// Accepts reports whether code counts as success for method.
func Accepts(method string, code int) bool {
	codes, ok := acceptedStatus[method]
	if !ok {
		return code == http.StatusOK
	}
	for _, c := range codes {
		if c == code {
			return true
		}
	}
	return false
}

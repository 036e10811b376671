package dispatch

import (
	"net/url"

	"github.com/goodnatureofminers/blockinsight7000-sysclient/internal/sysclient/jsonview"
	"github.com/goodnatureofminers/blockinsight7000-sysclient/internal/sysclient/model"
)

// Page is one response worth of items plus the link to the following page.
type Page struct {
	Next  *url.URL
	Items []jsonview.Object
}

// Extract pulls the items out of a decoded response. Embedded responses carry them under
// _embedded[path], defaulting to none; otherwise the top-level object is the single item.
func Extract(value any, embedded bool, path string) (Page, error) {
	obj, ok := jsonview.AsObject(value)
	if !ok {
		return Page{}, model.NewMalformedError("expected object", nil)
	}

	next, err := nextLink(obj)
	if err != nil {
		return Page{}, err
	}

	if !embedded {
		return Page{Next: next, Items: []jsonview.Object{obj}}, nil
	}

	items := []jsonview.Object{}
	if container, ok := obj.Object("_embedded"); ok && container.Has(path) {
		items, ok = container.Objects(path)
		if !ok {
			return Page{}, model.NewMalformedError("expected array of objects at _embedded."+path, nil)
		}
	}
	return Page{Next: next, Items: items}, nil
}

func nextLink(obj jsonview.Object) (*url.URL, error) {
	links, ok := obj.Object("_links")
	if !ok {
		return nil, nil
	}
	next, ok := links.Object("next")
	if !ok {
		return nil, nil
	}
	href, ok := next.String("href")
	if !ok {
		return nil, nil
	}
	u, err := url.Parse(href)
	if err != nil {
		return nil, model.NewMalformedError("next link", err)
	}
	return u, nil
}

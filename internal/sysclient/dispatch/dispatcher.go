package dispatch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-sysclient/internal/sysclient/jsonview"
	"github.com/goodnatureofminers/blockinsight7000-sysclient/internal/sysclient/model"
)

// Decorator mutates outgoing requests, e.g. to add credentials.
type Decorator func(*http.Request)

// BearerToken adds an Authorization header.
func BearerToken(token string) Decorator {
	return func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+token)
	}
}

// BasicAuth adds HTTP basic credentials, as node RPC endpoints expect.
func BasicAuth(user, password string) Decorator {
	return func(r *http.Request) {
		r.SetBasicAuth(user, password)
	}
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithDecorator appends a request decorator.
func WithDecorator(d Decorator) Option {
	return func(dp *Dispatcher) { dp.decorators = append(dp.decorators, d) }
}

// WithBearerToken authorizes every request with token; an empty token is ignored.
func WithBearerToken(token string) Option {
	return func(dp *Dispatcher) {
		if token != "" {
			dp.decorators = append(dp.decorators, BearerToken(token))
		}
	}
}

// WithRateLimit paces requests to rps per second; zero or less means unlimited.
func WithRateLimit(rps int) Option {
	return func(dp *Dispatcher) {
		if rps > 0 {
			dp.limiter = ratelimit.New(rps)
		}
	}
}

// Dispatcher sends requests to one backend base URL and classifies the outcome.
type Dispatcher struct {
	base       *url.URL
	executor   HTTPExecutor
	caps       model.Capabilities
	decorators []Decorator
	limiter    ratelimit.Limiter
	logger     *zap.Logger

	mu       sync.Mutex
	lifetime context.Context
	cancel   context.CancelFunc
}

// New constructs a Dispatcher for baseURL.
func New(baseURL string, executor HTTPExecutor, caps model.Capabilities, logger *zap.Logger, opts ...Option) (*Dispatcher, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("parse base url %q: scheme and host required", baseURL)
	}

	lifetime, cancel := context.WithCancel(context.Background())
	d := &Dispatcher{
		base:     base,
		executor: executor,
		caps:     caps,
		limiter:  ratelimit.NewUnlimited(),
		logger:   logger,
		lifetime: lifetime,
		cancel:   cancel,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Capabilities returns the capability set requests are sent with.
func (d *Dispatcher) Capabilities() model.Capabilities {
	return d.caps
}

// CancelAll aborts every request in flight. Later requests proceed normally.
func (d *Dispatcher) CancelAll() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.cancel()
	d.lifetime, d.cancel = context.WithCancel(context.Background())
}

func (d *Dispatcher) bind(ctx context.Context) (context.Context, context.CancelFunc) {
	d.mu.Lock()
	lifetime := d.lifetime
	d.mu.Unlock()

	ctx, cancel := context.WithCancel(ctx)
	stop := context.AfterFunc(lifetime, cancel)
	return ctx, func() {
		stop()
		cancel()
	}
}

// URL resolves the target of req.
func (d *Dispatcher) URL(req Request) *url.URL {
	if req.URL != nil {
		return req.URL
	}
	u := *d.base
	if req.Path != "" {
		u = *d.base.JoinPath(req.Path)
	}
	if len(req.Query) > 0 {
		u.RawQuery = encodeQuery(req.Query)
	}
	return &u
}

// Do sends req and decodes the accepted response.
func (d *Dispatcher) Do(ctx context.Context, req Request) (any, error) {
	ctx, release := d.bind(ctx)
	defer release()

	httpReq, err := d.build(ctx, req)
	if err != nil {
		return nil, err
	}

	d.limiter.Take()
	// cancelled while waiting for a slot
	if err := ctx.Err(); err != nil {
		return nil, model.NewConnectivityError(err)
	}
	d.logger.Debug("dispatch request",
		zap.String("method", httpReq.Method),
		zap.String("path", httpReq.URL.Path),
	)

	resp, err := d.executor.Do(httpReq)
	if err != nil {
		return nil, model.NewConnectivityError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, model.NewConnectivityError(fmt.Errorf("read body: %w", err))
	}

	if !Accepts(httpReq.Method, resp.StatusCode) {
		return nil, badResponse(resp.StatusCode, body)
	}

	if len(body) == 0 {
		if req.AllowEmpty {
			return nil, nil
		}
		return nil, model.NewNoDataError(httpReq.Method + " " + httpReq.URL.Path)
	}

	decode := req.Decoder
	if decode == nil {
		decode = JSONDecoder
	}
	v, err := decode(body)
	if err != nil {
		return nil, model.NewMalformedError("decode response", err)
	}
	return v, nil
}

func (d *Dispatcher) build(ctx context.Context, req Request) (*http.Request, error) {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	var body io.Reader
	if req.Body != nil {
		payload, err := json.Marshal(req.Body)
		if err != nil {
			return nil, model.NewURLError(fmt.Errorf("encode body: %w", err))
		}
		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, d.URL(req).String(), body)
	if err != nil {
		return nil, model.NewURLError(err)
	}
	httpReq.Header.Set("Accept", d.caps.Accept)
	httpReq.Header.Set("Content-Type", "application/json")
	for _, decorate := range d.decorators {
		decorate(httpReq)
	}
	return httpReq, nil
}

func badResponse(code int, body []byte) error {
	if len(body) == 0 {
		return model.NewBadResponseError(code, nil, false)
	}
	v, err := jsonview.Parse(body)
	if err != nil {
		return model.NewBadResponseError(code, nil, true)
	}
	obj, _ := jsonview.AsObject(v)
	return model.NewBadResponseError(code, obj, false)
}

// Page sends req and extracts its items.
func (d *Dispatcher) Page(ctx context.Context, req Request, embedded bool, path string) (Page, error) {
	v, err := d.Do(ctx, req)
	if err != nil {
		return Page{}, err
	}
	return Extract(v, embedded, path)
}

// All follows next links from req until the last page and returns every item in page order.
func (d *Dispatcher) All(ctx context.Context, req Request, path string) ([]jsonview.Object, error) {
	var items []jsonview.Object
	for {
		page, err := d.Page(ctx, req, true, path)
		if err != nil {
			return nil, err
		}
		items = append(items, page.Items...)
		if page.Next == nil {
			return items, nil
		}
		req = Follow(page.Next)
	}
}

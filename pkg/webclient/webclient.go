// Package webclient is a small JSON-over-HTTP client used for the
// upstream APIs the site consumes (the affiliate price service).
// Every failure leaves this package as an *apperr.Error.
package webclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/techreviews/backend/pkg/apperr"
	"github.com/techreviews/backend/pkg/i18n"
)

const DefaultTimeout = 30 * time.Second

type Client struct {
	baseURL string
	headers http.Header
	timeout time.Duration
	hc      *http.Client
}

type Opt func(*Client)

func WithHeader(key, value string) Opt {
	return func(c *Client) { c.headers.Set(key, value) }
}

func WithTimeout(d time.Duration) Opt {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

func WithHTTPClient(hc *http.Client) Opt {
	return func(c *Client) {
		if hc != nil {
			c.hc = hc
		}
	}
}

func New(baseURL string, opts ...Opt) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		headers: http.Header{"Content-Type": []string{"application/json"}},
		timeout: DefaultTimeout,
		hc:      &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Params are appended to the request URL as query values.
type Params map[string]string

type callOpts struct {
	params  Params
	headers http.Header
	timeout time.Duration
}

type CallOpt func(*callOpts)

func Query(p Params) CallOpt {
	return func(o *callOpts) { o.params = p }
}

func Header(key, value string) CallOpt {
	return func(o *callOpts) {
		if o.headers == nil {
			o.headers = http.Header{}
		}
		o.headers.Set(key, value)
	}
}

func Timeout(d time.Duration) CallOpt {
	return func(o *callOpts) {
		if d > 0 {
			o.timeout = d
		}
	}
}

// Get decodes the JSON response into out. Pass a nil out to discard
// the body.
func (c *Client) Get(ctx context.Context, path string, out any, opts ...CallOpt) error {
	return c.call(ctx, http.MethodGet, path, nil, out, opts...)
}

func (c *Client) Post(ctx context.Context, path string, body, out any, opts ...CallOpt) error {
	return c.call(ctx, http.MethodPost, path, body, out, opts...)
}

func (c *Client) Put(ctx context.Context, path string, body, out any, opts ...CallOpt) error {
	return c.call(ctx, http.MethodPut, path, body, out, opts...)
}

func (c *Client) Patch(ctx context.Context, path string, body, out any, opts ...CallOpt) error {
	return c.call(ctx, http.MethodPatch, path, body, out, opts...)
}

func (c *Client) Delete(ctx context.Context, path string, out any, opts ...CallOpt) error {
	return c.call(ctx, http.MethodDelete, path, nil, out, opts...)
}

// errorBody is the error envelope upstream services respond with.
// Parsing is best effort: a malformed body leaves all fields empty.
type errorBody struct {
	Message          string               `json:"message"`
	Code             string               `json:"code"`
	LocalizedMessage i18n.LocalizedString `json:"localizedMessage"`
}

func (c *Client) call(
	ctx context.Context, method, path string, body, out any, opts ...CallOpt,
) error {
	op := "webclient." + method

	options := callOpts{timeout: c.timeout}
	for _, opt := range opts {
		opt(&options)
	}

	u, err := c.buildURL(path, options.params)
	if err != nil {
		return fmt.Errorf("%s: %w", op, apperr.Internal("invalid request url").WithCause(err))
	}

	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: %w", op, apperr.Internal("encode request body").WithCause(err))
		}
		reqBody = bytes.NewReader(b)
	}

	ctx, cancel := context.WithTimeout(ctx, options.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("%s: %w", op, apperr.Internal("build request").WithCause(err))
	}
	for k, vs := range c.headers {
		req.Header[k] = vs
	}
	for k, vs := range options.headers {
		req.Header[k] = vs
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("%s: %w", op,
				apperr.Timeout(fmt.Sprintf("%s %s: request timed out", method, path)).WithCause(err))
		}
		return fmt.Errorf("%s: %w", op,
			apperr.External(fmt.Sprintf("%s %s: %v", method, path, err), 0).WithCause(err))
	}
	defer resp.Body.Close()

	if err := c.handleResponse(resp, out); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (c *Client) buildURL(path string, params Params) (string, error) {
	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return "", err
	}
	if len(params) > 0 {
		q := u.Query()
		for k, v := range params {
			q.Set(k, v)
		}
		u.RawQuery = q.Encode()
	}
	return u.String(), nil
}

func (c *Client) handleResponse(resp *http.Response, out any) error {
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		_ = json.NewDecoder(resp.Body).Decode(&eb)

		msg := eb.Message
		if msg == "" {
			msg = fmt.Sprintf("HTTP error %d", resp.StatusCode)
		}
		code := apperr.Code(eb.Code)
		if code == "" {
			code = "API_ERROR"
		}
		return apperr.New(code, resp.StatusCode, msg, eb.LocalizedMessage)
	}

	// 204 and zero-length bodies are an empty success.
	if resp.StatusCode == http.StatusNoContent || resp.ContentLength == 0 {
		return nil
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return apperr.Internal("invalid JSON response").WithCause(err)
	}
	return nil
}

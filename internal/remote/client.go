package remote

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

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/idilsaglam/grocery/internal/model"
)

// Store is the remote grocery/note service as the client sees it.
type Store interface {
	Items(ctx context.Context) ([]model.Item, error)
	Toggle(ctx context.Context, id model.ID) error
	Note(ctx context.Context) (model.Note, error)
	SaveNote(ctx context.Context, text string) error
}

// UserAgent is sent with every request.
var UserAgent = "grocery/dev"

// maxBody caps how much of a response we are willing to decode.
const maxBody = 4 << 20

// Client talks to the store over HTTP. It holds no state besides its config.
type Client struct {
	base *url.URL
	http *http.Client
	log  *logrus.Entry
}

type Options struct {
	BaseURL string
	Timeout time.Duration
	// HTTPClient overrides the default client (tests).
	HTTPClient *http.Client
	Log        *logrus.Entry
}

func New(opts Options) (*Client, error) {
	raw := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		if err == nil {
			err = fmt.Errorf("not an absolute URL: %q", opts.BaseURL)
		}
		return nil, newError("new client", ErrCodeInvalidInput, err)
	}
	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: opts.Timeout}
	}
	log := opts.Log
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = logrus.NewEntry(l)
	}
	return &Client{base: u, http: hc, log: log.WithField("component", "remote")}, nil
}

// BaseURL returns the normalized base the client resolves paths against.
func (c *Client) BaseURL() string { return c.base.String() }

func (c *Client) Items(ctx context.Context) ([]model.Item, error) {
	const op = "list items"
	var items []model.Item
	if err := c.do(ctx, op, http.MethodGet, "items", nil, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []model.Item{}
	}
	return items, nil
}

func (c *Client) Toggle(ctx context.Context, id model.ID) error {
	const op = "toggle item"
	if id.IsZero() {
		return newError(op, ErrCodeInvalidInput, errors.New("empty item id"))
	}
	return c.do(ctx, op, http.MethodPatch, "items/"+url.PathEscape(id.String())+"/toggle", nil, nil)
}

func (c *Client) Note(ctx context.Context) (model.Note, error) {
	const op = "get note"
	var n model.Note
	if err := c.do(ctx, op, http.MethodGet, "note", nil, &n); err != nil {
		return model.Note{}, err
	}
	return n, nil
}

func (c *Client) SaveNote(ctx context.Context, text string) error {
	const op = "set note"
	return c.do(ctx, op, http.MethodPut, "note", model.Note{Text: text}, nil)
}

// endpoint joins an already-escaped relative path onto the base.
func (c *Client) endpoint(path string) string {
	return strings.TrimRight(c.base.String(), "/") + "/" + path
}

// do issues one request. A non-nil out is decoded from the response body;
// otherwise the body is drained and ignored.
func (c *Client) do(ctx context.Context, op, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return newError(op, ErrCodeEncode, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path), body)
	if err != nil {
		return newError(op, ErrCodeInvalidInput, err)
	}
	reqID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("X-Request-Id", reqID)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	log := c.log.WithFields(logrus.Fields{"op": op, "request_id": reqID})
	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		log.WithError(err).Debug("request failed")
		return newError(op, ErrCodeTransport, err)
	}
	defer resp.Body.Close()
	log = log.WithFields(logrus.Fields{"status": resp.StatusCode, "elapsed": time.Since(start)})

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBody))
		log.Debug("unexpected status")
		e := newError(op, ErrCodeHTTPStatus, nil)
		e.Status = resp.StatusCode
		return e
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBody))
		log.Debug("ok")
		return nil
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBody)).Decode(out); err != nil {
		log.WithError(err).Debug("decode failed")
		return newError(op, ErrCodeDecode, err)
	}
	log.Debug("ok")
	return nil
}

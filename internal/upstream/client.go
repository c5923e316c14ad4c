// Package upstream is the JSON-over-HTTP client shared by the metrics and
// node stats adapters.
package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// MaxBodyBytes caps how much of an upstream response is read.
const MaxBodyBytes = 32 << 20

var ErrBodyTooLarge = errors.New("response body too large")

// FetchError is a non-2xx answer from an upstream service. Message is the
// body's "message" field verbatim when present, else the HTTP status text.
type FetchError struct {
	Status  int
	Message string
}

func (e *FetchError) Error() string {
	return e.Message
}

type Client struct {
	name       string
	baseURL    *url.URL
	httpClient *http.Client
	log        logrus.FieldLogger
	maxBody    int64
}

func NewClient(name, baseURL string, timeout time.Duration, log logrus.FieldLogger) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("%s: parse base url: %w", name, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%s: base url %q must be absolute", name, baseURL)
	}
	return &Client{
		name:       name,
		baseURL:    u,
		httpClient: &http.Client{Timeout: timeout},
		log:        log.WithField("upstream", name),
		maxBody:    MaxBodyBytes,
	}, nil
}

// URL joins path onto the base URL and sets query.
func (c *Client) URL(path string, query url.Values) *url.URL {
	u := *c.baseURL
	if path != "" {
		u.Path = strings.TrimRight(u.Path, "/") + "/" + strings.TrimLeft(path, "/")
	}
	u.RawQuery = query.Encode()
	return &u
}

// GetJSON performs a GET and decodes a 2xx body into out.
func (c *Client) GetJSON(ctx context.Context, path string, query url.Values, header http.Header, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL(path, query).String(), nil)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", c.name, err)
	}
	req.Header.Set("Accept", "application/json")
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	data, err := c.do(req)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s: decode: %w", c.name, err)
	}
	return nil
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	start := time.Now()
	log := c.log.WithField("url", req.URL.Redacted())
	log.Debug("-> GET")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.WithError(err).WithField("ms", time.Since(start).Milliseconds()).Debug("<- GET failed")
		return nil, fmt.Errorf("%s GET %s: %w", c.name, req.URL.Path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err != nil {
		return nil, fmt.Errorf("%s: read body: %w", c.name, err)
	}
	if int64(len(data)) > c.maxBody {
		return nil, fmt.Errorf("%s: %w (over %d bytes)", c.name, ErrBodyTooLarge, c.maxBody)
	}
	log.WithFields(logrus.Fields{
		"status": resp.StatusCode,
		"ms":     time.Since(start).Milliseconds(),
		"bytes":  len(data),
	}).Debug("<- GET")

	if resp.StatusCode >= 400 {
		return nil, decodeError(resp.StatusCode, data)
	}
	return data, nil
}

func decodeError(status int, data []byte) *FetchError {
	var body struct {
		Message *string `json:"message"`
	}
	if err := json.Unmarshal(data, &body); err == nil && body.Message != nil && *body.Message != "" {
		return &FetchError{Status: status, Message: *body.Message}
	}

	msg := http.StatusText(status)
	if msg == "" {
		msg = strconv.Itoa(status)
	}
	return &FetchError{Status: status, Message: msg}
}

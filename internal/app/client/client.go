package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"

	"github.com/kisaanstar/console/internal/app/config"
)

// Client is a typed client of the remote KisaanStar API. All business rules
// live behind that API; the client only shapes requests, decodes responses
// and keeps the session cookie the login endpoints set.
type Client struct {
	client  *http.Client
	baseURL *url.URL
}

func New(config config.Config) (*Client, error) {
	if len(config.APIAddr) == 0 {
		return nil, ErrAPIAddressInvalid
	}

	baseURL, err := url.Parse(strings.TrimRight(config.APIAddr, "/"))
	if err != nil {
		return nil, fmt.Errorf("error while parsing api address: %w", err)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("error while creating cookie jar: %w", err)
	}

	client := &http.Client{
		Timeout: config.RequestTimeout,
		Jar:     jar,
	}

	return &Client{
		client:  client,
		baseURL: baseURL,
	}, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.send(ctx, http.MethodGet, path, nil, out, nil)
}

func (c *Client) post(ctx context.Context, path string, in, out any) error {
	return c.send(ctx, http.MethodPost, path, in, out, nil)
}

func (c *Client) patch(ctx context.Context, path string, in, out any) error {
	return c.send(ctx, http.MethodPatch, path, in, out, nil)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.send(ctx, http.MethodDelete, path, nil, nil, nil)
}

func (c *Client) send(ctx context.Context, method, path string, in, out any, headers map[string]string) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("error while marshalling request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.String()+path, body)
	if err != nil {
		return fmt.Errorf("error while creating request: %w", err)
	}

	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for name, value := range headers {
		req.Header.Set(name, value)
	}

	res, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("error while requesting %s %s: %w", method, path, err)
	}
	defer res.Body.Close()

	if err := checkStatus(res); err != nil {
		return err
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("error while decoding response of %s %s: %w", method, path, err)
	}

	return nil
}

func checkStatus(res *http.Response) error {
	status := res.StatusCode
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	if status == http.StatusNotFound {
		return ErrNotFound
	}
	if status == http.StatusUnauthorized {
		return ErrUnauthorized
	}

	return &StatusError{
		Code:    status,
		Message: decodeServerMessage(res.Body),
	}
}

func decodeServerMessage(body io.Reader) string {
	var message struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(body).Decode(&message); err != nil {
		return ""
	}

	return message.Message
}

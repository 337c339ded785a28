// Package userapi is a typed client for the users HTTP API.
package userapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"userservice/internal/httpclient"
	"userservice/internal/logging"
)

type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type UserInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type CreateResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// APIError is a non-2xx answer decoded from the {error, message} envelope.
type APIError struct {
	StatusCode int
	Category   string `json:"error"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d %s: %s", e.StatusCode, e.Category, e.Message)
}

type Client struct {
	http   *httpclient.Client
	logger logging.Logger
}

func New(baseURL string, timeout time.Duration, logger logging.Logger) (*Client, error) {
	httpCli, err := httpclient.New(baseURL, timeout, logger.With("component", "users_http"))
	if err != nil {
		return nil, err
	}

	return &Client{
		http:   httpCli,
		logger: logger,
	}, nil
}

func (c *Client) Create(ctx context.Context, in UserInput) (CreateResponse, error) {
	var res CreateResponse
	err := c.http.PostJSON(ctx, "/users", in, &res)
	return res, asAPIError(err)
}

func (c *Client) List(ctx context.Context) ([]User, error) {
	var res []User
	err := c.http.GetJSON(ctx, "/users", nil, &res)
	return res, asAPIError(err)
}

func (c *Client) Get(ctx context.Context, id int64) (User, error) {
	var res User
	err := c.http.GetJSON(ctx, userPath(id), nil, &res)
	return res, asAPIError(err)
}

func (c *Client) Update(ctx context.Context, id int64, in UserInput) (MessageResponse, error) {
	var res MessageResponse
	err := c.http.PutJSON(ctx, userPath(id), in, &res)
	return res, asAPIError(err)
}

func (c *Client) Delete(ctx context.Context, id int64) (MessageResponse, error) {
	var res MessageResponse
	err := c.http.DeleteJSON(ctx, userPath(id), &res)
	return res, asAPIError(err)
}

func userPath(id int64) string {
	return fmt.Sprintf("/users/%d", id)
}

// asAPIError decodes the error envelope from an HTTP error when present.
func asAPIError(err error) error {
	var httpErr *httpclient.HTTPError
	if !errors.As(err, &httpErr) {
		return err
	}
	apiErr := &APIError{StatusCode: httpErr.StatusCode}
	if jsonErr := json.Unmarshal(httpErr.Body, apiErr); jsonErr != nil {
		return err
	}
	return apiErr
}

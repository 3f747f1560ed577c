// Package supabase wraps the Supabase PostgREST and GoTrue APIs behind a
// small typed client. Repositories talk PostgREST filter syntax through it
// (e.g. "user_id": "eq.<uuid>"); auth flows use the GoTrue endpoints.
package supabase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client is a Supabase API client backed by a shared resty client.
type Client struct {
	http *resty.Client
}

// NewClient creates a client for the given project URL and service role key.
// The service key bypasses row level security; callers enforce per-user
// scoping in their queries.
func NewClient(url, serviceKey string) *Client {
	rc := resty.New().
		SetBaseURL(url).
		SetTimeout(15 * time.Second).
		SetHeader("apikey", serviceKey).
		SetAuthToken(serviceKey)

	return &Client{http: rc}
}

// apiError reports a non-2xx PostgREST or GoTrue response.
func apiError(resp *resty.Response) error {
	return fmt.Errorf("supabase: %s %s returned %d: %s",
		resp.Request.Method, resp.Request.URL, resp.StatusCode(), resp.String())
}

// Select queries rows from a table. params use PostgREST filter syntax,
// e.g. {"user_id": "eq.abc", "date": "gte.2025-01-01", "order": "date.asc"}.
// The response body is decoded into dest, which must be a pointer to a slice.
func (c *Client) Select(ctx context.Context, table string, params map[string]string, dest any) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetResult(dest).
		Get("/rest/v1/" + table)
	if err != nil {
		return fmt.Errorf("supabase select %s: %w", table, err)
	}
	if resp.IsError() {
		return apiError(resp)
	}
	return nil
}

// Insert creates a row and decodes the created representation into dest.
// Pass nil dest to discard the response.
func (c *Client) Insert(ctx context.Context, table string, data any, dest any) error {
	req := c.http.R().
		SetContext(ctx).
		SetHeader("Prefer", "return=representation").
		SetBody(data)
	if dest != nil {
		req.SetResult(dest)
	}

	resp, err := req.Post("/rest/v1/" + table)
	if err != nil {
		return fmt.Errorf("supabase insert %s: %w", table, err)
	}
	if resp.IsError() {
		return apiError(resp)
	}
	return nil
}

// Upsert inserts a row, merging into the existing row when the columns named
// in onConflict collide (e.g. "user_id,date").
func (c *Client) Upsert(ctx context.Context, table string, data any, onConflict string, dest any) error {
	req := c.http.R().
		SetContext(ctx).
		SetHeader("Prefer", "return=representation,resolution=merge-duplicates").
		SetQueryParam("on_conflict", onConflict).
		SetBody(data)
	if dest != nil {
		req.SetResult(dest)
	}

	resp, err := req.Post("/rest/v1/" + table)
	if err != nil {
		return fmt.Errorf("supabase upsert %s: %w", table, err)
	}
	if resp.IsError() {
		return apiError(resp)
	}
	return nil
}

// Update patches rows matching the PostgREST filters in params and decodes
// the updated representation into dest.
func (c *Client) Update(ctx context.Context, table string, params map[string]string, data any, dest any) error {
	req := c.http.R().
		SetContext(ctx).
		SetHeader("Prefer", "return=representation").
		SetQueryParams(params).
		SetBody(data)
	if dest != nil {
		req.SetResult(dest)
	}

	resp, err := req.Patch("/rest/v1/" + table)
	if err != nil {
		return fmt.Errorf("supabase update %s: %w", table, err)
	}
	if resp.IsError() {
		return apiError(resp)
	}
	return nil
}

// Delete removes rows matching the PostgREST filters in params.
func (c *Client) Delete(ctx context.Context, table string, params map[string]string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(params).
		Delete("/rest/v1/" + table)
	if err != nil {
		return fmt.Errorf("supabase delete %s: %w", table, err)
	}
	if resp.IsError() {
		return apiError(resp)
	}
	return nil
}

// AuthUser is the GoTrue representation of an authenticated user.
type AuthUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Session is a GoTrue token grant.
type Session struct {
	AccessToken  string   `json:"access_token"`
	TokenType    string   `json:"token_type"`
	ExpiresIn    int      `json:"expires_in"`
	RefreshToken string   `json:"refresh_token"`
	User         AuthUser `json:"user"`
}

// VerifyToken resolves a user JWT to its user. Invalid or expired tokens
// come back as an error.
func (c *Client) VerifyToken(ctx context.Context, token string) (*AuthUser, error) {
	var user AuthUser
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetResult(&user).
		Get("/auth/v1/user")
	if err != nil {
		return nil, fmt.Errorf("supabase verify token: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("supabase: token verification failed (status %d)", resp.StatusCode())
	}
	return &user, nil
}

// SignUp registers a new user with email and password.
func (c *Client) SignUp(ctx context.Context, email, password string) (*Session, error) {
	var session Session
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"email": email, "password": password}).
		SetResult(&session).
		Post("/auth/v1/signup")
	if err != nil {
		return nil, fmt.Errorf("supabase signup: %w", err)
	}
	if resp.IsError() {
		return nil, authError(resp)
	}
	return &session, nil
}

// SignIn exchanges email and password credentials for a session.
func (c *Client) SignIn(ctx context.Context, email, password string) (*Session, error) {
	var session Session
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("grant_type", "password").
		SetBody(map[string]string{"email": email, "password": password}).
		SetResult(&session).
		Post("/auth/v1/token")
	if err != nil {
		return nil, fmt.Errorf("supabase signin: %w", err)
	}
	if resp.IsError() {
		return nil, authError(resp)
	}
	return &session, nil
}

// authError surfaces the GoTrue error message without leaking the full body.
func authError(resp *resty.Response) error {
	var body struct {
		Message  string `json:"msg"`
		ErrorMsg string `json:"error_description"`
	}
	if err := json.Unmarshal(resp.Body(), &body); err == nil {
		if body.Message != "" {
			return fmt.Errorf("supabase auth: %s", body.Message)
		}
		if body.ErrorMsg != "" {
			return fmt.Errorf("supabase auth: %s", body.ErrorMsg)
		}
	}
	return fmt.Errorf("supabase auth: request failed (status %d)", resp.StatusCode())
}

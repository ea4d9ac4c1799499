/*
Copyright 2024-2025 the Unikorn Authors.
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rs/zerolog/log"
)

// Post is a JSONPlaceholder post.
type Post struct {
	UserID int    `json:"userId"`
	ID     int    `json:"id,omitempty"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

// Comment is a comment on a post.
type Comment struct {
	PostID int    `json:"postId"`
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Body   string `json:"body"`
}

// ListPostsParams filters a post listing, zero values are omitted.
type ListPostsParams struct {
	UserID int
	Limit  int
}

func (p ListPostsParams) values() url.Values {
	values := url.Values{}

	if p.UserID > 0 {
		values.Set("userId", strconv.Itoa(p.UserID))
	}

	if p.Limit > 0 {
		values.Set("_limit", strconv.Itoa(p.Limit))
	}

	return values
}

// Endpoints returns the path builders used by the typed helpers.
func (c *Client) Endpoints() *Endpoints {
	return c.endpoints
}

// expectJSON issues a request, checks the status and decodes the body into T.
func expectJSON[T any](ctx context.Context, c *Client, method, path string, body any, expected int, opts ...RequestOption) (T, error) {
	var result T

	resp, err := c.Do(ctx, method, path, body, opts...)
	if err != nil {
		return result, err
	}

	if err := resp.expect(method, path, expected); err != nil {
		log.Warn().Str("method", method).Str("path", path).Int("expected", expected).Int("status", resp.StatusCode).Str("traceID", resp.TraceID).Msg("unexpected status")

		return result, err
	}

	if err := resp.JSON(&result); err != nil {
		return result, err
	}

	return result, nil
}

// ListPosts lists posts.
func (c *Client) ListPosts(ctx context.Context, params ListPostsParams) ([]Post, error) {
	posts, err := expectJSON[[]Post](ctx, c, http.MethodGet, c.endpoints.Posts(), nil, http.StatusOK, WithQuery(params.values()))
	if err != nil {
		return nil, fmt.Errorf("listing posts: %w", err)
	}

	return posts, nil
}

// ListUserPosts lists posts through the nested user route.
func (c *Client) ListUserPosts(ctx context.Context, userID int) ([]Post, error) {
	posts, err := expectJSON[[]Post](ctx, c, http.MethodGet, c.endpoints.UserPosts(userID), nil, http.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("listing posts for user %d: %w", userID, err)
	}

	return posts, nil
}

// GetPost retrieves a single post.
func (c *Client) GetPost(ctx context.Context, id int) (*Post, error) {
	post, err := expectJSON[Post](ctx, c, http.MethodGet, c.endpoints.Post(id), nil, http.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("getting post %d: %w", id, err)
	}

	return &post, nil
}

// CreatePost creates a post, the service answers 201 with the new ID.
func (c *Client) CreatePost(ctx context.Context, post Post) (*Post, error) {
	created, err := expectJSON[Post](ctx, c, http.MethodPost, c.endpoints.Posts(), post, http.StatusCreated)
	if err != nil {
		return nil, fmt.Errorf("creating post: %w", err)
	}

	return &created, nil
}

// UpdatePost replaces a post.
func (c *Client) UpdatePost(ctx context.Context, id int, post Post) (*Post, error) {
	updated, err := expectJSON[Post](ctx, c, http.MethodPut, c.endpoints.Post(id), post, http.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("updating post %d: %w", id, err)
	}

	return &updated, nil
}

// PatchPost updates only the given fields of a post.
func (c *Client) PatchPost(ctx context.Context, id int, fields map[string]any) (*Post, error) {
	patched, err := expectJSON[Post](ctx, c, http.MethodPatch, c.endpoints.Post(id), fields, http.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("patching post %d: %w", id, err)
	}

	return &patched, nil
}

// DeletePost deletes a post.
func (c *Client) DeletePost(ctx context.Context, id int) error {
	path := c.endpoints.Post(id)

	resp, err := c.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting post %d: %w", id, err)
	}

	if err := resp.expect(http.MethodDelete, path, http.StatusOK); err != nil {
		return fmt.Errorf("deleting post %d: %w", id, err)
	}

	return nil
}

// ListPostComments lists the comments on a post.
func (c *Client) ListPostComments(ctx context.Context, id int) ([]Comment, error) {
	comments, err := expectJSON[[]Comment](ctx, c, http.MethodGet, c.endpoints.PostComments(id), nil, http.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("listing comments for post %d: %w", id, err)
	}

	return comments, nil
}

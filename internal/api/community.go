package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// Post is a community feed post with its comments.
type Post struct {
	ID         int64     `json:"id"`
	AuthorID   int64     `json:"usuarioId,omitempty"`
	AuthorName string    `json:"usuarioNome,omitempty"`
	Text       string    `json:"texto"`
	CreatedAt  string    `json:"dataCriacao,omitempty"`
	Comments   []Comment `json:"comentarios,omitempty"`
}

// Comment is one comment on a post.
type Comment struct {
	ID         int64  `json:"id"`
	AuthorName string `json:"usuarioNome,omitempty"`
	Text       string `json:"texto"`
}

// ListPosts returns the community feed.
func (c *Client) ListPosts(ctx context.Context, userID int64) ([]Post, error) {
	query := url.Values{"usuarioId": {strconv.FormatInt(userID, 10)}}
	var posts []Post
	if err := c.get(ctx, "/comunidade", query, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// CreatePost publishes a post to the feed.
func (c *Client) CreatePost(ctx context.Context, userID int64, text string) (Post, error) {
	body := struct {
		UserID int64  `json:"usuarioId"`
		Text   string `json:"texto"`
	}{UserID: userID, Text: text}

	var resp envelope[Post]
	if err := c.post(ctx, "/comunidade", nil, body, &resp); err != nil {
		return Post{}, err
	}
	return resp.Data, nil
}

// LikePost registers a like on a post.
func (c *Client) LikePost(ctx context.Context, postID, userID int64) error {
	query := url.Values{"usuarioId": {strconv.FormatInt(userID, 10)}}
	return c.post(ctx, fmt.Sprintf("/comunidade/%d/curtir", postID), query, nil, nil)
}

// AddComment appends a comment to a post.
func (c *Client) AddComment(ctx context.Context, postID, userID int64, text string) (Comment, error) {
	body := struct {
		UserID int64  `json:"usuarioId"`
		Text   string `json:"texto"`
	}{UserID: userID, Text: text}

	var resp envelope[Comment]
	if err := c.post(ctx, fmt.Sprintf("/comunidade/%d/comentarios", postID), nil, body, &resp); err != nil {
		return Comment{}, err
	}
	return resp.Data, nil
}

// ListComments returns a post's comments.
func (c *Client) ListComments(ctx context.Context, postID int64) ([]Comment, error) {
	var comments []Comment
	if err := c.get(ctx, fmt.Sprintf("/comunidade/%d/comentarios", postID), nil, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

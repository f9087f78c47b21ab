package client

import (
	"context"
	"fmt"

	"github.com/ifyun/hop/internal/http"
	"github.com/ifyun/hop/pkg/hop"
)

// UsersClient implements hop.UsersClient.
type UsersClient struct {
	httpClient *http.Client
}

// NewUsersClient creates a new users client.
func NewUsersClient(httpClient *http.Client) *UsersClient {
	return &UsersClient{httpClient: httpClient}
}

// List implements hop.UsersClient.List.
func (c *UsersClient) List(ctx context.Context) ([]hop.UserInfo, error) {
	resp, err := c.httpClient.Get(ctx, apiPath("users"), nil)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}

	var users []hop.UserInfo

	err = unmarshal(resp.Body, &users, "users")
	if err != nil {
		return nil, err
	}

	return users, nil
}

// Get implements hop.UsersClient.Get.
func (c *UsersClient) Get(ctx context.Context, name string) (*hop.UserInfo, error) {
	resp, err := c.httpClient.Get(ctx, apiPath("users", name), nil)
	if hop.IsNotFound(err) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("getting user: %w", err)
	}

	var user hop.UserInfo

	err = unmarshal(resp.Body, &user, "user")
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// Put implements hop.UsersClient.Put.
func (c *UsersClient) Put(ctx context.Context, name string, settings hop.UserSettings) error {
	if settings.Password != "" && settings.PasswordHash != "" {
		return &hop.ValidationError{Field: "password", Message: "provide either password or password_hash, not both"}
	}

	_, err := c.httpClient.Put(ctx, apiPath("users", name), settings)
	if err != nil {
		return fmt.Errorf("putting user: %w", err)
	}

	return nil
}

// Delete implements hop.UsersClient.Delete.
func (c *UsersClient) Delete(ctx context.Context, name string) error {
	_, err := c.httpClient.Delete(ctx, apiPath("users", name))
	if hop.IsNotFound(err) {
		return nil
	}

	if err != nil {
		return fmt.Errorf("deleting user: %w", err)
	}

	return nil
}

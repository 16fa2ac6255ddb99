package repositories

import (
	"context"
	"encoding/json"
	"fmt"
)

const loginPath = "/auth/login"

// Credentials is the login payload accepted by the backend
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthRepository exchanges credentials for an access token
type AuthRepository interface {
	Login(ctx context.Context, email, password string) (string, error)
}

type restAuthRepository struct {
	client *Client
}

func NewAuthRepository(client *Client) AuthRepository {
	return &restAuthRepository{client: client}
}

func (r *restAuthRepository) Login(ctx context.Context, email, password string) (string, error) {
	body, err := r.client.Post(ctx, loginPath, Credentials{Email: email, Password: password})
	if err != nil {
		return "", err
	}

	var resp struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	if resp.AccessToken == "" {
		return "", fmt.Errorf("%w: access_token missing", ErrInvalidResponse)
	}
	return resp.AccessToken, nil
}

package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/jeevavj/megam-api/client/internal/types"
)

// Login verifies the configured credentials against the server.
func Login(ctx context.Context, c Conn) (*types.Message, error) {
	resp, err := Do(ctx, c, http.MethodPost, "/auth", nil)
	if err != nil {
		return nil, err
	}
	return bodyAs[types.Message]("login", resp)
}

// GetAccount retrieves the account registered under email.
func GetAccount(ctx context.Context, c Conn, email string) (*types.Account, error) {
	if err := types.ValidateIDPresent(email, "email"); err != nil {
		return nil, err
	}
	resp, err := Do(ctx, c, http.MethodGet, "/accounts/"+url.PathEscape(email), nil)
	if err != nil {
		return nil, err
	}
	return bodyAs[types.Account]("get account", resp)
}

// CreateAccount onboards a new account.
func CreateAccount(ctx context.Context, c Conn, req types.NewAccountRequest) (*types.Message, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	resp, err := Do(ctx, c, http.MethodPost, "/accounts/content", req)
	if err != nil {
		return nil, err
	}
	return bodyAs[types.Message]("create account", resp)
}

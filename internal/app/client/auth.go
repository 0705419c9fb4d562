package client

import (
	"context"
	"fmt"

	"github.com/kisaanstar/console/internal/app/entity"
	"github.com/kisaanstar/console/internal/app/model"
)

// Role selects which login surface of the API a flow talks to. Both surfaces
// share the same endpoint shape and differ only in the path prefix.
type Role string

const (
	RoleAdvisory         Role = `advisory`
	RoleOperationalAdmin Role = `operational-admin`
)

// RoleAuth is the authentication surface of the API for a single role:
// two-step login (send-password, then login), a dashboard probe for the
// session and logout. The session cookie lives in the shared cookie jar.
type RoleAuth struct {
	client *Client
	role   Role
}

func (c *Client) Auth(role Role) *RoleAuth {
	return &RoleAuth{
		client: c,
		role:   role,
	}
}

// SendPassword asks the server to mail a one-time password to the address and
// returns the server's confirmation message.
func (a *RoleAuth) SendPassword(ctx context.Context, email string) (string, error) {
	request := model.SendPasswordRequest{Email: email}

	var response model.MessageResponse
	err := a.client.post(ctx, a.path("send-password"), request, &response)
	if err != nil {
		return "", err
	}

	return response.Message, nil
}

func (a *RoleAuth) Login(ctx context.Context, email, password string) error {
	request := model.LoginRequest{
		Email:    email,
		Password: password,
	}

	return a.client.post(ctx, a.path("login"), request, nil)
}

// Dashboard probes the session and returns the authenticated identity.
func (a *RoleAuth) Dashboard(ctx context.Context) (entity.Profile, error) {
	var response model.DashboardResponse
	err := a.client.get(ctx, a.path("dashboard"), &response)
	if err != nil {
		return entity.Profile{}, err
	}

	return entity.Profile{
		ID:    response.ID,
		Name:  response.Name,
		Email: response.Email,
	}, nil
}

func (a *RoleAuth) Logout(ctx context.Context) error {
	return a.client.post(ctx, a.path("logout"), nil, nil)
}

func (a *RoleAuth) path(endpoint string) string {
	return fmt.Sprintf("/api/%s/%s", a.role, endpoint)
}

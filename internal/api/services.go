package api

import (
	"context"
	"fmt"
	"net/http"
)

// ListServices returns every service, active and inactive.
func (c *Client) ListServices(ctx context.Context) ([]Service, error) {
	var services []Service
	if err := c.get(ctx, "/servicios", &services); err != nil {
		return nil, err
	}
	return services, nil
}

// CreateService registers a new service and returns it with its assigned ID.
func (c *Client) CreateService(ctx context.Context, req CreateServiceRequest) (Service, error) {
	var service Service
	if err := c.send(ctx, http.MethodPost, "/servicios", req, &service); err != nil {
		return Service{}, err
	}
	return service, nil
}

// UpdateService applies a partial update to a service. Nil fields in the
// request are left unchanged.
func (c *Client) UpdateService(ctx context.Context, req UpdateServiceRequest) (Service, error) {
	var service Service
	path := fmt.Sprintf("/servicios/%d", req.ID)
	if err := c.send(ctx, http.MethodPut, path, req, &service); err != nil {
		return Service{}, err
	}
	return service, nil
}

// DeactivateService soft-deletes a service so it can no longer be booked.
func (c *Client) DeactivateService(ctx context.Context, id int64) error {
	return c.send(ctx, http.MethodDelete, fmt.Sprintf("/servicios/%d", id), nil, nil)
}

// ReactivateService brings a deactivated service back.
func (c *Client) ReactivateService(ctx context.Context, id int64) error {
	return c.send(ctx, http.MethodPatch, fmt.Sprintf("/servicios/%d/activar", id), nil, nil)
}

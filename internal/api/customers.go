package api

import (
	"context"
	"fmt"
	"net/http"
)

// ListCustomers returns every registered customer.
func (c *Client) ListCustomers(ctx context.Context) ([]Customer, error) {
	var customers []Customer
	if err := c.get(ctx, "/clientes", &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

// CreateCustomer registers a new customer and returns it with its
// assigned ID.
func (c *Client) CreateCustomer(ctx context.Context, req CreateCustomerRequest) (Customer, error) {
	var customer Customer
	if err := c.send(ctx, http.MethodPost, "/clientes", req, &customer); err != nil {
		return Customer{}, err
	}
	return customer, nil
}

// DeleteCustomer removes a customer.
func (c *Client) DeleteCustomer(ctx context.Context, id int64) error {
	return c.send(ctx, http.MethodDelete, fmt.Sprintf("/clientes/%d", id), nil, nil)
}

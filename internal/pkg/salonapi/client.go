// Package salonapi is a typed client for the salon REST backend. Every method
// maps to one backend endpoint and goes through the request gateway.
package salonapi

import (
	"context"
	"fmt"

	"github.com/salonbook/salon-web/internal/pkg/gateway"
)

// Client calls the salon backend.
type Client struct {
	gw *gateway.Gateway
}

// New creates a new backend client.
func New(gw *gateway.Gateway) *Client {
	return &Client{gw: gw}
}

// Message is the backend's plain acknowledgement body.
type Message struct {
	Message string `json:"message"`
}

// Ping checks that the backend answers.
func (c *Client) Ping(ctx context.Context) error {
	return c.gw.Execute(ctx, gateway.Read("customer.health", "/customer/health"), nil)
}

func (c *Client) read(ctx context.Context, name string, out interface{}, format string, args ...interface{}) error {
	return c.gw.Execute(ctx, gateway.Read(name, fmt.Sprintf(format, args...)), out)
}

func (c *Client) write(ctx context.Context, name, method string, body, out interface{}, format string, args ...interface{}) error {
	return c.gw.Execute(ctx, gateway.Write(name, method, fmt.Sprintf(format, args...), body), out)
}

// Package v1 holds a config type whose short name collides with mock/v1.Config.
package v1

type Config struct{ Name string }

type Client struct{ Config *Config }

func NewClient(cfg *Config) *Client { return &Client{Config: cfg} }

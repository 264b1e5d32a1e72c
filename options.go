package docpg

import (
	"github.com/docpg/docpg/hooks"
)

// Option is a functional option for configuring a Client.
type Option func(*Client) error

// WithLogger sets the structured logger. A nil logger disables logging.
func WithLogger(logger Logger) Option {
	return func(c *Client) error {
		c.logger = logger
		return nil
	}
}

// WithSummarizer enables SummarizeDocument with the given implementation.
func WithSummarizer(s Summarizer) Option {
	return func(c *Client) error {
		c.summarizer = s
		return nil
	}
}

// WithHooks attaches a lifecycle hook registry. Hooks run after the store
// operation succeeds; a hook error fails the operation.
func WithHooks(registry *hooks.Registry) Option {
	return func(c *Client) error {
		c.hooks = registry
		return nil
	}
}

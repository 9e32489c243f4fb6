// Package form holds the client-side state for the letter form: the four
// text fields, the in-flight gate, and the last result or error.
package form

import (
	"context"
	"errors"
	"strings"
	"sync"

	"civicletter/internal/types"
)

type State int

const (
	StateIdle State = iota
	StatePending
	StateSuccess
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePending:
		return "pending"
	case StateSuccess:
		return "success"
	case StateError:
		return "error"
	}
	return "unknown"
}

// ErrMissingFields blocks submission locally; no network call is made.
var ErrMissingFields = errors.New("please fill out all required fields to generate your letter")

// Generator is the outbound generation call the controller gates.
type Generator interface {
	Generate(ctx context.Context, form types.SimpleFormData) (types.LetterResponse, error)
}

type Controller struct {
	gen Generator

	mu     sync.Mutex
	state  State
	input  types.SimpleFormData
	result *types.LetterResponse
	err    *types.APIError
}

func NewController(gen Generator) *Controller {
	return &Controller{gen: gen}
}

func (c *Controller) SetInput(input types.SimpleFormData) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.input = input
}

func (c *Controller) Input() types.SimpleFormData {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.input
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Result returns the last generated letter while in the success state.
func (c *Controller) Result() (types.LetterResponse, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.result == nil {
		return types.LetterResponse{}, false
	}
	return *c.result, true
}

// Err returns the last request error while in the error state.
func (c *Controller) Err() (types.APIError, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err == nil {
		return types.APIError{}, false
	}
	return *c.err, true
}

// Submit runs one generation round trip. Submitting while a call is already
// in flight is a no-op, so at most one request is pending per controller.
// A failed submission leaves the form editable for another attempt.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.state == StatePending {
		c.mu.Unlock()
		return nil
	}
	input := c.input
	if missingRequired(input) {
		c.mu.Unlock()
		return ErrMissingFields
	}
	c.state = StatePending
	c.mu.Unlock()

	result, err := c.gen.Generate(ctx, input)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.state = StateError
		c.result = nil
		c.err = asAPIError(err)
		return err
	}
	c.state = StateSuccess
	c.result = &result
	c.err = nil
	return nil
}

func missingRequired(f types.SimpleFormData) bool {
	return strings.TrimSpace(f.UserInfo) == "" ||
		strings.TrimSpace(f.RepresentativeInfo) == "" ||
		strings.TrimSpace(f.IssueDetails) == ""
}

func asAPIError(err error) *types.APIError {
	var apiErr *types.APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return &types.APIError{Message: err.Error()}
}

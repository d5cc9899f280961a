// Package abort provides the single-shot cancellation source created
// once per bridge invocation.
package abort

import "context"

// Controller owns one invocation's cancellation signal. It trips when
// Abort is called or when the parent context is canceled, whichever
// comes first, and never resets. Controllers are not shared between
// invocations.
type Controller struct {
	ctx    context.Context
	cancel context.CancelFunc
}

// NewController derives a controller from parent. Passing the platform
// request's context wires client disconnects into the signal.
func NewController(parent context.Context) *Controller {
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	return &Controller{ctx: ctx, cancel: cancel}
}

// Abort trips the signal. Calling it more than once is a no-op.
func (c *Controller) Abort() {
	c.cancel()
}

// Aborted reports whether the signal has tripped.
func (c *Controller) Aborted() bool {
	return c.ctx.Err() != nil
}

// Signal returns the context handed to the wrapped handler so it can
// observe the abort and stop work early.
func (c *Controller) Signal() context.Context {
	return c.ctx
}

// Release frees the controller's resources. It aborts the signal, so it
// must only be called once the invocation is finished with it.
func (c *Controller) Release() {
	c.cancel()
}

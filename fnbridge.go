// Package fnbridge translates between a function runtime's native
// request/response pair and the fetch-style Request/Response contract of
// a wrapped web application. The bridge builds a standard request from
// the platform request, invokes the application's handler, and writes
// the resulting standard response back onto the platform response,
// wiring a per-invocation cancellation signal through both sides.
package fnbridge

import (
	"github.com/go-fnbridge/fnbridge/abort"
	"github.com/go-fnbridge/fnbridge/config"
	"github.com/go-fnbridge/fnbridge/header"
	"github.com/go-fnbridge/fnbridge/logger"
	"github.com/go-fnbridge/fnbridge/platform"
)

// Re-export common types so callers can import the root package only.
type Header = header.Header
type Form = platform.Form
type Controller = abort.Controller
type Logger = logger.Logger
type Fields = logger.Fields
type Config = config.Config

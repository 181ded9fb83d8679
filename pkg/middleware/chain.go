// Copyright 2025 The Caseflow Authors
// SPDX-License-Identifier: Apache-2.0

// Package middleware provides composition helpers for net/http middleware.
package middleware

import "net/http"

// Middleware is a function that wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain applies multiple middleware functions in order.
// The first middleware in the slice is the outermost (executed first).
func Chain(middlewares ...Middleware) Middleware {
	return func(handler http.Handler) http.Handler {
		// Apply in reverse so the first middleware in the slice is outermost
		for i := len(middlewares) - 1; i >= 0; i-- {
			handler = middlewares[i](handler)
		}
		return handler
	}
}

// RouteBuilder registers routes on a ServeMux with a shared middleware chain.
type RouteBuilder struct {
	mux         *http.ServeMux
	middlewares []Middleware
}

// NewRouteBuilder creates a new RouteBuilder for the given ServeMux.
func NewRouteBuilder(mux *http.ServeMux) *RouteBuilder {
	return &RouteBuilder{
		mux:         mux,
		middlewares: make([]Middleware, 0),
	}
}

// With returns a new RouteBuilder with the given middlewares appended.
func (rb *RouteBuilder) With(middlewares ...Middleware) *RouteBuilder {
	return &RouteBuilder{
		mux:         rb.mux,
		middlewares: append(rb.middlewares, middlewares...),
	}
}

// Handle registers a handler wrapped in the builder's middleware chain.
func (rb *RouteBuilder) Handle(pattern string, handler http.Handler) {
	if len(rb.middlewares) > 0 {
		handler = Chain(rb.middlewares...)(handler)
	}
	rb.mux.Handle(pattern, handler)
}

// HandleFunc registers a handler function wrapped in the builder's middleware chain.
func (rb *RouteBuilder) HandleFunc(pattern string, handlerFunc http.HandlerFunc) {
	rb.Handle(pattern, handlerFunc)
}

// Group returns a new RouteBuilder that copies the current chain and appends
// the given middlewares. Useful for route groups with extra requirements.
func (rb *RouteBuilder) Group(middlewares ...Middleware) *RouteBuilder {
	return &RouteBuilder{
		mux:         rb.mux,
		middlewares: append(append([]Middleware{}, rb.middlewares...), middlewares...),
	}
}

// Package router binds handlers to routes through an ordered table. A later
// registration for the same method and pattern replaces the earlier one and
// keeps its position.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type Route struct {
	Method      string
	Pattern     string
	Handler     http.HandlerFunc
	Middlewares []func(http.Handler) http.Handler
}

type Table struct {
	routes []Route
	index  map[string]int
}

func NewTable() *Table {
	return &Table{index: make(map[string]int)}
}

func (t *Table) Handle(method, pattern string, h http.HandlerFunc, mws ...func(http.Handler) http.Handler) {
	route := Route{Method: method, Pattern: pattern, Handler: h, Middlewares: mws}
	key := method + " " + pattern

	if i, ok := t.index[key]; ok {
		t.routes[i] = route
		return
	}
	t.index[key] = len(t.routes)
	t.routes = append(t.routes, route)
}

func (t *Table) Get(pattern string, h http.HandlerFunc, mws ...func(http.Handler) http.Handler) {
	t.Handle(http.MethodGet, pattern, h, mws...)
}

func (t *Table) Post(pattern string, h http.HandlerFunc, mws ...func(http.Handler) http.Handler) {
	t.Handle(http.MethodPost, pattern, h, mws...)
}

// Routes returns the effective routes in registration order.
func (t *Table) Routes() []Route {
	out := make([]Route, len(t.routes))
	copy(out, t.routes)
	return out
}

func (t *Table) Mount(r chi.Router) {
	for _, route := range t.routes {
		r.With(route.Middlewares...).Method(route.Method, route.Pattern, route.Handler)
	}
}

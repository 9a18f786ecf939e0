package services

import (
	"context"
	"net/http"
	"strings"
)

type StatusCode int

const (
	StatusOK                  StatusCode = http.StatusOK
	StatusBadRequest          StatusCode = http.StatusBadRequest
	StatusInternalServerError StatusCode = http.StatusInternalServerError
)

type Header struct {
	Key   string
	Value string
}

// Headers keeps insertion order. Keys compare case-insensitively.
type Headers []Header

func (h *Headers) Set(key, value string) {
	for i := range *h {
		if strings.EqualFold((*h)[i].Key, key) {
			(*h)[i].Value = value
			return
		}
	}
	*h = append(*h, Header{Key: key, Value: value})
}

func (h Headers) Get(key string) string {
	for _, e := range h {
		if strings.EqualFold(e.Key, key) {
			return e.Value
		}
	}
	return ""
}

func (h Headers) Map() map[string]string {
	m := make(map[string]string, len(h))
	for _, e := range h {
		m[e.Key] = e.Value
	}
	return m
}

type Request struct {
	Query map[string]string
}

func (r Request) Param(name string) string {
	if r.Query == nil {
		return ""
	}
	return r.Query[name]
}

type Response struct {
	StatusCode StatusCode
	Headers    Headers
	Body       string
}

// Handler is one invocation entry point. It never returns an error: failures
// are rendered into the Response.
type Handler interface {
	Handle(ctx context.Context, req Request) Response
}

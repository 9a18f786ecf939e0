package services

import (
	"context"
	"sync"

	"storefront-voting/helper"
	"storefront-voting/model"
)

var quietLogger = helper.NewLogger("test", "off")

type fakeFetcher struct {
	mu       sync.Mutex
	body     string
	err      error
	panicMsg string
	urls     []string
}

func (f *fakeFetcher) Fetch(ctx context.Context, url string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.urls = append(f.urls, url)
	if f.panicMsg != "" {
		panic(f.panicMsg)
	}
	return f.body, f.err
}

func (f *fakeFetcher) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.urls)
}

type fakeEncoder struct {
	png      []byte
	err      error
	contents []string
}

func (e *fakeEncoder) EncodePNG(content string) ([]byte, error) {
	e.contents = append(e.contents, content)
	return e.png, e.err
}

// spyStore fails every call with err and counts how often it was reached.
type spyStore struct {
	mu    sync.Mutex
	err   error
	calls int
}

func (s *spyStore) Increment(ctx context.Context, table string, postalCode model.PostalCode) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return 0, s.err
}

func (s *spyStore) Scan(ctx context.Context, table string) ([]model.PostalCodeRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return nil, s.err
}

func (s *spyStore) Close() error {
	return nil
}

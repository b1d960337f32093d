package queue

import (
	"bytes"
	"io"
	"net/http"
)

// FakeTransport is a test double shared by this package's tests and the
// root package tests. It answers every request with a fixed body and
// status code.
type FakeTransport struct {
	Body     string
	Code     int
	Requests int
}

var _ http.RoundTripper = &FakeTransport{}

func NewFakeTransport(body string, code int) *FakeTransport {
	if body == "" {
		body = `{"success":true}`
	}
	if code == 0 {
		code = http.StatusOK
	}
	return &FakeTransport{Body: body, Code: code}
}

func (f *FakeTransport) RoundTrip(_ *http.Request) (*http.Response, error) {
	f.Requests++
	return &http.Response{
		StatusCode: f.Code,
		Body:       io.NopCloser(bytes.NewBufferString(f.Body)),
	}, nil
}

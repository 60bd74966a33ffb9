package utils

/*
go test -run 'TestDecodeStrict' -v ./internal/utils -count=1
*/

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type payload struct {
	A int `json:"a"`
}

func TestDecodeStrict(t *testing.T) {
	cases := []struct {
		body    string
		wantErr bool
	}{
		{`{"a":1}`, false},
		{`{"a":1,"b":2}`, true}, // campo desconhecido
		{`{"a":1}{"a":2}`, true},
		{`{`, true},
		{`[1]`, true},
		{`{"a":1}}`, true}, // fechamento solto
		{`{"a":1}]`, true},
		{`{"a":1} x`, true},
		{"{\"a\":1}\n  ", false},
	}
	for _, tc := range cases {
		var p payload
		err := DecodeStrict(strings.NewReader(tc.body), &p)
		if (err != nil) != tc.wantErr {
			t.Fatalf("body=%s wantErr=%v err=%v", tc.body, tc.wantErr, err)
		}
	}
}

func TestDecodeStrict_EmptyBody(t *testing.T) {
	var p payload
	if err := DecodeStrict(strings.NewReader(""), &p); !errors.Is(err, ErrEmptyBody) {
		t.Fatalf("want ErrEmptyBody, got %v", err)
	}
}

func TestWriteError(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteError(rr, 418, "teapot")
	if rr.Code != 418 || !strings.Contains(rr.Body.String(), `"error":"teapot"`) {
		t.Fatalf("code=%d body=%s", rr.Code, rr.Body.String())
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("content-type=%q", ct)
	}
}

func TestDecodeErrorMessage_TooLarge(t *testing.T) {
	rr := httptest.NewRecorder()
	body := http.MaxBytesReader(rr, io.NopCloser(strings.NewReader(`{"a":123456789}`)), 4)
	var p payload
	err := DecodeStrict(body, &p)
	if err == nil {
		t.Fatal("expected error")
	}
	if got := DecodeErrorMessage(err); got != "request body too large" {
		t.Fatalf("msg=%q", got)
	}
}

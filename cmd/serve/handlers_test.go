package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/midbel/bikecharts"
	"github.com/midbel/bikecharts/feed"
)

func TestServeScatterPointer(t *testing.T) {
	st := newStore(feed.Sources{}, bikecharts.DefaultScatter())
	tests := []struct {
		Query string
		Code  int
	}{
		{Query: "", Code: http.StatusOK},
		{Query: "?x=120.5&y=80", Code: http.StatusOK},
		{Query: "?mode=gender&x=120", Code: http.StatusOK},
		{Query: "?x=abc", Code: http.StatusBadRequest},
		{Query: "?x=10&y=", Code: http.StatusOK},
		{Query: "?y=NaN", Code: http.StatusBadRequest},
		{Query: "?x=Inf", Code: http.StatusBadRequest},
		{Query: "?mode=nope", Code: http.StatusBadRequest},
	}
	for _, tt := range tests {
		var (
			req = httptest.NewRequest(http.MethodGet, "/scatter.svg"+tt.Query, nil)
			rec = httptest.NewRecorder()
		)
		st.serveScatter(rec, req)
		if rec.Code != tt.Code {
			t.Errorf("%q: want status %d, got %d", tt.Query, tt.Code, rec.Code)
		}
	}
}

func TestParseCoord(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/scatter.svg?x=42", nil)
	q := req.URL.Query()
	if v, err := parseCoord(q, "x"); err != nil || v != 42 {
		t.Errorf("x: want 42, got %f (%v)", v, err)
	}
	if v, err := parseCoord(q, "y"); err != nil || v != -1 {
		t.Errorf("missing y: want -1, got %f (%v)", v, err)
	}
}

package httpgw

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bindery-dev/toolgate/internal/transport"
)

func newGateway(t *testing.T, baseURL string) transport.Transport {
	t.Helper()
	g, err := New(transport.Settings{BaseURL: baseURL})
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestInvoke_PostsEnvelopeToInvokePath(t *testing.T) {
	var gotMethod, gotPath, gotContentType, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"contract_version":"v1","ok":true,"output":{"results":[]}}`)
	}))
	defer srv.Close()

	g := newGateway(t, srv.URL)
	raw, err := g.Invoke(context.Background(), []byte(`{"tool_name":"search_kb"}`))
	if err != nil {
		t.Fatal(err)
	}

	if gotMethod != http.MethodPost {
		t.Fatalf("method=%q", gotMethod)
	}
	if gotPath != "/tools/invoke" {
		t.Fatalf("path=%q", gotPath)
	}
	if gotContentType != "application/json" {
		t.Fatalf("content-type=%q", gotContentType)
	}
	if gotBody != `{"tool_name":"search_kb"}` {
		t.Fatalf("body=%q", gotBody)
	}
	if string(raw) != `{"contract_version":"v1","ok":true,"output":{"results":[]}}` {
		t.Fatalf("raw=%s", raw)
	}
}

func TestInvoke_TrailingSlashBaseURL(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		io.WriteString(w, `{}`)
	}))
	defer srv.Close()

	g := newGateway(t, srv.URL+"/")
	if _, err := g.Invoke(context.Background(), []byte(`{}`)); err != nil {
		t.Fatal(err)
	}
	if gotPath != "/tools/invoke" {
		t.Fatalf("path=%q", gotPath)
	}
}

func TestInvoke_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	g := newGateway(t, srv.URL)
	_, err := g.Invoke(context.Background(), []byte(`{}`))

	var te *transport.Error
	if !errors.As(err, &te) {
		t.Fatalf("err=%v, want transport.Error", err)
	}
	if te.Status != http.StatusBadGateway {
		t.Fatalf("status=%d", te.Status)
	}
	if te.Code != "http_error" {
		t.Fatalf("code=%q", te.Code)
	}
}

func TestInvoke_NonJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "<html>not json</html>")
	}))
	defer srv.Close()

	g := newGateway(t, srv.URL)
	_, err := g.Invoke(context.Background(), []byte(`{}`))

	var te *transport.Error
	if !errors.As(err, &te) || te.Code != "decode_error" {
		t.Fatalf("err=%v, want decode_error", err)
	}
}

func TestInvoke_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		io.WriteString(w, `{}`)
	}))
	defer srv.Close()

	g, err := New(transport.Settings{BaseURL: srv.URL, HTTPTimeout: 20 * time.Millisecond})
	if err != nil {
		t.Fatal(err)
	}
	_, err = g.Invoke(context.Background(), []byte(`{}`))

	var te *transport.Error
	if !errors.As(err, &te) || te.Code != "timeout" {
		t.Fatalf("err=%v, want timeout", err)
	}
}

func TestNew_RequiresBaseURL(t *testing.T) {
	_, err := New(transport.Settings{})
	var te *transport.Error
	if !errors.As(err, &te) || te.Code != "config_error" {
		t.Fatalf("err=%v, want config_error", err)
	}
}

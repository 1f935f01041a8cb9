package railapi

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/railtools/rail12306/config"
)

func testConfig(baseURL string) config.UpstreamConfig {
	return config.UpstreamConfig{
		BaseURL:        baseURL,
		InitPath:       "/init",
		TimeoutSeconds: 2,
		RetryAttempts:  3,
		RetryWaitMS:    1,
	}
}

// newTestServer serves handler with keep-alives disabled, so every request
// takes its own connection. On a reused connection the client transport
// transparently resends a dropped GET, which would double the hit counts.
func newTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewUnstartedServer(handler)
	srv.Config.SetKeepAlivesEnabled(false)
	srv.Start()
	t.Cleanup(srv.Close)
	return srv
}

// dropConn kills the connection without a response, which the client sees as
// a transport failure.
func dropConn(w http.ResponseWriter) {
	hj, ok := w.(http.Hijacker)
	if !ok {
		panic("test server must support hijacking")
	}
	conn, _, err := hj.Hijack()
	if err != nil {
		panic(err)
	}
	conn.Close()
}

func TestFetchJSONSucceedsAfterTransportRetries(t *testing.T) {
	var queryHits, warmHits int32
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/init" {
			atomic.AddInt32(&warmHits, 1)
			return
		}
		if n := atomic.AddInt32(&queryHits, 1); n <= 2 {
			dropConn(w)
			return
		}
		w.Write([]byte(`{"data":{"result":["a|b"]}}`))
	})

	c := NewClient(testConfig(srv.URL))
	var payload TicketPayload
	err := c.FetchJSON("/query", map[string]string{"k": "v"}, &payload)
	if err != nil {
		t.Fatalf("expected success on third attempt, got %v", err)
	}
	if len(payload.Data.Result) != 1 || payload.Data.Result[0] != "a|b" {
		t.Errorf("payload not decoded: %+v", payload)
	}
	if queryHits != 3 {
		t.Errorf("expected 3 query attempts, got %d", queryHits)
	}
	if warmHits != 3 {
		t.Errorf("expected a warm-up per attempt, got %d", warmHits)
	}
}

func TestFetchJSONExhaustsRetryBudget(t *testing.T) {
	var queryHits int32
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/init" {
			return
		}
		atomic.AddInt32(&queryHits, 1)
		dropConn(w)
	})

	c := NewClient(testConfig(srv.URL))
	var payload TicketPayload
	err := c.FetchJSON("/query", nil, &payload)
	if err == nil {
		t.Fatal("expected failure")
	}
	var ue *Error
	if !errors.As(err, &ue) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if ue.Kind != KindTransport {
		t.Errorf("expected transport kind, got %v", ue.Kind)
	}
	if ue.Attempts != 3 {
		t.Errorf("expected 3 attempts recorded, got %d", ue.Attempts)
	}
	if ue.Cause == nil {
		t.Error("expected last cause to be carried")
	}
	if queryHits != 3 {
		t.Errorf("expected 3 query attempts, got %d", queryHits)
	}
}

func TestFetchJSONTerminalFailures(t *testing.T) {
	tests := []struct {
		name    string
		handler func(w http.ResponseWriter)
		kind    Kind
	}{
		{
			"non-200 status",
			func(w http.ResponseWriter) { w.WriteHeader(http.StatusServiceUnavailable) },
			KindStatus,
		},
		{
			"undecodable body",
			func(w http.ResponseWriter) { w.Write([]byte("<html>not json</html>")) },
			KindFormat,
		},
		{
			"blocked redirect",
			func(w http.ResponseWriter) {
				w.Header().Set("Location", "https://kyfw.12306.cn/otn/error.html")
				w.WriteHeader(http.StatusFound)
			},
			KindBlocked,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var queryHits int32
			srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path == "/init" {
					return
				}
				atomic.AddInt32(&queryHits, 1)
				tt.handler(w)
			})

			c := NewClient(testConfig(srv.URL))
			var out map[string]interface{}
			err := c.FetchJSON("/query", nil, &out)
			if err == nil {
				t.Fatal("expected failure")
			}
			if KindOf(err) != tt.kind {
				t.Errorf("expected kind %v, got %v (%v)", tt.kind, KindOf(err), err)
			}
			if queryHits != 1 {
				t.Errorf("terminal failure must not retry; got %d attempts", queryHits)
			}
		})
	}
}

func TestWarmUpFailureDoesNotAbort(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/init" {
			dropConn(w)
			return
		}
		w.Write([]byte(`{}`))
	})

	c := NewClient(testConfig(srv.URL))
	var out map[string]interface{}
	if err := c.FetchJSON("/query", nil, &out); err != nil {
		t.Fatalf("warm-up failure must not fail the sequence: %v", err)
	}
}

func TestKindOfUnclassified(t *testing.T) {
	if KindOf(errors.New("plain")) != KindTransport {
		t.Error("unclassified errors count as transport")
	}
}

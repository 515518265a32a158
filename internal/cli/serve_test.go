package cli

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/matzehuels/cssel/pkg/transcode"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	c := New(io.Discard, LogInfo)
	srv := httptest.NewServer(c.newRouter())
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestHandleHealth(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	body, err := transcode.Read[map[string]string](resp.Body)
	if err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status field = %q, want ok", body["status"])
	}
}

func TestHandleBuild(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/v1/selectors", `{"fragments": ["element=div", "id=main", "class=container"]}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	body, err := transcode.Read[buildResponse](resp.Body)
	if err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Selector != "div#main.container" {
		t.Errorf("selector = %q, want div#main.container", body.Selector)
	}
	if body.ID == "" {
		t.Error("response should carry a request ID")
	}
}

func TestHandleBuildOrderViolation(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/v1/selectors", `{"fragments": ["class=x", "id=y"]}`)
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", resp.StatusCode)
	}

	body, err := transcode.Read[errorResponse](resp.Body)
	if err != nil {
		t.Fatalf("decode body: %v", err)
	}
	want := "Selector parts should be arranged in the following order: element, id, class, attribute, pseudo-class, pseudo-element."
	if body.Error != want {
		t.Errorf("error = %q, want %q", body.Error, want)
	}
}

func TestHandleBuildMalformed(t *testing.T) {
	srv := newTestServer(t)

	if resp := postJSON(t, srv.URL+"/v1/selectors", `{not json`); resp.StatusCode != http.StatusBadRequest {
		t.Errorf("malformed body: status = %d, want 400", resp.StatusCode)
	}
	if resp := postJSON(t, srv.URL+"/v1/selectors", `{"fragments": ["tag=div"]}`); resp.StatusCode != http.StatusBadRequest {
		t.Errorf("unknown kind: status = %d, want 400", resp.StatusCode)
	}
}

func TestHandleCombine(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/v1/combine",
		`{"left": ["element=div", "id=main"], "combinator": "+", "right": ["element=span"]}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	body, err := transcode.Read[buildResponse](resp.Body)
	if err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Selector != "div#main + span" {
		t.Errorf("selector = %q, want %q", body.Selector, "div#main + span")
	}
}

func TestHandleCombineDuplicateSlot(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/v1/combine",
		`{"left": ["element=div", "element=span"], "combinator": "+", "right": ["element=a"]}`)
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", resp.StatusCode)
	}
}

package diffbot

import (
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"
)

func newBuilderClient(t *testing.T) *Client {
	t.Helper()
	c, err := New("tok123", "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func TestBuildCallURL(t *testing.T) {
	c := newBuilderClient(t)

	req, err := c.buildCall(Article, "https://example.com/page?a=b", nil)
	if err != nil {
		t.Fatalf("buildCall: %v", err)
	}
	if req.Method != http.MethodGet {
		t.Errorf("method = %q, want GET", req.Method)
	}

	u, err := url.Parse(req.URL)
	if err != nil {
		t.Fatalf("built URL does not parse: %v", err)
	}
	if u.Scheme != "https" || u.Host != "api.diffbot.com" {
		t.Errorf("unexpected host part: %s://%s", u.Scheme, u.Host)
	}
	if u.Path != "/v3/article" {
		t.Errorf("path = %q, want /v3/article", u.Path)
	}

	q, err := url.ParseQuery(u.RawQuery)
	if err != nil {
		t.Fatalf("query does not parse: %v", err)
	}
	if got := q["token"]; len(got) != 1 || got[0] != "tok123" {
		t.Errorf("token params = %v, want exactly [tok123]", got)
	}
	if got := q["url"]; len(got) != 1 || got[0] != "https://example.com/page?a=b" {
		t.Errorf("url params = %v, want the original target", got)
	}
	if !strings.HasPrefix(u.RawQuery, "token=") {
		t.Errorf("token is not the first parameter: %q", u.RawQuery)
	}
}

func TestBuildCallParamOrder(t *testing.T) {
	c := newBuilderClient(t)

	req, err := c.buildCall(Article, "https://example.com/", Params{
		"timeout": "5000",
		"fields":  "title,images(url)",
	})
	if err != nil {
		t.Fatalf("buildCall: %v", err)
	}
	want := "token=tok123&url=" + url.QueryEscape("https://example.com/") +
		"&fields=" + url.QueryEscape("title,images(url)") + "&timeout=5000"
	if got := strings.SplitN(req.URL, "?", 2)[1]; got != want {
		t.Errorf("query = %q, want %q", got, want)
	}

	// Same params, same URL.
	again, err := c.buildCall(Article, "https://example.com/", Params{
		"fields":  "title,images(url)",
		"timeout": "5000",
	})
	if err != nil {
		t.Fatalf("buildCall: %v", err)
	}
	if again.URL != req.URL {
		t.Errorf("builds are not reproducible: %q vs %q", again.URL, req.URL)
	}
}

func TestBuildCallInvalidTarget(t *testing.T) {
	c := newBuilderClient(t)

	for _, target := range []string{
		"",
		"example.com/no-scheme",
		"/relative/path",
		"://bad",
		"https://", // no host
	} {
		_, err := c.buildCall(Article, target, nil)
		if KindOf(err) != KindInvalidInput {
			t.Errorf("buildCall(%q) error = %v, want KindInvalidInput", target, err)
		}
	}
}

func TestBuildCallUnsupportedOperation(t *testing.T) {
	c := newBuilderClient(t)

	if _, err := c.buildCall(Operation("frobnicate"), "https://example.com/", nil); KindOf(err) != KindInvalidInput {
		t.Errorf("error = %v, want KindInvalidInput", err)
	}
	// Search has no target URL and must not be dispatched through Call.
	if _, err := c.buildCall(Search, "https://example.com/", nil); KindOf(err) != KindInvalidInput {
		t.Errorf("error = %v, want KindInvalidInput", err)
	}
}

func TestBuildSearch(t *testing.T) {
	c := newBuilderClient(t)

	req, err := c.buildSearch("GLOBAL-INDEX", "type:article diffbot")
	if err != nil {
		t.Fatalf("buildSearch: %v", err)
	}

	u, err := url.Parse(req.URL)
	if err != nil {
		t.Fatalf("built URL does not parse: %v", err)
	}
	if u.Path != "/v3/search" {
		t.Errorf("path = %q, want /v3/search", u.Path)
	}
	q := u.Query()
	if got := q.Get("col"); got != "GLOBAL-INDEX" {
		t.Errorf("col = %q, want GLOBAL-INDEX", got)
	}
	if got := q.Get("query"); got != "type:article diffbot" {
		t.Errorf("query = %q, want the original query", got)
	}

	for _, tt := range []struct{ col, query string }{
		{"", "type:article"},
		{"GLOBAL-INDEX", ""},
	} {
		if _, err := c.buildSearch(tt.col, tt.query); KindOf(err) != KindInvalidInput {
			t.Errorf("buildSearch(%q, %q) error = %v, want KindInvalidInput", tt.col, tt.query, err)
		}
	}
}

func TestTargetEncodingRoundTrip(t *testing.T) {
	c := newBuilderClient(t)

	targets := []string{
		"https://example.com/",
		"https://example.com/path with spaces?q=a&b=c#frag",
		"https://example.com/unicode/контент",
		"http://example.com/?token=not-mine",
	}
	for _, target := range targets {
		req, err := c.buildCall(Analyze, target, nil)
		if err != nil {
			t.Fatalf("buildCall(%q): %v", target, err)
		}
		u, err := url.Parse(req.URL)
		if err != nil {
			t.Fatalf("built URL does not parse: %v", err)
		}
		q, err := url.ParseQuery(u.RawQuery)
		if err != nil {
			t.Fatalf("query does not parse: %v", err)
		}
		if got := q.Get("url"); got != target {
			t.Errorf("url param = %q, want %q", got, target)
		}
		if got := q["token"]; len(got) != 1 {
			t.Errorf("target %q produced %d token params", target, len(got))
		}
	}
}

func TestPreparedRequestHeaders(t *testing.T) {
	c := newBuilderClient(t)

	req, err := c.Prepare(Article, "https://example.com/", nil)
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	req.SetUserAgent("custom-agent/1.0")
	req.SetReferer("https://referrer.example.com/")
	req.SetCookie("session=abc")

	want := map[string]string{
		"X-Forwarded-User-Agent": "custom-agent/1.0",
		"X-Forwarded-Referer":    "https://referrer.example.com/",
		"X-Forwarded-Cookie":     "session=abc",
	}
	for k, v := range want {
		if req.Header[k] != v {
			t.Errorf("header %s = %q, want %q", k, req.Header[k], v)
		}
	}
}

func TestPreparedRequestTimeout(t *testing.T) {
	c := newBuilderClient(t)

	req, err := c.Prepare(Article, "https://example.com/", nil)
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	req.SetTimeout(5 * time.Second)

	u, err := url.Parse(req.URL)
	if err != nil {
		t.Fatalf("built URL does not parse: %v", err)
	}
	if got := u.Query().Get("timeout"); got != "5000" {
		t.Errorf("timeout param = %q, want 5000", got)
	}
}

func TestPreparedRequestHTMLBody(t *testing.T) {
	c := newBuilderClient(t)

	req, err := c.Prepare(Article, "https://example.com/", nil)
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	body := []byte("<title>hello</title>")
	req.SetHTML(body)

	if req.Method != http.MethodPost {
		t.Errorf("method = %q, want POST", req.Method)
	}
	if req.Header["Content-Type"] != "text/html" {
		t.Errorf("content type = %q, want text/html", req.Header["Content-Type"])
	}
	if string(req.Body) != string(body) {
		t.Errorf("body = %q, want %q", req.Body, body)
	}
}

func TestFieldsParam(t *testing.T) {
	if got := FieldsParam("title", "images(url)"); got != "title,images(url)" {
		t.Errorf("FieldsParam = %q", got)
	}
	if got := FieldsParam(); got != "" {
		t.Errorf("FieldsParam() = %q, want empty", got)
	}
}

package diffbot

import (
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Params carries optional query parameters for a call, e.g. "fields"
// or "timeout". Keys are appended in sorted order so built URLs are
// reproducible.
type Params map[string]string

// Request is a fully-built Diffbot API request. It is transient: built
// per call by Prepare or internally by Call and Search, never reused.
type Request struct {
	Method string
	URL    string
	Header map[string]string
	Body   []byte
}

// SetUserAgent sets the User-Agent header Diffbot will send when it
// fetches the target page.
func (r *Request) SetUserAgent(userAgent string) {
	r.setHeader("X-Forwarded-User-Agent", userAgent)
}

// SetReferer sets the Referer header Diffbot will send when it fetches
// the target page.
func (r *Request) SetReferer(referer string) {
	r.setHeader("X-Forwarded-Referer", referer)
}

// SetCookie sets the Cookie header Diffbot will send when it fetches
// the target page.
func (r *Request) SetCookie(cookie string) {
	r.setHeader("X-Forwarded-Cookie", cookie)
}

// SetTimeout sets Diffbot's own fetch timeout. Diffbot's default is
// five seconds. This is the remote timeout, not the transport one.
func (r *Request) SetTimeout(d time.Duration) {
	r.URL += "&timeout=" + strconv.FormatInt(d.Milliseconds(), 10)
}

// SetHTML turns the request into a POST with the given HTML body.
// Diffbot then skips fetching the target URL and analyzes the supplied
// markup instead, which is the way to process non-public pages.
func (r *Request) SetHTML(body []byte) {
	r.Method = http.MethodPost
	r.setHeader("Content-Type", "text/html")
	r.Body = body
}

func (r *Request) setHeader(key, value string) {
	if r.Header == nil {
		r.Header = make(map[string]string)
	}
	r.Header[key] = value
}

// FieldsParam joins field selectors into a value for the "fields"
// parameter, e.g. FieldsParam("title", "images(url)").
func FieldsParam(fields ...string) string {
	return strings.Join(fields, ",")
}

func (c *Client) buildCall(op Operation, targetURL string, params Params) (*Request, error) {
	if !op.IsValid() {
		return nil, invalidInput("unsupported operation %q", op)
	}
	if !endpoints[op].needsTarget {
		return nil, invalidInput("operation %q does not take a target URL, use Search", op)
	}
	if err := validateTarget(targetURL); err != nil {
		return nil, err
	}

	var q strings.Builder
	q.WriteString("token=")
	q.WriteString(url.QueryEscape(c.token))
	q.WriteString("&url=")
	q.WriteString(url.QueryEscape(targetURL))
	appendParams(&q, params)

	return &Request{
		Method: http.MethodGet,
		URL:    c.endpointURL(op.Path()) + "?" + q.String(),
	}, nil
}

func (c *Client) buildSearch(col, query string) (*Request, error) {
	if col == "" {
		return nil, invalidInput("search collection is empty")
	}
	if query == "" {
		return nil, invalidInput("search query is empty")
	}

	var q strings.Builder
	q.WriteString("token=")
	q.WriteString(url.QueryEscape(c.token))
	q.WriteString("&col=")
	q.WriteString(url.QueryEscape(col))
	q.WriteString("&query=")
	q.WriteString(url.QueryEscape(query))

	return &Request{
		Method: http.MethodGet,
		URL:    c.endpointURL(Search.Path()) + "?" + q.String(),
	}, nil
}

func (c *Client) endpointURL(path string) string {
	return c.baseURL + "/" + c.version + "/" + path
}

func appendParams(q *strings.Builder, params Params) {
	if len(params) == 0 {
		return
	}
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		q.WriteString("&")
		q.WriteString(url.QueryEscape(k))
		q.WriteString("=")
		q.WriteString(url.QueryEscape(params[k]))
	}
}

func validateTarget(targetURL string) error {
	if targetURL == "" {
		return invalidInput("target URL is empty")
	}
	u, err := url.Parse(targetURL)
	if err != nil {
		return &Error{Kind: KindInvalidInput, Message: "target URL is not valid", cause: err}
	}
	if !u.IsAbs() || u.Host == "" {
		return invalidInput("target URL %q must be absolute", targetURL)
	}
	return nil
}

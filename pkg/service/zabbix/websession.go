package zabbix

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/net/html"

	"github.com/Kassiosky/ZabbixMonitor/pkg/domain/model"
	"github.com/Kassiosky/ZabbixMonitor/pkg/domain/types"
)

const (
	loginPath     = "/index.php"
	chartPath     = "/chart.php"
	sessionCookie = "zbx_sessionid"
	userAgent     = "ZabbixMonitorApp"

	// graph window is fixed at the last 30 minutes
	graphFrom   = "now-30m"
	graphWidth  = 1082
	graphHeight = 200

	bodySnippetLimit = 200
)

// WebSession is the cookie-based identity against the Zabbix web
// frontend. It is independent from the API token and only needed for
// chart.php, which is not part of the JSON-RPC surface.
type WebSession struct {
	httpClient *http.Client
	baseURL    string
	username   string
	password   string

	now func() time.Time
}

// WebSessionOption configures a WebSession
type WebSessionOption func(*WebSession)

// WithWebHTTPClient replaces the underlying HTTP client. A cookie jar
// is installed if the given client has none.
func WithWebHTTPClient(hc *http.Client) WebSessionOption {
	return func(s *WebSession) {
		s.httpClient = hc
	}
}

// WithWebTLSVerify re-enables TLS certificate validation for the web
// frontend, matching the API client flag.
func WithWebTLSVerify() WebSessionOption {
	return func(s *WebSession) {
		s.httpClient = newHTTPClient(false)
	}
}

func withClock(now func() time.Time) WebSessionOption {
	return func(s *WebSession) {
		s.now = now
	}
}

// NewWebSession creates a WebSession for the frontend at baseURL.
// Call Login once at startup before requesting graph images.
func NewWebSession(baseURL, username, password string, opts ...WebSessionOption) (*WebSession, error) {
	s := &WebSession{
		httpClient: newHTTPClient(true),
		baseURL:    strings.TrimRight(baseURL, "/"),
		username:   username,
		password:   password,
		now:        time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.httpClient.Jar == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create cookie jar")
		}
		s.httpClient.Jar = jar
	}

	return s, nil
}

// Login simulates the browser form login: fetch the login page, pull
// the hidden sid field out of the form (absence is tolerated, an empty
// sid is submitted), then POST the credentials. Success is detected by
// the presence of the session cookie afterwards. Never retried; on
// failure later graph requests simply fail individually.
func (s *WebSession) Login(ctx context.Context) error {
	loginURL := s.baseURL + loginPath

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, loginURL, nil)
	if err != nil {
		return goerr.Wrap(err, "failed to build login page request")
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return goerr.Wrap(err, "failed to fetch login page", goerr.V("url", loginURL))
	}
	sid := hiddenInputValue(resp.Body, "sid")
	resp.Body.Close()

	form := url.Values{
		"name":     {s.username},
		"password": {s.password},
		"enter":    {"Sign in"},
		"sid":      {sid},
	}

	postReq, err := http.NewRequestWithContext(ctx, http.MethodPost, loginURL, strings.NewReader(form.Encode()))
	if err != nil {
		return goerr.Wrap(err, "failed to build login request")
	}
	postReq.Header.Set("User-Agent", userAgent)
	postReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	postResp, err := s.httpClient.Do(postReq)
	if err != nil {
		return goerr.Wrap(err, "web login failed", goerr.V("url", loginURL))
	}
	defer postResp.Body.Close()
	_, _ = io.Copy(io.Discard, postResp.Body)

	if !s.hasSessionCookie() {
		return goerr.New("web login failed, check credentials",
			goerr.V("url", loginURL), goerr.V("status", postResp.StatusCode))
	}

	return nil
}

// Established reports whether a web session cookie is held
func (s *WebSession) Established() bool {
	return s.hasSessionCookie()
}

func (s *WebSession) hasSessionCookie() bool {
	u, err := url.Parse(s.baseURL + loginPath)
	if err != nil {
		return false
	}
	for _, c := range s.httpClient.Jar.Cookies(u) {
		if c.Name == sessionCookie {
			return true
		}
	}
	return false
}

// GraphImage fetches the rendered short-term graph for an item. The
// server rejects hotlinked chart requests, so the Referer points at
// the problem view for the owning trigger.
func (s *WebSession) GraphImage(ctx context.Context, item types.ItemID, trigger types.TriggerID) ([]byte, error) {
	graphURL := fmt.Sprintf(
		"%s%s?from=%s&to=now&itemids[]=%s&type=0&profileIdx=web.item.graph.filter&profileIdx2=%s&width=%d&height=%d&_=%d&screenid=",
		s.baseURL, chartPath, graphFrom, item, item, graphWidth, graphHeight, s.now().Unix(),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, graphURL, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build graph request")
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Referer", fmt.Sprintf("%s/zabbix.php?action=problem.view&filter_triggerids[]=%s", s.baseURL, trigger))
	req.Header.Set("Accept", "image/webp,image/apng,image/*,*/*;q=0.8")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "graph request failed", goerr.V("item", item))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read graph response", goerr.V("item", item))
	}

	if !strings.Contains(resp.Header.Get("Content-Type"), "image") {
		return nil, goerr.New("graph response is not an image",
			goerr.T(model.ErrTagGraphUnavailable),
			goerr.V("item", item),
			goerr.V("content_type", resp.Header.Get("Content-Type")),
			goerr.V("body", truncate(string(body), bodySnippetLimit)),
		)
	}

	return body, nil
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}

// hiddenInputValue scans an HTML document for <input name=...> and
// returns its value attribute, or empty when the field is missing or
// the document does not parse.
func hiddenInputValue(r io.Reader, name string) string {
	doc, err := html.Parse(r)
	if err != nil {
		return ""
	}

	var find func(*html.Node) (string, bool)
	find = func(n *html.Node) (string, bool) {
		if n.Type == html.ElementNode && n.Data == "input" {
			var inputName, inputValue string
			for _, attr := range n.Attr {
				switch attr.Key {
				case "name":
					inputName = attr.Val
				case "value":
					inputValue = attr.Val
				}
			}
			if inputName == name {
				return inputValue, true
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			if v, ok := find(child); ok {
				return v, true
			}
		}
		return "", false
	}

	value, _ := find(doc)
	return value
}

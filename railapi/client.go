package railapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
	resty "gopkg.in/resty.v1"

	"github.com/railtools/rail12306/config"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
	"AppleWebKit/537.36 (KHTML, like Gecko) " +
	"Chrome/123.0.0.0 Safari/537.36"

// Client is the HTTP client for the 12306 query endpoints. Redirects are not
// followed: the upstream answers suspected bot traffic with a redirect to an
// error page, and that answer must be seen as-is to be classified.
type Client struct {
	rest *resty.Client
	cfg  config.UpstreamConfig
}

// NewClient creates a query client from the upstream configuration.
func NewClient(cfg config.UpstreamConfig) *Client {
	rc := resty.New()
	rc.SetTimeout(time.Duration(cfg.TimeoutSeconds) * time.Second)
	rc.SetRedirectPolicy(resty.RedirectPolicyFunc(func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	}))
	rc.SetHeaders(map[string]string{
		"User-Agent": userAgent,
		"Referer":    cfg.BaseURL + cfg.InitPath,
		"Accept":     "application/json, text/javascript, */*; q=0.01",
	})
	return &Client{rest: rc, cfg: cfg}
}

// WarmUp performs the unauthenticated GET that seeds the session cookies the
// query endpoints expect. Best-effort: a failed warm-up never aborts the
// sequence it precedes.
func (c *Client) WarmUp() {
	if _, err := c.rest.R().Get(c.cfg.BaseURL + c.cfg.InitPath); err != nil {
		log.Debugf("[railapi] warm-up failed: %v", err)
	}
}

// FetchJSONOnce performs a single query GET with no warm-up and no retry,
// decoding the body into out. The returned error, if any, is a *Error.
func (c *Client) FetchJSONOnce(queryPath string, params map[string]string, out interface{}) error {
	resp, err := c.rest.R().SetQueryParams(params).Get(c.cfg.BaseURL + queryPath)
	if err != nil {
		return &Error{Kind: KindTransport, Msg: "request failed", Cause: err}
	}
	code := resp.StatusCode()
	if code >= 300 && code < 400 {
		loc := resp.Header().Get("Location")
		return &Error{Kind: KindBlocked, StatusCode: code, Msg: "upstream redirected to " + loc}
	}
	if code != http.StatusOK {
		return &Error{Kind: KindStatus, StatusCode: code, Msg: fmt.Sprintf("upstream returned HTTP %d", code)}
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return &Error{Kind: KindFormat, Msg: "undecodable response body", Cause: err}
	}
	return nil
}

// FetchJSON performs a warm-up followed by the query GET, decoding the body
// into out. Transport failures are retried up to the configured attempt
// budget with a fixed wait in between; status, format and blocked failures
// are terminal and returned immediately.
func (c *Client) FetchJSON(queryPath string, params map[string]string, out interface{}) error {
	attempts := c.cfg.RetryAttempts
	if attempts < 1 {
		attempts = 1
	}
	var last error
	for attempt := 1; attempt <= attempts; attempt++ {
		if attempt > 1 {
			time.Sleep(time.Duration(c.cfg.RetryWaitMS) * time.Millisecond)
		}
		c.WarmUp()
		err := c.FetchJSONOnce(queryPath, params, out)
		if err == nil {
			return nil
		}
		if !IsTransport(err) {
			return err
		}
		last = err
		log.Warnf("[railapi] attempt %d/%d failed: %v", attempt, attempts, err)
	}
	return &Error{
		Kind:     KindTransport,
		Attempts: attempts,
		Msg:      fmt.Sprintf("request failed after %d attempts", attempts),
		Cause:    last,
	}
}

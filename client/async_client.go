// Package client provides asynchronous HTTP client for the Akismet API
package client

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-pkgz/lgr"

	"github.com/skorotkiewicz/akismet-go/config"
	"github.com/skorotkiewicz/akismet-go/errors"
	"github.com/skorotkiewicz/akismet-go/protocol"
)

// AsyncClient represents an asynchronous Akismet client
type AsyncClient struct {
	config     *config.Config
	httpClient *http.Client
	logger     lgr.L
}

// NewAsyncClient creates a new asynchronous Akismet client. The client
// enforces no timeout of its own; pass a deadline context to bound calls.
func NewAsyncClient(cfg *config.Config) (*AsyncClient, error) {
	if cfg.Port <= 0 {
		return nil, errors.NewConfigError("port must be positive")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = lgr.NoOp
	}

	return &AsyncClient{
		config:     cfg,
		httpClient: &http.Client{},
		logger:     logger,
	}, nil
}

// Close closes the client and releases resources
func (c *AsyncClient) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

// VerifyKey checks the configured API key against the verification endpoint
// on the base host. A well-formed negative answer is (false, nil); only
// transport failures produce an error.
func (c *AsyncClient) VerifyKey(ctx context.Context) (bool, error) {
	params := url.Values{}
	params.Set("key", c.config.APIKey)
	params.Set("blog", c.config.Blog)

	reply, err := NewRequest(c, protocol.VerifyKey, params).Execute(ctx)
	if err != nil {
		return false, err
	}
	return reply.KeyValid(), nil
}

// CheckComment asks the API whether the comment is spam. The comment's Blog
// and UserAgent fields are overwritten with the configured values before
// sending. A ham verdict is (false, nil); only transport failures produce
// an error.
func (c *AsyncClient) CheckComment(ctx context.Context, comment *config.Comment) (bool, error) {
	c.stamp(comment)

	reply, err := NewRequest(c, protocol.CommentCheck, comment.ToValues()).Execute(ctx)
	if err != nil {
		return false, err
	}
	return reply.Spam(), nil
}

// CheckSpam is an alias for CheckComment, kept for compatibility with the
// historical API surface
func (c *AsyncClient) CheckSpam(ctx context.Context, comment *config.Comment) (bool, error) {
	return c.CheckComment(ctx, comment)
}

// SubmitSpam reports a missed spam comment back to the API. The reply is
// ignored entirely: the API returns a fixed acknowledgment on these
// endpoints, so only transport failures are meaningful.
func (c *AsyncClient) SubmitSpam(ctx context.Context, comment *config.Comment) error {
	c.stamp(comment)

	_, err := NewRequest(c, protocol.SubmitSpam, comment.ToValues()).Execute(ctx)
	return err
}

// SubmitHam reports a false positive back to the API. Same reply handling
// as SubmitSpam.
func (c *AsyncClient) SubmitHam(ctx context.Context, comment *config.Comment) error {
	c.stamp(comment)

	_, err := NewRequest(c, protocol.SubmitHam, comment.ToValues()).Execute(ctx)
	return err
}

// stamp overwrites the identity fields that must come from the client
// configuration, regardless of caller-supplied values
func (c *AsyncClient) stamp(comment *config.Comment) {
	blog := c.config.Blog
	userAgent := c.config.UserAgent
	comment.Blog = &blog
	comment.UserAgent = &userAgent
}

// Request represents an HTTP request to the Akismet API
type Request struct {
	endpoint protocol.AkismetEndpoint
	client   *AsyncClient
	params   url.Values
}

// NewRequest creates a new request
func NewRequest(client *AsyncClient, command protocol.AkismetCommand, params url.Values) *Request {
	return &Request{
		endpoint: protocol.FromCommand(command),
		client:   client,
		params:   params,
	}
}

// targetURL resolves the request URL: key verification goes to the base
// host, everything else to the per-key endpoint; port 443 selects https.
func (r *Request) targetURL() *url.URL {
	host := r.client.config.Host
	if r.endpoint.KeyedHost {
		host = r.client.config.Endpoint
	}

	scheme := "http"
	if r.client.config.Port == 443 {
		scheme = "https"
	}

	return &url.URL{
		Scheme: scheme,
		Host:   net.JoinHostPort(host, strconv.Itoa(r.client.config.Port)),
		Path:   r.endpoint.Path,
	}
}

// Execute performs the single POST and returns the normalized outcome.
// Every transport-level failure is converted to a typed error at this
// boundary; a non-2xx status is part of the reply, not an error, since the
// API encodes negative verdicts in the response itself. No retries.
func (r *Request) Execute(ctx context.Context) (*protocol.RawReply, error) {
	target := r.targetURL()

	req, err := http.NewRequestWithContext(ctx, "POST", target.String(), strings.NewReader(r.params.Encode()))
	if err != nil {
		return nil, errors.NewHTTPErrorWithCause("failed to create request", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded; charset="+r.client.config.Charset)
	req.Header.Set("User-Agent", r.client.config.UserAgent)

	resp, err := r.client.httpClient.Do(req)
	if err != nil {
		r.client.logger.Logf("[DEBUG] POST %s failed: %v", target, err)
		return nil, errors.NewHTTPErrorWithCause("request failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.NewIOError(err)
	}

	r.client.logger.Logf("[DEBUG] POST %s: status %d", target, resp.StatusCode)
	return &protocol.RawReply{StatusCode: resp.StatusCode, Body: string(body)}, nil
}

// VerifyKeyAsync verifies the configured API key with a one-shot client
func VerifyKeyAsync(ctx context.Context, cfg *config.Config) (bool, error) {
	client, err := NewAsyncClient(cfg)
	if err != nil {
		return false, err
	}
	defer client.Close()

	return client.VerifyKey(ctx)
}

// CheckCommentAsync checks a comment for spam with a one-shot client
func CheckCommentAsync(ctx context.Context, cfg *config.Config, comment *config.Comment) (bool, error) {
	client, err := NewAsyncClient(cfg)
	if err != nil {
		return false, err
	}
	defer client.Close()

	return client.CheckComment(ctx, comment)
}

// CheckSpamAsync is an alias for CheckCommentAsync
func CheckSpamAsync(ctx context.Context, cfg *config.Config, comment *config.Comment) (bool, error) {
	return CheckCommentAsync(ctx, cfg, comment)
}

// SubmitSpamAsync reports missed spam with a one-shot client
func SubmitSpamAsync(ctx context.Context, cfg *config.Config, comment *config.Comment) error {
	client, err := NewAsyncClient(cfg)
	if err != nil {
		return err
	}
	defer client.Close()

	return client.SubmitSpam(ctx, comment)
}

// SubmitHamAsync reports a false positive with a one-shot client
func SubmitHamAsync(ctx context.Context, cfg *config.Config, comment *config.Comment) error {
	client, err := NewAsyncClient(cfg)
	if err != nil {
		return err
	}
	defer client.Close()

	return client.SubmitHam(ctx, comment)
}

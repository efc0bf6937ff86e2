// Package config provides configuration for the Akismet client
package config

import (
	"fmt"
	"net/url"
	"runtime"

	"github.com/go-pkgz/lgr"
)

// Default connection parameters for the Akismet REST API
const (
	DefaultHost    = "rest.akismet.com"
	DefaultPort    = 80
	DefaultCharset = "utf-8"

	// Version of this client library
	Version = "1.0.0"
)

// DefaultUserAgent identifies the client to the API in the
// vendor-recommended "platform | client" form
var DefaultUserAgent = fmt.Sprintf("Go/%s | akismet-go/%s", runtime.Version(), Version)

// Config represents configuration for the Akismet client
type Config struct {
	// URL identifying the site on whose behalf requests are made
	Blog string
	// API key issued by the vendor
	APIKey string
	// Base API host, used directly by key verification
	Host string
	// Per-key host used by check and submit calls
	Endpoint string
	// TCP port; 443 selects the https scheme
	Port int
	// Value of the User-Agent header, also injected into comment parameters
	UserAgent string
	// Character set advertised in the content-type header
	Charset string
	// Optional logger for request tracing
	Logger lgr.L
}

// NewConfig creates a new Config with default values. The key is not
// validated here; an empty or bogus key surfaces once VerifyKey is called.
func NewConfig(apiKey string) *Config {
	return &Config{
		APIKey:    apiKey,
		Host:      DefaultHost,
		Endpoint:  apiKey + "." + DefaultHost,
		Port:      DefaultPort,
		UserAgent: DefaultUserAgent,
		Charset:   DefaultCharset,
	}
}

// WithBlog sets the site identity URL
func (c *Config) WithBlog(blog string) *Config {
	c.Blog = blog
	return c
}

// WithHost sets the base API host and recomputes the per-key endpoint.
// Call WithEndpoint after this one to pin a custom endpoint.
func (c *Config) WithHost(host string) *Config {
	c.Host = host
	c.Endpoint = c.APIKey + "." + host
	return c
}

// WithEndpoint overrides the per-key endpoint host
func (c *Config) WithEndpoint(endpoint string) *Config {
	c.Endpoint = endpoint
	return c
}

// WithPort sets the TCP port
func (c *Config) WithPort(port int) *Config {
	c.Port = port
	return c
}

// WithUserAgent sets the user-agent string
func (c *Config) WithUserAgent(userAgent string) *Config {
	c.UserAgent = userAgent
	return c
}

// WithCharset sets the character set
func (c *Config) WithCharset(charset string) *Config {
	c.Charset = charset
	return c
}

// WithLogger sets a logger for request tracing
func (c *Config) WithLogger(l lgr.L) *Config {
	c.Logger = l
	return c
}

// Comment represents the parameter set of a content check or feedback call.
// Well-known fields are optional; Additional passes arbitrary key/value pairs
// (e.g. server environment data) through to the API verbatim.
type Comment struct {
	// IP address of the comment submitter
	UserIP *string
	// User agent of the comment submitter; overwritten by the client before sending
	UserAgent *string
	// HTTP referrer header of the submission
	Referrer *string
	// Full permanent URL of the entry the comment was submitted to
	Permalink *string
	// Content type, e.g. "comment", "forum-post", "signup"
	CommentType *string
	// Name submitted with the comment
	Author *string
	// Email address submitted with the comment
	AuthorEmail *string
	// URL submitted with the comment
	AuthorURL *string
	// Content that was submitted
	Content *string
	// UTC timestamp of the comment, ISO 8601
	CommentDate *string
	// UTC timestamp of the latest modification of the entry, ISO 8601
	PostModified *string
	// Comma-separated languages in use on the site, e.g. "en, fr_ca"
	Languages *string
	// Role of the user submitting the comment
	UserRole *string
	// Marks the call as a test that should not be learned from
	IsTest *bool
	// Site identity URL; overwritten by the client before sending
	Blog *string
	// Optional additional parameters
	Additional map[string]string
}

// NewComment creates a new Comment with default values
func NewComment() *Comment {
	return &Comment{
		Additional: make(map[string]string),
	}
}

// ToValues converts the Comment to a form parameter map
func (c *Comment) ToValues() url.Values {
	values := url.Values{}

	// Copy additional parameters first
	for k, v := range c.Additional {
		values.Set(k, v)
	}

	// Well-known fields take precedence on key conflicts
	if c.Blog != nil {
		values.Set("blog", *c.Blog)
	}
	if c.UserIP != nil {
		values.Set("user_ip", *c.UserIP)
	}
	if c.UserAgent != nil {
		values.Set("user_agent", *c.UserAgent)
	}
	if c.Referrer != nil {
		values.Set("referrer", *c.Referrer)
	}
	if c.Permalink != nil {
		values.Set("permalink", *c.Permalink)
	}
	if c.CommentType != nil {
		values.Set("comment_type", *c.CommentType)
	}
	if c.Author != nil {
		values.Set("comment_author", *c.Author)
	}
	if c.AuthorEmail != nil {
		values.Set("comment_author_email", *c.AuthorEmail)
	}
	if c.AuthorURL != nil {
		values.Set("comment_author_url", *c.AuthorURL)
	}
	if c.Content != nil {
		values.Set("comment_content", *c.Content)
	}
	if c.CommentDate != nil {
		values.Set("comment_date_gmt", *c.CommentDate)
	}
	if c.PostModified != nil {
		values.Set("comment_post_modified_gmt", *c.PostModified)
	}
	if c.Languages != nil {
		values.Set("blog_lang", *c.Languages)
	}
	if c.UserRole != nil {
		values.Set("user_role", *c.UserRole)
	}
	if c.IsTest != nil {
		if *c.IsTest {
			values.Set("is_test", "1")
		} else {
			values.Set("is_test", "0")
		}
	}

	return values
}

// WithUserIP sets the submitter IP address
func (c *Comment) WithUserIP(ip string) *Comment {
	c.UserIP = &ip
	return c
}

// WithUserAgent sets the submitter user agent
func (c *Comment) WithUserAgent(userAgent string) *Comment {
	c.UserAgent = &userAgent
	return c
}

// WithReferrer sets the referrer header value
func (c *Comment) WithReferrer(referrer string) *Comment {
	c.Referrer = &referrer
	return c
}

// WithPermalink sets the entry permalink
func (c *Comment) WithPermalink(permalink string) *Comment {
	c.Permalink = &permalink
	return c
}

// WithType sets the content type
func (c *Comment) WithType(commentType string) *Comment {
	c.CommentType = &commentType
	return c
}

// WithAuthor sets the author name
func (c *Comment) WithAuthor(author string) *Comment {
	c.Author = &author
	return c
}

// WithAuthorEmail sets the author email address
func (c *Comment) WithAuthorEmail(email string) *Comment {
	c.AuthorEmail = &email
	return c
}

// WithAuthorURL sets the author URL
func (c *Comment) WithAuthorURL(authorURL string) *Comment {
	c.AuthorURL = &authorURL
	return c
}

// WithContent sets the submitted content
func (c *Comment) WithContent(content string) *Comment {
	c.Content = &content
	return c
}

// WithDate sets the comment timestamp
func (c *Comment) WithDate(date string) *Comment {
	c.CommentDate = &date
	return c
}

// WithPostModified sets the entry modification timestamp
func (c *Comment) WithPostModified(date string) *Comment {
	c.PostModified = &date
	return c
}

// WithLanguages sets the site languages
func (c *Comment) WithLanguages(languages string) *Comment {
	c.Languages = &languages
	return c
}

// WithRole sets the submitting user role
func (c *Comment) WithRole(role string) *Comment {
	c.UserRole = &role
	return c
}

// WithTest marks the call as a test
func (c *Comment) WithTest(isTest bool) *Comment {
	c.IsTest = &isTest
	return c
}

// WithParam adds an additional parameter
func (c *Comment) WithParam(key, value string) *Comment {
	if c.Additional == nil {
		c.Additional = make(map[string]string)
	}
	c.Additional[key] = value
	return c
}

// Package akismet_client provides an HTTP client for the Akismet
// spam-detection API. It covers key verification, comment checking and
// spam/ham feedback submission over the vendor's form-encoded REST
// protocol.
//
// Example usage:
//
//	cfg := config.NewConfig("abc123").WithBlog("https://example.com")
//	comment := config.NewComment().
//		WithUserIP("203.0.113.7").
//		WithAuthor("viagra-test-123").
//		WithContent("Buy now!")
//
//	spam, err := client.CheckCommentAsync(context.Background(), cfg, comment)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	fmt.Printf("spam: %v\n", spam)
package akismet_client

import (
	"context"

	"github.com/skorotkiewicz/akismet-go/client"
	"github.com/skorotkiewicz/akismet-go/config"
	"github.com/skorotkiewicz/akismet-go/protocol"
)

// Re-export commonly used types and functions
type (
	Config         = config.Config
	Comment        = config.Comment
	RawReply       = protocol.RawReply
	AsyncClient    = client.AsyncClient
	AkismetCommand = protocol.AkismetCommand
)

// Re-export constructors
var (
	NewConfig      = config.NewConfig
	NewComment     = config.NewComment
	NewAsyncClient = client.NewAsyncClient
)

// Re-export commands
const (
	VerifyKey    = protocol.VerifyKey
	CommentCheck = protocol.CommentCheck
	SubmitSpam   = protocol.SubmitSpam
	SubmitHam    = protocol.SubmitHam
)

// VerifyKeyAsync checks the configured API key against the API.
//
// Example:
//
//	cfg := NewConfig("abc123").WithBlog("https://example.com")
//
//	ok, err := VerifyKeyAsync(context.Background(), cfg)
//	if err != nil {
//		return err
//	}
//
//	fmt.Printf("key valid: %v\n", ok)
func VerifyKeyAsync(ctx context.Context, cfg *Config) (bool, error) {
	return client.VerifyKeyAsync(ctx, cfg)
}

// CheckCommentAsync asks the API whether a comment is spam.
//
// Example:
//
//	cfg := NewConfig("abc123").WithBlog("https://example.com")
//	comment := NewComment().WithUserIP("203.0.113.7").WithContent("hello")
//
//	spam, err := CheckCommentAsync(context.Background(), cfg, comment)
//	if err != nil {
//		return err
//	}
//
//	fmt.Printf("spam: %v\n", spam)
func CheckCommentAsync(ctx context.Context, cfg *Config, comment *Comment) (bool, error) {
	return client.CheckCommentAsync(ctx, cfg, comment)
}

// CheckSpamAsync is an alias for CheckCommentAsync, kept for compatibility
// with the historical API surface.
func CheckSpamAsync(ctx context.Context, cfg *Config, comment *Comment) (bool, error) {
	return client.CheckSpamAsync(ctx, cfg, comment)
}

// SubmitSpamAsync reports a missed spam comment back to the API.
//
// Example:
//
//	cfg := NewConfig("abc123").WithBlog("https://example.com")
//	comment := NewComment().WithContent("spam that slipped through")
//
//	err := SubmitSpamAsync(context.Background(), cfg, comment)
//	if err != nil {
//		return err
//	}
func SubmitSpamAsync(ctx context.Context, cfg *Config, comment *Comment) error {
	return client.SubmitSpamAsync(ctx, cfg, comment)
}

// SubmitHamAsync reports a legitimate comment that was flagged as spam.
//
// Example:
//
//	cfg := NewConfig("abc123").WithBlog("https://example.com")
//	comment := NewComment().WithContent("false positive")
//
//	err := SubmitHamAsync(context.Background(), cfg, comment)
//	if err != nil {
//		return err
//	}
func SubmitHamAsync(ctx context.Context, cfg *Config, comment *Comment) error {
	return client.SubmitHamAsync(ctx, cfg, comment)
}

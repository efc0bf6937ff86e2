package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg := NewConfig("abc123")

	assert.Equal(t, "abc123", cfg.APIKey)
	assert.Equal(t, "rest.akismet.com", cfg.Host)
	assert.Equal(t, "abc123.rest.akismet.com", cfg.Endpoint)
	assert.Equal(t, 80, cfg.Port)
	assert.Equal(t, "utf-8", cfg.Charset)
	assert.Equal(t, DefaultUserAgent, cfg.UserAgent)
	assert.Empty(t, cfg.Blog)
	assert.Nil(t, cfg.Logger)
}

func TestConfigBuilders(t *testing.T) {
	cfg := NewConfig("abc123").
		WithBlog("https://example.com").
		WithPort(443).
		WithUserAgent("my-app/2.0").
		WithCharset("iso-8859-1")

	assert.Equal(t, "https://example.com", cfg.Blog)
	assert.Equal(t, 443, cfg.Port)
	assert.Equal(t, "my-app/2.0", cfg.UserAgent)
	assert.Equal(t, "iso-8859-1", cfg.Charset)
}

func TestConfigWithHostRecomputesEndpoint(t *testing.T) {
	cfg := NewConfig("abc123").WithHost("api.example.org")
	assert.Equal(t, "api.example.org", cfg.Host)
	assert.Equal(t, "abc123.api.example.org", cfg.Endpoint)

	cfg.WithEndpoint("pinned.example.org")
	assert.Equal(t, "pinned.example.org", cfg.Endpoint)
	assert.Equal(t, "api.example.org", cfg.Host, "endpoint override should not touch the host")
}

func TestCommentToValues(t *testing.T) {
	tests := []struct {
		name     string
		comment  *Comment
		expected map[string]string
	}{
		{
			name:     "empty comment",
			comment:  NewComment(),
			expected: map[string]string{},
		},
		{
			name: "well-known fields",
			comment: NewComment().
				WithUserIP("203.0.113.7").
				WithUserAgent("Mozilla/5.0").
				WithReferrer("https://example.com/").
				WithPermalink("https://example.com/post/1").
				WithType("comment").
				WithAuthor("alice").
				WithAuthorEmail("alice@example.com").
				WithAuthorURL("https://alice.example.com").
				WithContent("nice post").
				WithDate("2015-01-01T12:00:00Z").
				WithPostModified("2015-01-01T11:00:00Z").
				WithLanguages("en, fr_ca").
				WithRole("administrator"),
			expected: map[string]string{
				"user_ip":                   "203.0.113.7",
				"user_agent":                "Mozilla/5.0",
				"referrer":                  "https://example.com/",
				"permalink":                 "https://example.com/post/1",
				"comment_type":              "comment",
				"comment_author":            "alice",
				"comment_author_email":      "alice@example.com",
				"comment_author_url":        "https://alice.example.com",
				"comment_content":           "nice post",
				"comment_date_gmt":          "2015-01-01T12:00:00Z",
				"comment_post_modified_gmt": "2015-01-01T11:00:00Z",
				"blog_lang":                 "en, fr_ca",
				"user_role":                 "administrator",
			},
		},
		{
			name:     "test flag set",
			comment:  NewComment().WithTest(true),
			expected: map[string]string{"is_test": "1"},
		},
		{
			name:     "test flag cleared",
			comment:  NewComment().WithTest(false),
			expected: map[string]string{"is_test": "0"},
		},
		{
			name: "additional params pass through verbatim",
			comment: NewComment().
				WithParam("REMOTE_ADDR", "203.0.113.7").
				WithParam("HTTP_ACCEPT", "text/html"),
			expected: map[string]string{
				"REMOTE_ADDR": "203.0.113.7",
				"HTTP_ACCEPT": "text/html",
			},
		},
		{
			name: "well-known field wins over additional on key conflict",
			comment: NewComment().
				WithParam("user_ip", "10.0.0.1").
				WithUserIP("203.0.113.7"),
			expected: map[string]string{"user_ip": "203.0.113.7"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := tt.comment.ToValues()
			require.Len(t, values, len(tt.expected))
			for k, v := range tt.expected {
				assert.Equal(t, v, values.Get(k), "key %s", k)
			}
		})
	}
}

func TestCommentWithParamNilMap(t *testing.T) {
	comment := &Comment{} // constructed directly, no Additional map yet
	comment.WithParam("key", "value")
	assert.Equal(t, "value", comment.ToValues().Get("key"))
}

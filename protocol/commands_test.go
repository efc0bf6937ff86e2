package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromCommand(t *testing.T) {
	tests := []struct {
		name      string
		command   AkismetCommand
		path      string
		keyedHost bool
	}{
		{"verify key", VerifyKey, "/1.1/verify-key", false},
		{"comment check", CommentCheck, "/1.1/comment-check", true},
		{"submit spam", SubmitSpam, "/1.1/submit-spam", true},
		{"submit ham", SubmitHam, "/1.1/submit-ham", true},
		{"unknown command falls back to comment check", AkismetCommand(42), "/1.1/comment-check", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			endpoint := FromCommand(tt.command)
			assert.Equal(t, tt.path, endpoint.Path)
			assert.Equal(t, tt.keyedHost, endpoint.KeyedHost)
		})
	}
}

func TestRawReply(t *testing.T) {
	tests := []struct {
		name      string
		reply     RawReply
		succeeded bool
		keyValid  bool
		spam      bool
	}{
		{"valid key", RawReply{StatusCode: 200, Body: "valid"}, true, true, false},
		{"invalid key", RawReply{StatusCode: 200, Body: "invalid"}, true, false, false},
		{"valid body with error status", RawReply{StatusCode: 404, Body: "valid"}, false, false, false},
		{"spam verdict", RawReply{StatusCode: 200, Body: "true"}, true, false, true},
		{"ham verdict", RawReply{StatusCode: 200, Body: "false"}, true, false, false},
		{"spam body with error status", RawReply{StatusCode: 500, Body: "true"}, false, false, false},
		{"upper bound of success range", RawReply{StatusCode: 299, Body: "true"}, true, false, true},
		{"redirect is not success", RawReply{StatusCode: 300, Body: "true"}, false, false, false},
		{"body with surrounding noise", RawReply{StatusCode: 200, Body: "true\n"}, true, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.succeeded, tt.reply.Succeeded())
			assert.Equal(t, tt.keyValid, tt.reply.KeyValid())
			assert.Equal(t, tt.spam, tt.reply.Spam())
		})
	}
}

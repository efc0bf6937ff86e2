package protocol

// Literal response bodies of the Akismet API. The API answers with bare
// text, not a structured payload; anything else means a negative result
// or a misconfigured key.
const (
	ReplyValid = "valid"
	ReplySpam  = "true"
	ReplyHam   = "false"
)

// RawReply represents a completed HTTP exchange with the API: the numeric
// status and the response body as received. Transport failures never
// produce a RawReply.
type RawReply struct {
	// HTTP status code
	StatusCode int
	// Raw response body text
	Body string
}

// Succeeded reports whether the exchange completed with a 2xx status
func (r *RawReply) Succeeded() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// KeyValid reports whether the reply confirms an API key. Any non-2xx
// status or body other than the exact "valid" literal counts as not valid.
func (r *RawReply) KeyValid() bool {
	return r.Succeeded() && r.Body == ReplyValid
}

// Spam reports whether the reply classifies the content as spam. Any
// non-2xx status or body other than the exact "true" literal counts as ham.
func (r *RawReply) Spam() bool {
	return r.Succeeded() && r.Body == ReplySpam
}

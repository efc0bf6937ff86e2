// Package protocol contains commands that can be sent to the API
package protocol

// AkismetCommand represents commands that can be sent to the API
type AkismetCommand int

const (
	VerifyKey AkismetCommand = iota
	CommentCheck
	SubmitSpam
	SubmitHam
)

// AkismetEndpoint represents an ephemeral endpoint representation.
// KeyedHost marks endpoints served from the per-key host instead of
// the base API host.
type AkismetEndpoint struct {
	Path      string
	Command   AkismetCommand
	KeyedHost bool
}

// FromCommand creates a new endpoint from a command
func FromCommand(command AkismetCommand) AkismetEndpoint {
	switch command {
	case VerifyKey:
		return AkismetEndpoint{
			Path:      "/1.1/verify-key",
			Command:   command,
			KeyedHost: false,
		}
	case SubmitSpam:
		return AkismetEndpoint{
			Path:      "/1.1/submit-spam",
			Command:   command,
			KeyedHost: true,
		}
	case SubmitHam:
		return AkismetEndpoint{
			Path:      "/1.1/submit-ham",
			Command:   command,
			KeyedHost: true,
		}
	default:
		return AkismetEndpoint{
			Path:      "/1.1/comment-check",
			Command:   CommentCheck,
			KeyedHost: true,
		}
	}
}

package errs

import (
	"github.com/m-mizutani/goerr/v2"
)

var (
	// ErrTicketAlreadyOpen rejects a creation request when the requester
	// already has a live ticket in the category. User-facing, not fatal.
	ErrTicketAlreadyOpen = goerr.New("ticket already open for this category", goerr.T(TagDuplicateTicket))

	// ErrChannelProvisioning indicates the platform refused to create the
	// ticket channel. User-facing, not fatal.
	ErrChannelProvisioning = goerr.New("failed to provision ticket channel", goerr.T(TagExternal))

	// ErrTranscriptFetch and ErrTranscriptDelivery mark export failures.
	// Both are logged and surfaced as a non-fatal notice; neither blocks
	// ticket closure.
	ErrTranscriptFetch    = goerr.New("failed to fetch channel history", goerr.T(TagExternal))
	ErrTranscriptDelivery = goerr.New("failed to deliver transcript", goerr.T(TagExternal))
)

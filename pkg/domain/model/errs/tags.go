package errs

import "github.com/m-mizutani/goerr/v2"

var (
	TagValidation = goerr.NewTag("validation")

	// TagExternal marks failures of the chat platform API.
	TagExternal = goerr.NewTag("external")

	TagDuplicateTicket = goerr.NewTag("duplicate_ticket")
)

package telegram

import "errors"

// ErrAPI wraps every answer of the Bot API that is not a success.
var ErrAPI = errors.New("telegram api error")

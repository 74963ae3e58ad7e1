package sequence

import "errors"

// Configuration failures are terminal for a run; callers match the class
// with errors.Is and surface the wrapped message as-is.
var (
	ErrInvalidPath = errors.New("config path must name a .json file")
	ErrParse       = errors.New("config file is not valid JSON")
	ErrField       = errors.New("invalid configuration field")
	ErrEmptyPool   = errors.New("attribute pool is empty")
)

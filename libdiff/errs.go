package libdiff

import "errors"

var ErrConflict = errors.New("change does not apply")

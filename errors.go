package cycles

import "errors"

// ErrEncode is returned when the final canvas cannot be encoded.
// Canvases always match their document size, so this indicates a bug.
var ErrEncode = errors.New("cycles: encode")

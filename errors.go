package bustache

import (
	"github.com/RumbleDiscovery/bustache/internal/compiler"
	"github.com/RumbleDiscovery/bustache/internal/render"
)

// FormatError is raised synchronously by Compile/CompileReader on any
// syntax problem. Position is a byte offset from the start of the source.
type FormatError = compiler.FormatError

// ErrorCode classifies a FormatError.
type ErrorCode = compiler.ErrorCode

const (
	ErrSetDelim = compiler.ErrSetDelim
	ErrBadDelim = compiler.ErrBadDelim
	ErrDelim    = compiler.ErrDelim
	ErrSection  = compiler.ErrSection
	ErrBadKey   = compiler.ErrBadKey
)

// ErrMaxDepth is returned by Render/ToString when nested partial or
// lazy-format expansion exceeds the configured MaxDepth.
var ErrMaxDepth = render.ErrMaxDepth

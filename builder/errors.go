// SPDX-License-Identifier: MIT
// Package: lvcover/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`.
//   • Algorithms MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvcover/core"
)

// ErrInvalidArgument indicates a negative node/edge count, or an edge count
// above n(n-1)/2 when WithExactEdges is in effect.
// It wraps core.ErrInvalidArgument, so errors.Is against either sentinel works.
var ErrInvalidArgument = fmt.Errorf("builder: %w", core.ErrInvalidArgument)

// ErrTooFewVertices indicates that a size parameter is smaller than the
// minimum for the requested topology (e.g. Cycle(2)).
// It also satisfies errors.Is(err, ErrInvalidArgument).
var ErrTooFewVertices = fmt.Errorf("builder: parameter too small: %w", ErrInvalidArgument)

// ErrTooManyNodes indicates an exhaustive enumeration request beyond
// MaxEnumerationNodes.
var ErrTooManyNodes = errors.New("builder: too many nodes for exhaustive enumeration")

// ErrConstructFailed indicates that BuildGraph received a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")

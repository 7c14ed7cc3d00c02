// Package rewrite wraps the upstream text-rewrite capability.
package rewrite

import "context"

// Rewriter is the upstream capability contract: apply a tone instruction
// to text and return the rewritten text.
type Rewriter interface {
	Rewrite(ctx context.Context, instruction, text string) (string, error)
}

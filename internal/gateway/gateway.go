// Package gateway validates format requests and relays them to the
// upstream rewrite capability.
package gateway

import (
	"context"
	"log"
	"strings"
	"unicode/utf16"

	"github.com/softpen/tonerelay/internal/apperrors"
	"github.com/softpen/tonerelay/internal/logging"
	"github.com/softpen/tonerelay/internal/prompts"
	"github.com/softpen/tonerelay/internal/rewrite"
	"github.com/softpen/tonerelay/internal/usage"
)

// MaxTextLength is the request text limit in UTF-16 code units,
// matching the limit the browser client enforces.
const MaxTextLength = 10000

type FormatRequest struct {
	Text string `json:"text"`
	Tone string `json:"tone"`
}

type FormatResponse struct {
	FormattedText string `json:"formattedText"`
}

// Gateway relays validated requests to the rewriter and accounts every
// accepted request in the usage store.
type Gateway struct {
	rewriter rewrite.Rewriter
	usage    *usage.Store
}

func New(rewriter rewrite.Rewriter, usageStore *usage.Store) *Gateway {
	return &Gateway{rewriter: rewriter, usage: usageStore}
}

// Format validates req, increments the usage counter, and invokes the
// upstream capability. The counter moves exactly once per request that
// passes validation, before the upstream call, so accounting is
// independent of the upstream outcome. Text content is never logged.
func (g *Gateway) Format(ctx context.Context, req FormatRequest) (FormatResponse, error) {
	// A missing rewriter means the upstream credential is absent. Every
	// format call fails with the configuration message, independent of
	// input validity, and nothing is accounted.
	if g.rewriter == nil {
		return FormatResponse{}, apperrors.Config(nil)
	}

	if err := Validate(req); err != nil {
		return FormatResponse{}, err
	}

	total := g.usage.Increment()
	log.Printf("📝 [%s] Format request #%d: tone=%s length=%d",
		logging.GetRequestID(ctx), total, req.Tone, UTF16Len(req.Text))

	formatted, err := g.rewriter.Rewrite(ctx, prompts.Instruction(req.Tone), req.Text)
	if err != nil {
		log.Printf("❌ [%s] Format failed: kind=%s", logging.GetRequestID(ctx), apperrors.KindOf(err))
		return FormatResponse{}, err
	}

	return FormatResponse{FormattedText: formatted}, nil
}

// Validate checks the request against the input contract: non-empty
// trimmed text, a supported tone, and the length limit.
func Validate(req FormatRequest) error {
	if strings.TrimSpace(req.Text) == "" || req.Tone == "" {
		return apperrors.Validation("Missing text or tone")
	}
	if !prompts.IsValidTone(req.Tone) {
		return apperrors.Validation("Invalid tone: must be 'formal' or 'casual'")
	}
	if UTF16Len(req.Text) > MaxTextLength {
		return apperrors.Validation("Text too long: maximum 10000 characters")
	}
	return nil
}

// UTF16Len counts UTF-16 code units, the unit the browser's
// String.length reports, so both sides enforce the same limit.
func UTF16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}

package services

import (
	"fmt"
	"time"
)

// GenerateProposalNumber returns the display number for a proposal created at now.
// Format: PROP-{unix seconds}. Two proposals created in the same second share a number.
func GenerateProposalNumber(now time.Time) string {
	return fmt.Sprintf("PROP-%d", now.Unix())
}

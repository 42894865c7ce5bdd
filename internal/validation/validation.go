// Package validation checks user-supplied text before it reaches the store.
// Results are plain values; nothing here returns an error or does I/O.
package validation

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/oggyb/barchat/internal/model"
)

const (
	MaxMessageLength = 500
	// SpamRunLength is the shortest run of one repeated character treated as spam.
	SpamRunLength = 11

	MinNameLength = 2
	MaxNameLength = 50
	MinTable      = 1
	MaxTable      = 999
)

// Message rejection reasons.
const (
	ReasonEmpty   = "message cannot be empty"
	ReasonTooLong = "message is too long (max 500 characters)"
	ReasonSpam    = "message looks like spam"
)

var (
	// letters (ASCII and accented Latin) and whitespace
	namePattern = regexp.MustCompile(`^[a-zA-ZÀ-ÖØ-öø-ÿ\s]+$`)
	jsScheme    = regexp.MustCompile(`(?i)javascript:`)
	eventAttr   = regexp.MustCompile(`(?i)on\w+=`)
)

// MessageResult is the outcome of ValidateMessage.
// Text holds the sanitized message when Valid; Reason explains a rejection.
type MessageResult struct {
	Valid  bool
	Text   string
	Reason string
}

// ValidateMessage rejects oversized messages, then sanitizes and rejects
// what is empty or spammy after sanitizing. Length is measured before
// truncation so oversized input is never cut down silently.
func ValidateMessage(text string) MessageResult {
	if utf8.RuneCountInString(strings.TrimSpace(text)) > MaxMessageLength {
		return MessageResult{Reason: ReasonTooLong}
	}
	clean := Sanitize(text)
	if clean == "" {
		return MessageResult{Reason: ReasonEmpty}
	}
	if hasRun(clean, SpamRunLength) {
		return MessageResult{Reason: ReasonSpam}
	}
	return MessageResult{Valid: true, Text: clean}
}

// Sanitize strips angle brackets, "javascript:" and on*= attribute
// fragments, trims the rest and caps it at MaxMessageLength characters.
// It removes characters; it does not HTML-escape.
func Sanitize(s string) string {
	s = strings.NewReplacer("<", "", ">", "").Replace(s)
	s = jsScheme.ReplaceAllString(s, "")
	s = eventAttr.ReplaceAllString(s, "")
	return truncate(strings.TrimSpace(s), MaxMessageLength)
}

// hasRun reports whether s holds n or more consecutive identical characters.
func hasRun(s string, n int) bool {
	var prev rune
	run := 0
	for i, r := range s {
		if i > 0 && r == prev {
			run++
		} else {
			run = 1
		}
		if run >= n {
			return true
		}
		prev = r
	}
	return false
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

// UserResult is the outcome of ValidateUserInput.
type UserResult struct {
	Valid  bool
	Errors []string
}

// ValidateUserInput checks the entry form: name, table number and status.
func ValidateUserInput(name, table, status string) UserResult {
	var errs []string

	name = strings.TrimSpace(name)
	switch n := utf8.RuneCountInString(name); {
	case n == 0:
		errs = append(errs, "name is required")
	case n < MinNameLength:
		errs = append(errs, "name must have at least 2 characters")
	case n > MaxNameLength:
		errs = append(errs, "name must have at most 50 characters")
	case !namePattern.MatchString(name):
		errs = append(errs, "name may only contain letters and spaces")
	}

	table = strings.TrimSpace(table)
	if table == "" {
		errs = append(errs, "table is required")
	} else if n, err := strconv.Atoi(table); err != nil || n < MinTable || n > MaxTable {
		errs = append(errs, "table must be a number between 1 and 999")
	}

	if strings.TrimSpace(status) == "" {
		errs = append(errs, "status is required")
	} else if !model.Status(status).Valid() {
		errs = append(errs, "status must be one of Single, Taken, Married")
	}

	return UserResult{Valid: len(errs) == 0, Errors: errs}
}

// IdentityErrors lists what is missing from an identity carried by a request.
func IdentityErrors(id model.Identity) []string {
	var errs []string
	if strings.TrimSpace(id.Name) == "" {
		errs = append(errs, "identity name is required")
	}
	if strings.TrimSpace(id.Table) == "" {
		errs = append(errs, "identity table is required")
	}
	return errs
}

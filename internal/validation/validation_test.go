package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oggyb/barchat/internal/model"
)

func TestValidateMessage(t *testing.T) {
	cases := []struct {
		name   string
		in     string
		valid  bool
		text   string
		reason string
	}{
		{name: "plain", in: "  cheers from table 5 ", valid: true, text: "cheers from table 5"},
		{name: "empty", in: "", reason: ReasonEmpty},
		{name: "whitespace", in: " \t\n", reason: ReasonEmpty},
		{name: "too long", in: strings.Repeat("ab", 250) + "a", reason: ReasonTooLong},
		{name: "exactly 500", in: strings.Repeat("ab", 250), valid: true, text: strings.Repeat("ab", 250)},
		{name: "spam run", in: "aaaaaaaaaaaa", reason: ReasonSpam},
		{name: "ten repeats ok", in: "aaaaaaaaaa!", valid: true, text: "aaaaaaaaaa!"},
		{name: "angle brackets", in: "<script>hi</script>", valid: true, text: "scripthi/script"},
		{name: "js scheme", in: "click JavaScript:alert(1)", valid: true, text: "click alert(1)"},
		{name: "event attr", in: `img onerror=boom`, valid: true, text: "img boom"},
		{name: "only brackets", in: "<>", reason: ReasonEmpty},
		{name: "only js scheme", in: "javascript:", reason: ReasonEmpty},
		{name: "only event attr", in: "onclick=", reason: ReasonEmpty},
		{name: "brackets and blanks", in: "<<< >>>", reason: ReasonEmpty},
		{name: "spam hidden by brackets", in: "a<a>aaaaaaaaaa", reason: ReasonSpam},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := ValidateMessage(tc.in)
			assert.Equal(t, tc.valid, res.Valid)
			if tc.valid {
				assert.Equal(t, tc.text, res.Text)
			} else {
				assert.Equal(t, tc.reason, res.Reason)
			}
		})
	}
}

func TestValidateMessage_RepeatedCharTooLongWins(t *testing.T) {
	res := ValidateMessage(strings.Repeat("a", 501))
	assert.False(t, res.Valid)
	assert.Equal(t, ReasonTooLong, res.Reason)
}

func TestHasRun_Unicode(t *testing.T) {
	assert.True(t, hasRun(strings.Repeat("é", 11), 11))
	assert.False(t, hasRun(strings.Repeat("é", 10)+"e", 11))
}

func TestValidateUserInput(t *testing.T) {
	cases := []struct {
		name, table, status string
		valid               bool
	}{
		{"Jo", "5", "Single", true},
		{"João", "12", "Taken", true},
		{"Mary Ann", "999", "Married", true},
		{"J", "5", "Single", false},
		{"John123", "5", "Single", false},
		{strings.Repeat("a", 51), "5", "Single", false},
		{"Alice", "0", "Single", false},
		{"Alice", "1000", "Single", false},
		{"Alice", "five", "Single", false},
		{"Alice", "5", "Complicated", false},
		{"Alice", "5", "", false},
	}
	for _, tc := range cases {
		res := ValidateUserInput(tc.name, tc.table, tc.status)
		assert.Equal(t, tc.valid, res.Valid, "%q/%q/%q: %v", tc.name, tc.table, tc.status, res.Errors)
		if !tc.valid {
			assert.NotEmpty(t, res.Errors)
		}
	}
}

func TestValidateUserInput_CollectsAllErrors(t *testing.T) {
	res := ValidateUserInput("", "", "")
	assert.False(t, res.Valid)
	assert.Len(t, res.Errors, 3)
}

func TestIdentityErrors(t *testing.T) {
	assert.Empty(t, IdentityErrors(model.Identity{Name: "Alice", Table: "5"}))
	assert.Len(t, IdentityErrors(model.Identity{Name: "  "}), 2)
}

package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShouldProcess(t *testing.T) {
	tests := []struct {
		name    string
		subject string
		body    string
		want    bool
	}{
		{
			name:    "keyword in subject",
			subject: "Re: Quotation for Q3 hardware",
			body:    "see attached",
			want:    true,
		},
		{
			name:    "keyword in body only",
			subject: "Following up",
			body:    "Please find our updated pricing below.",
			want:    true,
		},
		{
			name:    "keyword as substring of a larger word",
			subject: "Misquoted in the press",
			body:    "",
			want:    true,
		},
		{
			name:    "mixed case",
			subject: "PROPOSAL: cloud migration",
			body:    "",
			want:    true,
		},
		{
			name:    "no keyword anywhere",
			subject: "Lunch on Friday?",
			body:    "Does noon work for you?",
			want:    false,
		},
		{
			name:    "empty subject and body",
			subject: "",
			body:    "",
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShouldProcess(tt.subject, tt.body))
		})
	}
}

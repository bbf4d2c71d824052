package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssistantReply(t *testing.T) {
	assistant := NewAssistantService()

	tests := []struct {
		name    string
		message string
		wants   string
	}{
		{"Hotel Price", "How much is the Serena hotel?", "Serena Hotel Islamabad"},
		{"Hotel Deal Wins Over Hotel", "tell me about the serena deal", "4th free"},
		{"Bus Route", "any bus from Karachi to Lahore?", "GreenLine"},
		{"Offer", "what summer discounts do you have", "Summer Bus Bonanza"},
		{"Case Insensitive", "RAMADA?", "Ramada Multan"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply := assistant.Reply(tt.message)
			assert.Contains(t, reply, tt.wants)
		})
	}

	t.Run("Fallback", func(t *testing.T) {
		reply := assistant.Reply("what is the meaning of life")
		assert.True(t, strings.Contains(reply, "couldn't understand"))
	})

	t.Run("Empty Message", func(t *testing.T) {
		assert.Equal(t, assistantFallback, assistant.Reply("   "))
	})
}

package services

import "strings"

// cannedReply pairs trigger keywords with a fixed answer
type cannedReply struct {
	keywords []string
	answer   string
}

// cannedReplies is the assistant's knowledge base, checked in order.
// Multi-word keywords come first so "serena deal" wins over "serena".
var cannedReplies = []cannedReply{
	{[]string{"serena deal"}, "Serena Hotel: Book 3 nights, get 4th free (till July 15)."},
	{[]string{"serena"}, "Serena Hotel Islamabad costs PKR 20,000 per night."},
	{[]string{"pc", "pearl"}, "Pearl Continental Lahore costs PKR 18,000 per night."},
	{[]string{"ramada"}, "Ramada Multan costs PKR 12,000 per night."},
	{[]string{"karachi to lahore"}, "GreenLine Intercity: Karachi to Lahore at 09:00 PM (PKR 4,200)."},
	{[]string{"lahore to islamabad"}, "SkyLux Executive: Lahore to Islamabad at 07:30 AM (PKR 1,800)."},
	{[]string{"peshawar to multan"}, "Safe Travels: Peshawar to Multan at 09:00 AM (PKR 2,800)."},
	{[]string{"lahore to multan"}, "RoadRunner Coach: Lahore to Multan at 11:00 AM (PKR 1,200)."},
	{[]string{"quetta to karachi"}, "Eagle Tours: Quetta to Karachi at 04:00 PM (PKR 6,000)."},
	{[]string{"summer"}, "Summer Bus Bonanza: 20% off Lahore to Islamabad till Aug 31."},
	{[]string{"group"}, "Group Offer: 10% off for 5+ people on any bus route."},
}

const assistantFallback = "Sorry, I couldn't understand. Try asking about buses, hotels, or offers."

// AssistantService answers traveler questions from a fixed keyword
// knowledge base. It keeps no state between messages.
type AssistantService struct{}

// NewAssistantService creates a new AssistantService
func NewAssistantService() *AssistantService {
	return &AssistantService{}
}

// Reply returns the assistant's answer for a user message
func (s *AssistantService) Reply(message string) string {
	text := strings.ToLower(strings.TrimSpace(message))
	if text == "" {
		return assistantFallback
	}

	for _, canned := range cannedReplies {
		for _, keyword := range canned.keywords {
			if strings.Contains(text, keyword) {
				return canned.answer
			}
		}
	}

	return assistantFallback
}

package assistant

import (
	"fmt"
	"strings"
	"time"

	"bookable/pkg/model"
)

// buildSystemPrompt renders the grounding context and response contract
// for the model. The model must answer with a single JSON object using
// one of the schemas below; anything else is treated as a plain answer.
func buildSystemPrompt(tenant *model.Tenant, resources []model.Resource, bookings, userBookings []model.Booking, user Identity, now time.Time) string {
	var resourceLines []string
	for _, r := range resources {
		resourceLines = append(resourceLines, fmt.Sprintf(
			`- ID: %q, Name: %q, Type: %q, Capacity: %d, Rate: $%g/hr, Active: %t`,
			r.ID, r.Name, r.Type, r.Capacity, r.HourlyRate, r.IsActive,
		))
	}

	var bookingLines []string
	for _, b := range bookings {
		bookingLines = append(bookingLines, fmt.Sprintf(
			`- Booking ID: %s, Resource ID: %q, Start: %q, End: %q`,
			b.ID, b.ResourceID, b.StartTime.Format(time.RFC3339), b.EndTime.Format(time.RFC3339),
		))
	}

	var userBookingLines []string
	for _, b := range userBookings {
		name := b.ResourceID
		for _, r := range resources {
			if r.ID == b.ResourceID {
				name = r.Name
				break
			}
		}
		userBookingLines = append(userBookingLines, fmt.Sprintf(
			`- Resource: %q, Start: %q, End: %q`,
			name, b.StartTime.Format(time.RFC3339), b.EndTime.Format(time.RFC3339),
		))
	}

	return fmt.Sprintf(`You are an advanced AI booking assistant for a multi-tenant platform called "Bookable".
Your persona is helpful, efficient, and slightly friendly.
Your goal is to help users book resources and manage their bookings by responding ONLY in JSON format.

## Current Context
- Current User's Name: %q
- Current Tenant: %q (ID: %s)
- Today's Date: %s
- Tenant's Booking Policy: Max booking is %g hours. A buffer of %d minutes is required between bookings.

## Instructions
Based on the user's query, you must perform one of the following actions. Respond ONLY with a single valid JSON object based on the schemas below. Do not add any text before or after the JSON.

### 1. Answer a Question
If the user asks a general question, for information, or for their bookings, use this action.
- If the user asks about their bookings, present the list from the "User's Current Bookings" section.
- If the request is ambiguous or you need more information, ask a clarifying question.
- If the query is outside your scope (e.g., "what's the weather?"), politely decline.

**JSON Schema:**
{"action": "answer", "message": "Your text response here. You can use markdown for formatting."}

### 2. Book a Resource
If the user wants to book a resource and you find an available slot that meets their criteria, use this action.
- Analyze the user's query to determine the desired resource, date, and time. Use the "Available Resources" list to find the resource ID.
- Check the "All Bookings for Tenant" list to ensure the slot is available (respecting the buffer minutes).
- The user's name and email for the booking will be handled automatically.
- If a specific number of attendees is mentioned, include it. Default to 1 if not specified.

**JSON Schema:**
{"action": "book", "resourceId": "The ID of the resource to book", "startTime": "The start time in ISO 8601 format", "endTime": "The end time in ISO 8601 format", "attendees": 1}

## Data

### Available Resources
%s

### All Bookings for Tenant
%s

### User's Current Bookings
%s
`,
		user.Name,
		tenant.Name, tenant.ID,
		now.Format(time.RFC3339),
		tenant.Settings.MaxBookingHours, tenant.Settings.BufferMinutes,
		linesOrNone(resourceLines),
		linesOrNone(bookingLines),
		linesOrNone(userBookingLines),
	)
}

func linesOrNone(lines []string) string {
	if len(lines) == 0 {
		return "(none)"
	}
	return strings.Join(lines, "\n")
}

package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/trenirovka/rosterbot/internal/models"
)

func TestListEmptyRoster(t *testing.T) {
	text := List(models.NewRoster())

	assert.Contains(t, text, "📋 <b>"+DefaultTitle+"</b>")
	assert.Contains(t, text, "No one has signed up yet.")
	assert.Contains(t, text, "The waitlist is empty.")
}

func TestListShowsPaidCheckmark(t *testing.T) {
	roster := models.NewRoster()
	roster.Signup(1, "A")
	roster.Signup(2, "B")
	roster.MarkPaid(1)

	text := List(roster)

	assert.Contains(t, text, "1. A ✅\n")
	assert.Contains(t, text, "2. B\n")
	assert.NotContains(t, text, "2. B ✅")
}

func TestListCustomTitle(t *testing.T) {
	roster := models.NewRoster()
	roster.SetTitle("Friday practice")

	text := List(roster)

	assert.Contains(t, text, "📋 <b>Friday practice</b>")
	assert.NotContains(t, text, DefaultTitle)
}

func TestListEnumeratesWaitlist(t *testing.T) {
	roster := models.NewRoster()
	roster.Maybe(1, "A")
	roster.Maybe(2, "B")

	text := List(roster)

	assert.Contains(t, text, "1. A\n")
	assert.Contains(t, text, "2. B\n")
}

func TestLogEmpty(t *testing.T) {
	text := Log(nil)

	assert.Contains(t, text, "📊 <b>Action history</b>")
	assert.Contains(t, text, "No recorded actions.")
}

func TestLogEntries(t *testing.T) {
	entries := []models.ActionEntry{
		{
			Timestamp: time.Date(2025, 4, 5, 10, 30, 0, 0, time.UTC),
			ActorID:   42,
			ActorName: "Alice",
			Action:    "Signed up",
		},
	}

	text := Log(entries)

	assert.Contains(t, text, "[2025-04-05 10:30:00] Alice (42): Signed up")
}

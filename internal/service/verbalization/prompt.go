package verbalization

import (
	"fmt"
	"time"

	"github.com/heartmarshall/tripnarrator/internal/domain"
)

const systemPrompt = "You are a travel writer who turns trip data into engaging narratives."

const promptTimeLayout = "2006-01-02 15:04 MST"

// buildPrompt renders the user prompt for one trip.
func buildPrompt(trip *domain.Trip, startAddress, endAddress string) string {
	return fmt.Sprintf(`Write a creative and engaging short story (approx 150 words) about a trip based on the following data:

Start Location: %s
End Location: %s
Start Time: %s
End Time: %s
Duration: %s

The story should describe the journey, mentioning the route and implied scenery between these two locations.
Keep it professional but descriptive.`,
		startAddress,
		endAddress,
		trip.StartTime.UTC().Format(promptTimeLayout),
		trip.EndTime.UTC().Format(promptTimeLayout),
		formatDuration(trip.Duration()),
	)
}

// formatDuration renders d as "5h 30m" or "45m".
func formatDuration(d time.Duration) string {
	d = d.Round(time.Minute)
	h := int(d / time.Hour)
	m := int((d % time.Hour) / time.Minute)
	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%dh %dm", h, m)
}

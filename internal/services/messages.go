package services

import (
	"fmt"
	"math/rand"
)

// motivationalMessages are shown after a session is saved
var motivationalMessages = []string{
	"Great job! Keep up the excellent work!",
	"You're making amazing progress!",
	"Consistency is key - you're doing fantastic!",
	"Every study session brings you closer to your goals!",
	"Your dedication is impressive! Keep it up!",
	"Learning is a journey, and you're on the right path!",
	"Proud of your commitment to learning!",
	"Small steps lead to big achievements!",
	"Your hard work will pay off!",
	"Stay focused, stay motivated!",
	"You're building great study habits!",
	"Knowledge is power, and you're gaining it!",
}

// MotivationalMessage returns a random encouragement line
func MotivationalMessage() string {
	return motivationalMessages[rand.Intn(len(motivationalMessages))]
}

// SessionSavedMessage builds the confirmation shown after saving
func SessionSavedMessage(duration int, subject string) string {
	return fmt.Sprintf("Successfully logged %d minutes of %s!\n\n%s",
		duration, subject, MotivationalMessage())
}

// FormatMinutes renders a minute total as "Xh Ymin" or "Y min"
func FormatMinutes(total int) string {
	hours := total / 60
	minutes := total % 60
	if hours > 0 {
		return fmt.Sprintf("%dh %dmin", hours, minutes)
	}
	return fmt.Sprintf("%d min", minutes)
}

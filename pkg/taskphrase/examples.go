package taskphrase

var voiceCommandExamples = []string{
	"Add urgent task: Finish presentation tomorrow 10 AM",
	"Remind me to call mom two days from now at 2 PM",
	"Create task: Buy groceries next Monday morning",
	"Schedule meeting with team next week at 10:30 AM",
	"Don't forget to take medicine tonight at 8 PM",
	"I need to file taxes by April 15th",
	"Add task: Birthday party on July 4th 2026",
	"Create low priority task: Clean garage this weekend",
	"Remind me to exercise in 3 days at 7 AM",
	"Schedule dentist appointment next month in the afternoon",
	"Add work task: Submit report by Christmas",
	"Create task: Halloween costume shopping in October",
}

// Examples returns sample commands to show users as hints. The slice is a copy.
func Examples() []string {
	out := make([]string, len(voiceCommandExamples))
	copy(out, voiceCommandExamples)
	return out
}

package scheduler

// affirmationMessages is indexed by day offset modulo its length, so the
// message for a given day is stable across runs and processes.
var affirmationMessages = []string{
	"I am doing my best, and that is enough.",
	"I give myself permission to rest.",
	"My worth is not measured by my productivity.",
	"I can take things one step at a time.",
	"I deserve kindness, especially from myself.",
	"It is okay to ask for help.",
	"I am allowed to set boundaries that protect my energy.",
}

// AffirmationFor returns the affirmation for the day at offset from the range start.
func AffirmationFor(offset int) string {
	n := len(affirmationMessages)
	return affirmationMessages[((offset%n)+n)%n]
}

// AffirmationCount returns the size of the message list.
func AffirmationCount() int {
	return len(affirmationMessages)
}

package models

import "fmt"

// ActivityType is the closed set of wellbeing activities the scheduler can place.
type ActivityType string

const (
	ActivityMeditation    ActivityType = "meditation"
	ActivityJournaling    ActivityType = "journaling"
	ActivityLightExercise ActivityType = "light_exercise"
	ActivityRest          ActivityType = "rest"
	ActivityAffirmation   ActivityType = "affirmation"
	ActivityHobby         ActivityType = "hobby"
)

// AllActivityTypes lists every activity type in declaration order.
var AllActivityTypes = []ActivityType{
	ActivityMeditation,
	ActivityJournaling,
	ActivityLightExercise,
	ActivityRest,
	ActivityAffirmation,
	ActivityHobby,
}

// HobbyNotePrefix prefixes the note of every hobby event.
const HobbyNotePrefix = "Time for your hobby: "

// Valid reports whether a is a known activity type.
func (a ActivityType) Valid() bool {
	switch a {
	case ActivityMeditation, ActivityJournaling, ActivityLightExercise,
		ActivityRest, ActivityAffirmation, ActivityHobby:
		return true
	}
	return false
}

// DefaultMinutes returns the duration used when a slot does not override it.
func (a ActivityType) DefaultMinutes() int {
	switch a {
	case ActivityMeditation:
		return 20
	case ActivityJournaling:
		return 20
	case ActivityLightExercise:
		return 30
	case ActivityRest:
		return 15
	case ActivityAffirmation:
		return 5
	case ActivityHobby:
		return 45
	}
	panic(fmt.Sprintf("unknown activity type %q", string(a)))
}

// Title returns the calendar title for the activity.
func (a ActivityType) Title() string {
	switch a {
	case ActivityMeditation:
		return "Meditation"
	case ActivityJournaling:
		return "Journaling"
	case ActivityLightExercise:
		return "Light Exercise"
	case ActivityRest:
		return "Rest / Recovery"
	case ActivityAffirmation:
		return "Affirmation"
	case ActivityHobby:
		return "Hobby Time"
	}
	panic(fmt.Sprintf("unknown activity type %q", string(a)))
}

// DefaultNote returns the supportive description attached to the activity.
// Affirmation and hobby notes depend on context and are filled in by the scheduler.
func (a ActivityType) DefaultNote() string {
	switch a {
	case ActivityMeditation:
		return "Find a quiet spot and focus on slow, steady breathing."
	case ActivityJournaling:
		return "Write down how today felt and one thing you are grateful for."
	case ActivityLightExercise:
		return "A gentle walk or stretch to release tension. Keep it easy."
	case ActivityRest:
		return "Step away from screens and let your body recover."
	case ActivityAffirmation:
		return ""
	case ActivityHobby:
		return ""
	}
	panic(fmt.Sprintf("unknown activity type %q", string(a)))
}

// HobbyNote returns the note attached to a hobby event for label.
func HobbyNote(label string) string {
	return HobbyNotePrefix + label
}

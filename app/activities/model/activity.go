package model

import "errors"

// ==================== Errors ====================

var (
	ErrActivityNotFound = errors.New("activity not found")
	ErrAlreadySignedUp  = errors.New("student is already signed up")
	ErrNotRegistered    = errors.New("student is not registered for this activity")
)

// ==================== Activity ====================

// Activity is one extracurricular offering. The activity name is not part of
// the struct; it is the registry key, matching the wire format where
// /activities returns a map keyed by name.
type Activity struct {
	Description string `json:"description"`
	Schedule    string `json:"schedule"`

	// MaxParticipants is advisory only. Signup never checks the current
	// participant count against it; the frontend displays it as
	// "spots left" but the server does not enforce capacity.
	MaxParticipants int `json:"max_participants"`

	Participants []string `json:"participants"`
}

// clone returns a deep copy so callers can never alias the registry's
// participant slice.
func (a *Activity) clone() Activity {
	out := *a
	out.Participants = make([]string, len(a.Participants))
	copy(out.Participants, a.Participants)
	return out
}

// hasParticipant reports whether email is already in the participant list.
// Comparison is exact: emails are opaque strings, no normalization.
func (a *Activity) hasParticipant(email string) bool {
	for _, p := range a.Participants {
		if p == email {
			return true
		}
	}
	return false
}

// ==================== Seed data ====================

// SeedActivity is one entry of the fixed data set the registry is built from
// at process start. It is loaded from the service yaml (Seed section) or, when
// that section is empty, from DefaultSeed.
type SeedActivity struct {
	Name            string   `json:"Name"`
	Description     string   `json:"Description"`
	Schedule        string   `json:"Schedule"`
	MaxParticipants int      `json:"MaxParticipants"`
	Participants    []string `json:"Participants,optional"`
}

// DefaultSeed returns the built-in activity catalog of Mergington High School.
func DefaultSeed() []SeedActivity {
	return []SeedActivity{
		{
			Name:            "Chess Club",
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		{
			Name:            "Programming Class",
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		{
			Name:            "Tennis Club",
			Description:     "Practice tennis skills and compete in local matches",
			Schedule:        "Mondays and Wednesdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 16,
			Participants:    []string{"liam@mergington.edu", "ava@mergington.edu"},
		},
		{
			Name:            "Basketball Team",
			Description:     "Practice and play basketball with the school team",
			Schedule:        "Wednesdays and Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 15,
			Participants:    []string{"james@mergington.edu"},
		},
		{
			Name:            "Art Studio",
			Description:     "Explore painting, drawing and other visual arts",
			Schedule:        "Thursdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 15,
			Participants:    []string{"amelia@mergington.edu", "harper@mergington.edu"},
		},
		{
			Name:            "Drama Club",
			Description:     "Act, direct and produce plays and performances",
			Schedule:        "Mondays and Wednesdays, 3:30 PM - 5:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"ella@mergington.edu", "scarlett@mergington.edu"},
		},
		{
			Name:            "Math Club",
			Description:     "Solve challenging problems and prepare for math competitions",
			Schedule:        "Tuesdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 10,
			Participants:    []string{"oliver@mergington.edu"},
		},
		{
			Name:            "Debate Team",
			Description:     "Develop public speaking and argumentation skills",
			Schedule:        "Fridays, 4:00 PM - 5:30 PM",
			MaxParticipants: 12,
			Participants:    []string{"charlotte@mergington.edu", "henry@mergington.edu"},
		},
		{
			Name:            "Science Club",
			Description:     "Run experiments and explore scientific concepts",
			Schedule:        "Thursdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 18,
			Participants:    []string{"lucas@mergington.edu", "mia@mergington.edu"},
		},
	}
}

package store

import "github.com/mergington/activities/internal/model"

// Seed returns the fixed directory the service starts with. Each call returns
// a fresh deep copy so backends and tests can mutate their own instance.
func Seed() map[string]model.Activity {
	seed := map[string]model.Activity{
		"Chess Club": {
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		"Programming Class": {
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		"Gym Class": {
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
		"Basketball Team": {
			Description:     "Competitive basketball training and inter-school matches",
			Schedule:        "Tuesdays and Thursdays, 4:00 PM - 6:00 PM",
			MaxParticipants: 15,
			Participants:    []string{"james@mergington.edu", "alex@mergington.edu"},
		},
		"Swimming Club": {
			Description:     "Swimming lessons and competitive swimming events",
			Schedule:        "Mondays and Wednesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 20,
			Participants:    []string{"sarah@mergington.edu"},
		},
		"Art Studio": {
			Description:     "Explore various art mediums including painting and sculpture",
			Schedule:        "Wednesdays, 3:30 PM - 5:30 PM",
			MaxParticipants: 15,
			Participants:    []string{"emily@mergington.edu", "mia@mergington.edu"},
		},
		"Drama Club": {
			Description:     "Theater production, acting workshops, and stage performances",
			Schedule:        "Mondays and Thursdays, 4:00 PM - 6:00 PM",
			MaxParticipants: 25,
			Participants:    []string{"liam@mergington.edu"},
		},
		"Debate Team": {
			Description:     "Develop critical thinking and public speaking through competitive debates",
			Schedule:        "Fridays, 4:00 PM - 6:00 PM",
			MaxParticipants: 16,
			Participants:    []string{"sophia@mergington.edu", "noah@mergington.edu"},
		},
		"Science Olympiad": {
			Description:     "Prepare for science competitions and conduct advanced experiments",
			Schedule:        "Tuesdays, 3:30 PM - 5:30 PM",
			MaxParticipants: 18,
			Participants:    []string{"ava@mergington.edu", "william@mergington.edu"},
		},
	}

	out := make(map[string]model.Activity, len(seed))
	for name, act := range seed {
		out[name] = act.Clone()
	}
	return out
}

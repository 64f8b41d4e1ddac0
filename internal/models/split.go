package models

// Split is a workout theme with its ordered exercise list.
type Split struct {
	Name      string   `json:"name"`
	Exercises []string `json:"exercises"`
}

// WorkoutSplits maps weekday numbers (1-7) to their split. Days 5-7
// deliberately repeat days 1-3; clients rely on all seven keys being
// present, so the repetition is not deduplicated.
var WorkoutSplits = map[int]Split{
	1: {
		Name: "Back & Biceps",
		Exercises: []string{
			"Deadlifts",
			"Pull-ups",
			"Barbell Rows",
			"Lat Pulldowns",
			"Barbell Curls",
			"Hammer Curls",
			"Cable Curls",
		},
	},
	2: {
		Name: "Shoulders",
		Exercises: []string{
			"Overhead Press",
			"Lateral Raises",
			"Front Raises",
			"Rear Delt Flyes",
			"Upright Rows",
			"Shrugs",
			"Face Pulls",
		},
	},
	3: {
		Name: "Chest & Triceps",
		Exercises: []string{
			"Bench Press",
			"Incline Bench Press",
			"Dumbbell Flyes",
			"Dips",
			"Close-Grip Bench Press",
			"Tricep Extensions",
			"Diamond Push-ups",
		},
	},
	4: {
		Name: "Legs",
		Exercises: []string{
			"Squats",
			"Romanian Deadlifts",
			"Leg Press",
			"Leg Curls",
			"Leg Extensions",
			"Calf Raises",
			"Walking Lunges",
		},
	},
	5: {
		Name: "Back & Biceps",
		Exercises: []string{
			"Deadlifts",
			"Pull-ups",
			"Barbell Rows",
			"Lat Pulldowns",
			"Barbell Curls",
			"Hammer Curls",
			"Cable Curls",
		},
	},
	6: {
		Name: "Shoulders",
		Exercises: []string{
			"Overhead Press",
			"Lateral Raises",
			"Front Raises",
			"Rear Delt Flyes",
			"Upright Rows",
			"Shrugs",
			"Face Pulls",
		},
	},
	7: {
		Name: "Chest & Triceps",
		Exercises: []string{
			"Bench Press",
			"Incline Bench Press",
			"Dumbbell Flyes",
			"Dips",
			"Close-Grip Bench Press",
			"Tricep Extensions",
			"Diamond Push-ups",
		},
	},
}

package progression

// StarterExercises is the default workout request when the caller names no
// exercises.
var StarterExercises = []string{"push-ups", "squats", "plank", "jumping-jacks"}

func reps(sets int, reps string, dur int) TierProgression {
	return TierProgression{Sets: sets, Reps: reps, DurationSeconds: dur}
}

var defaultExercises = map[string]ExerciseTemplate{
	"push-ups": {
		Name:        "push-ups",
		Description: "Classic bodyweight push-up, chest to the floor.",
		Progression: map[int]TierProgression{
			1: reps(2, "8", 60),
			2: reps(3, "10", 90),
			3: reps(3, "12", 120),
			4: reps(4, "15", 150),
			5: reps(4, "20", 180),
			6: reps(5, "25", 240),
		},
	},
	"squats": {
		Name:        "squats",
		Description: "Bodyweight squat, thighs parallel to the ground.",
		Progression: map[int]TierProgression{
			1: reps(2, "10", 60),
			2: reps(3, "12", 90),
			3: reps(3, "15", 120),
			4: reps(4, "18", 150),
			5: reps(4, "22", 180),
			6: reps(5, "30", 240),
		},
	},
	"plank": {
		Name:        "plank",
		Description: "Forearm plank hold with a neutral spine.",
		Progression: map[int]TierProgression{
			1: reps(2, "20s", 40),
			2: reps(3, "30s", 90),
			3: reps(3, "45s", 135),
			4: reps(3, "60s", 180),
			5: reps(4, "75s", 300),
			6: reps(4, "90s", 360),
		},
	},
	"jumping-jacks": {
		Name:        "jumping-jacks",
		Description: "Full-body jumping jacks at a steady cadence.",
		Progression: map[int]TierProgression{
			1: reps(2, "20", 60),
			2: reps(3, "25", 90),
			3: reps(3, "30", 120),
			4: reps(4, "35", 150),
			5: reps(4, "40", 180),
			6: reps(5, "50", 240),
		},
	},
	"lunges": {
		Name:        "lunges",
		Description: "Alternating forward lunges, knee tracking over the toes.",
		Progression: map[int]TierProgression{
			1: reps(2, "8", 60),
			2: reps(3, "10", 90),
			3: reps(3, "12", 120),
			4: reps(4, "14", 150),
			5: reps(4, "18", 180),
			6: reps(5, "22", 240),
		},
	},
	"burpees": {
		Name:        "burpees",
		Description: "Squat thrust into a jump, full extension at the top.",
		Progression: map[int]TierProgression{
			1: reps(2, "5", 60),
			2: reps(3, "8", 90),
			3: reps(3, "10", 120),
			4: reps(4, "12", 180),
			5: reps(4, "15", 240),
			6: reps(5, "20", 300),
		},
	},
	"mountain-climbers": {
		Name:        "mountain-climbers",
		Description: "High-plank mountain climbers, knees driving to the chest.",
		Progression: map[int]TierProgression{
			1: reps(2, "20s", 40),
			2: reps(3, "30s", 90),
			3: reps(3, "40s", 120),
			4: reps(4, "45s", 180),
			5: reps(4, "60s", 240),
			6: reps(5, "60s", 300),
		},
	},
	"high-knees": {
		Name:        "high-knees",
		Description: "Running in place, knees to hip height.",
		Progression: map[int]TierProgression{
			1: reps(2, "20s", 40),
			2: reps(3, "30s", 90),
			3: reps(3, "40s", 120),
			4: reps(4, "45s", 180),
			5: reps(4, "60s", 240),
			6: reps(5, "60s", 300),
		},
	},
}

var defaultGoalProfiles = map[string]GoalProfile{
	"general-fitness": {
		Key:          "general-fitness",
		Label:        "General Fitness",
		SessionTypes: []SessionType{SessionStrength, SessionCardio, SessionFlexibility, SessionMixed},
	},
	"weight-loss": {
		Key:          "weight-loss",
		Label:        "Weight Loss",
		SessionTypes: []SessionType{SessionCardio, SessionMixed, SessionStrength},
	},
	"muscle-gain": {
		Key:          "muscle-gain",
		Label:        "Muscle Gain",
		SessionTypes: []SessionType{SessionStrength, SessionMixed},
	},
	"endurance": {
		Key:          "endurance",
		Label:        "Endurance",
		SessionTypes: []SessionType{SessionCardio, SessionMixed},
	},
	"mobility": {
		Key:          "mobility",
		Label:        "Mobility",
		SessionTypes: []SessionType{SessionFlexibility, SessionMixed},
	},
}

// defaultWeekdayPolicy spreads sessions evenly across the week for each
// target frequency. Weekdays use time.Weekday numbering (0 = Sunday).
var defaultWeekdayPolicy = map[int][]int{
	1: {3},
	2: {1, 4},
	3: {1, 3, 5},
	4: {1, 2, 4, 5},
	5: {1, 2, 3, 4, 5},
	6: {1, 2, 3, 4, 5, 6},
	7: {0, 1, 2, 3, 4, 5, 6},
}

var defaultSessionLibrary = map[SessionKey]SessionTemplate{
	{SessionStrength, SkillBeginner}: {
		Title:             "Foundation Strength",
		Description:       "Full-body bodyweight strength basics.",
		DurationMinutes:   25,
		Difficulty:        1,
		ExerciseNames:     []string{"push-ups", "squats", "lunges"},
		EstimatedCalories: 140,
		FocusTags:         []string{"full-body", "form"},
	},
	{SessionStrength, SkillIntermediate}: {
		Title:             "Progressive Strength",
		Description:       "Higher-volume strength circuit with core work.",
		DurationMinutes:   40,
		Difficulty:        3,
		ExerciseNames:     []string{"push-ups", "squats", "lunges", "plank"},
		EstimatedCalories: 260,
		FocusTags:         []string{"full-body", "core"},
	},
	{SessionStrength, SkillAdvanced}: {
		Title:             "Power Strength",
		Description:       "Dense strength blocks with explosive finishers.",
		DurationMinutes:   55,
		Difficulty:        5,
		ExerciseNames:     []string{"push-ups", "squats", "lunges", "burpees"},
		EstimatedCalories: 420,
		FocusTags:         []string{"strength", "power"},
	},
	{SessionCardio, SkillBeginner}: {
		Title:             "Easy Cardio Start",
		Description:       "Low-impact intervals to build an aerobic base.",
		DurationMinutes:   20,
		Difficulty:        1,
		ExerciseNames:     []string{"jumping-jacks", "high-knees"},
		EstimatedCalories: 150,
		FocusTags:         []string{"cardio", "endurance"},
	},
	{SessionCardio, SkillIntermediate}: {
		Title:             "Interval Cardio",
		Description:       "Work/rest intervals at a challenging pace.",
		DurationMinutes:   35,
		Difficulty:        3,
		ExerciseNames:     []string{"jumping-jacks", "high-knees", "mountain-climbers"},
		EstimatedCalories: 320,
		FocusTags:         []string{"cardio", "intervals"},
	},
	{SessionCardio, SkillAdvanced}: {
		Title:             "HIIT Burner",
		Description:       "High-intensity intervals with minimal rest.",
		DurationMinutes:   45,
		Difficulty:        5,
		ExerciseNames:     []string{"burpees", "high-knees", "mountain-climbers", "jumping-jacks"},
		EstimatedCalories: 520,
		FocusTags:         []string{"hiit", "conditioning"},
	},
	{SessionFlexibility, SkillBeginner}: {
		Title:             "Gentle Mobility",
		Description:       "Static holds and easy range-of-motion work.",
		DurationMinutes:   15,
		Difficulty:        1,
		ExerciseNames:     []string{"plank"},
		EstimatedCalories: 60,
		FocusTags:         []string{"mobility", "recovery"},
	},
	{SessionFlexibility, SkillIntermediate}: {
		Title:             "Active Flexibility",
		Description:       "Longer holds with active core engagement.",
		DurationMinutes:   25,
		Difficulty:        2,
		ExerciseNames:     []string{"plank", "lunges"},
		EstimatedCalories: 110,
		FocusTags:         []string{"mobility", "core"},
	},
	{SessionFlexibility, SkillAdvanced}: {
		Title:             "Deep Mobility Flow",
		Description:       "Extended flow combining holds and slow transitions.",
		DurationMinutes:   35,
		Difficulty:        3,
		ExerciseNames:     []string{"plank", "lunges", "mountain-climbers"},
		EstimatedCalories: 170,
		FocusTags:         []string{"mobility", "flow"},
	},
	{SessionMixed, SkillBeginner}: {
		Title:             "Starter Mix",
		Description:       "A little of everything at an easy pace.",
		DurationMinutes:   25,
		Difficulty:        2,
		ExerciseNames:     []string{"squats", "jumping-jacks", "plank"},
		EstimatedCalories: 170,
		FocusTags:         []string{"full-body", "variety"},
	},
	{SessionMixed, SkillIntermediate}: {
		Title:             "Balanced Circuit",
		Description:       "Strength and cardio blocks back to back.",
		DurationMinutes:   40,
		Difficulty:        3,
		ExerciseNames:     []string{"push-ups", "squats", "high-knees", "plank"},
		EstimatedCalories: 330,
		FocusTags:         []string{"circuit", "balance"},
	},
	{SessionMixed, SkillAdvanced}: {
		Title:             "Full Spectrum",
		Description:       "Heavy mixed circuit covering every energy system.",
		DurationMinutes:   55,
		Difficulty:        4,
		ExerciseNames:     []string{"burpees", "push-ups", "squats", "mountain-climbers", "plank"},
		EstimatedCalories: 500,
		FocusTags:         []string{"circuit", "conditioning"},
	},
}

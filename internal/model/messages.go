package model

import "math/rand"

var correctMessages = []string{
	"Amazing!",
	"You're a star!",
	"Excellent work!",
	"Fantastic!",
	"Great job!",
	"You got it!",
	"Perfect!",
	"Wonderful!",
	"Super work!",
	"Brilliant!",
}

var tryAgainMessages = []string{
	"Try again!",
	"Almost there!",
	"Give it another go!",
	"You can do this!",
	"Keep trying!",
	"One more time!",
	"Nice try! Keep going!",
	"Don't give up!",
}

// Encouragement picks a random cheer for a correct answer or a nudge for a wrong one.
func Encouragement(rnd *rand.Rand, correct bool) string {
	msgs := tryAgainMessages
	if correct {
		msgs = correctMessages
	}
	return msgs[rnd.Intn(len(msgs))]
}

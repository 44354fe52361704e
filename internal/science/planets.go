// Package science holds the solar system facts quiz.
package science

import (
	"fmt"
	"strings"

	"github.com/LaduClassic/liyahs-learning-jour/internal/generator"
	"github.com/LaduClassic/liyahs-learning-jour/internal/quiz"
)

// Planet is one solar system entry, ordered by distance from the Sun.
type Planet struct {
	Name  string
	Order int
	Fact  string
}

var planets = []Planet{
	{Name: "Mercury", Order: 1, Fact: "The smallest planet and closest to the Sun! It's very hot during the day and freezing cold at night."},
	{Name: "Venus", Order: 2, Fact: "The hottest planet! It's covered in thick clouds of acid. It spins backwards compared to most planets!"},
	{Name: "Earth", Order: 3, Fact: "Our home! The only planet with life. It has water, air, and the perfect temperature for living things."},
	{Name: "Mars", Order: 4, Fact: "The Red Planet! It has the biggest volcano in our solar system. Scientists think there might be water underground!"},
	{Name: "Jupiter", Order: 5, Fact: "The biggest planet! It has a giant storm called the Great Red Spot that has been going for hundreds of years!"},
	{Name: "Saturn", Order: 6, Fact: "The planet with beautiful rings! The rings are made of ice and rocks. Saturn could float in water because it's so light!"},
	{Name: "Uranus", Order: 7, Fact: "The sideways planet! It spins on its side. It's so far from the Sun that it takes 84 Earth years to go around it once!"},
	{Name: "Neptune", Order: 8, Fact: "The windiest planet! It has the strongest winds in the solar system. It's so far away that it takes 165 Earth years to orbit the Sun!"},
}

const choiceCount = 4

// Planets returns a copy of the planets in order from the Sun.
func Planets() []Planet {
	out := make([]Planet, len(planets))
	copy(out, planets)
	return out
}

// Clue returns the planet's fact with its own name hidden.
func (p Planet) Clue() string {
	return strings.ReplaceAll(p.Fact, p.Name, "This planet")
}

// Questions asks which planet matches a fact, n times. Planets do not repeat
// until all of them have been asked.
func Questions(g *generator.Generator, n int) []quiz.Question {
	names := make([]string, len(planets))
	for i, p := range planets {
		names[i] = p.Name
	}

	out := make([]quiz.Question, 0, n)
	var order []int
	for i := 0; i < n; i++ {
		if len(order) == 0 {
			order = g.Perm(len(planets))
		}
		p := planets[order[0]]
		order = order[1:]
		out = append(out, quiz.Question{
			ID:       fmt.Sprintf("planet-%d", i+1),
			Kind:     quiz.MultipleChoice,
			Prompt:   "Which planet is this? " + p.Clue(),
			Options:  quiz.Choices(g, p.Name, names, choiceCount),
			Answer:   p.Name,
			Category: "Solar System",
		})
	}
	return out
}

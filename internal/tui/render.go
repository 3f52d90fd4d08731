package tui

// gallowsStages is the classic seven-stage hangman drawing, from empty
// gallows to the complete figure.
var gallowsStages = [...]string{
	`  +---+
  |   |
      |
      |
      |
      |
=========`,
	`  +---+
  |   |
  O   |
      |
      |
      |
=========`,
	`  +---+
  |   |
  O   |
  |   |
      |
      |
=========`,
	`  +---+
  |   |
  O   |
 /|   |
      |
      |
=========`,
	`  +---+
  |   |
  O   |
 /|\  |
      |
      |
=========`,
	`  +---+
  |   |
  O   |
 /|\  |
 /    |
      |
=========`,
	`  +---+
  |   |
  O   |
 /|\  |
 / \  |
      |
=========`,
}

// GallowsStageCount is the number of drawing stages. With the default
// attempt allowance each wrong guess advances exactly one stage.
const GallowsStageCount = len(gallowsStages)

// Gallows returns the drawing for used wrong guesses out of max. When
// max differs from the stage count the progression is scaled so the
// final stage is reached exactly when attempts run out.
func Gallows(used, max int) string {
	last := GallowsStageCount - 1
	if max <= 0 || used <= 0 {
		return gallowsStages[0]
	}
	if used >= max {
		return gallowsStages[last]
	}
	idx := used * last / max
	if idx >= last {
		idx = last - 1 // intermediate progress never shows the final stage
	}
	return gallowsStages[idx]
}

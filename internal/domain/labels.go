package domain

// Labels maps a 1-based game index to a descriptive name.
type Labels map[int]string

// DefaultLabels returns the names of the classic games in the bundled game.toml.
func DefaultLabels() Labels {
	return Labels{
		9:  "The Gift of the Magi",
		12: "Prisoners' dilemma",
		66: "Chicken game",
		69: "Battle of the sexes",
	}
}

// Get returns the label for index, or "" when the game is unlabeled.
// A nil Labels is valid and labels nothing.
func (l Labels) Get(index int) string {
	return l[index]
}

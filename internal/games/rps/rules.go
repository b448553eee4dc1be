package rps

// Choice is one of the three hands.
type Choice int

const (
	Rock Choice = iota
	Paper
	Scissors
)

// Choices lists the hands in menu order.
var Choices = [3]Choice{Rock, Paper, Scissors}

var choiceInfo = [...]struct {
	name  string
	emoji string
	beats Choice
}{
	Rock:     {"Rock", "🪨", Scissors},
	Paper:    {"Paper", "📄", Rock},
	Scissors: {"Scissors", "✂", Paper},
}

func (c Choice) String() string { return choiceInfo[c].name }

// Emoji returns the symbol drawn for the hand.
func (c Choice) Emoji() string { return choiceInfo[c].emoji }

// Beats reports whether c wins against o.
func (c Choice) Beats(o Choice) bool { return choiceInfo[c].beats == o }

// Outcome is the result of a round from the player's side.
type Outcome int

const (
	Draw Outcome = iota
	Win
	Lose
)

func (o Outcome) String() string {
	switch o {
	case Win:
		return "You Win!"
	case Lose:
		return "Computer Wins!"
	default:
		return "It's a Draw!"
	}
}

// Decide returns the outcome of player against computer.
func Decide(player, computer Choice) Outcome {
	switch {
	case player == computer:
		return Draw
	case player.Beats(computer):
		return Win
	default:
		return Lose
	}
}

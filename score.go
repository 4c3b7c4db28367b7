package main

// Score computes the hint shown for guess when the secret is answer.
//
// Greens are exact matches. Then each remaining answer item, in slot order,
// turns the leftmost unused guess slot holding the same item yellow. Empty
// slots never score.
func Score(answer, guess Craft) Hint {
	if answer == guess {
		return AllGreen
	}

	var hint Hint
	var usedAnswer, usedGuess [9]bool

	for i := range answer {
		if answer[i] == guess[i] && answer[i] != Empty {
			hint[i] = Green
			usedAnswer[i] = true
			usedGuess[i] = true
		}
	}

	for i, item := range answer {
		if usedAnswer[i] || item == Empty {
			continue
		}
		for j, g := range guess {
			if !usedGuess[j] && g == item {
				hint[j] = Yellow
				usedGuess[j] = true
				break
			}
		}
	}

	return hint
}

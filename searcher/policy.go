package searcher

import "math"

// Hyperparameters for MCTS

const CSquared = 2.0 // Exploration constant

const Win = 1.0        // Reward for winning outcome
const Loss = 0.0       // Reward for loss outcome, also the temporary loss of a pending visit
const Draw = Win / 2.0 // Reward for a drawn outcome

func ucb1(rewards float64, visits int, c2LnN float64) float64 {
	// Prioritize unexplored nodes
	if visits == 0 {
		return math.Inf(1)
	}

	return rewards/float64(visits) + math.Sqrt(c2LnN/float64(visits))
}

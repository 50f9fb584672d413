package tournament

import (
	"checkers/engine"
	"checkers/game"
)

// BotStat is the win/loss/draw record of one participant split by colour.
type BotStat struct {
	Name        string
	WhiteWins   int
	WhiteLosses int
	BlackWins   int
	BlackLosses int
	WhiteDraws  int
	BlackDraws  int
}

// Games is the number of games the participant took part in.
func (s BotStat) Games() int {
	return s.WhiteWins + s.WhiteLosses + s.BlackWins + s.BlackLosses + s.WhiteDraws + s.BlackDraws
}

// Stats tallies results per participant. Every name in keys gets an entry even without
// games; names only found in results follow in order of appearance.
func Stats(results []engine.GameResult, keys []string) []BotStat {
	stats := make([]BotStat, 0, len(keys))
	index := make(map[string]int, len(keys))
	entry := func(name string) *BotStat {
		i, ok := index[name]
		if !ok {
			i = len(stats)
			index[name] = i
			stats = append(stats, BotStat{Name: name})
		}
		return &stats[i]
	}
	for _, key := range keys {
		entry(key)
	}

	for _, r := range results {
		if r.Result == engine.ResultDraw {
			entry(r.White.Name).WhiteDraws++
			entry(r.Black.Name).BlackDraws++
			continue
		}

		winner, loser := r.WinnerLoser()
		if winner.Colour == game.White {
			entry(winner.Name).WhiteWins++
		} else {
			entry(winner.Name).BlackWins++
		}
		if loser.Colour == game.White {
			entry(loser.Name).WhiteLosses++
		} else {
			entry(loser.Name).BlackLosses++
		}
	}
	return stats
}

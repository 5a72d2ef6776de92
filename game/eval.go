package game

// Indices into Weights.
const (
	CoinParity = iota
	Mobility
	Corners
	Stability
	Positional
	Random
	Frontier
	NumWeights
)

// Weights scales each evaluation term. A term whose weight is below its activation
// threshold is not computed and contributes nothing.
type Weights [NumWeights]float64

// Activation thresholds, per term.
const (
	coinParityThreshold = 0.2
	mobilityThreshold   = 0.2
	cornersThreshold    = 0.2
	stabilityThreshold  = 0.2
	positionalThreshold = 0.1
	randomThreshold     = 0.1
	frontierThreshold   = 0.1
)

// StochasticSentinel as the random weight makes a bot pick uniformly among its moves.
const StochasticSentinel = 1.0

// positionValues is the fine grained positional table used by the positional term.
var positionValues = [BoardSize][BoardSize]float64{
	{1.00, 0.20, 0.70, 0.60, 0.60, 0.70, 0.20, 1.00},
	{0.20, 0.10, 0.55, 0.50, 0.50, 0.55, 0.10, 0.20},
	{0.70, 0.55, 0.60, 0.55, 0.55, 0.60, 0.55, 0.70},
	{0.60, 0.50, 0.55, 0.50, 0.50, 0.55, 0.50, 0.60},
	{0.60, 0.50, 0.55, 0.50, 0.50, 0.55, 0.50, 0.60},
	{0.70, 0.55, 0.60, 0.55, 0.55, 0.60, 0.55, 0.70},
	{0.20, 0.10, 0.55, 0.50, 0.50, 0.55, 0.10, 0.20},
	{1.00, 0.20, 0.70, 0.60, 0.60, 0.70, 0.20, 1.00},
}

// stabilityValues biases towards corners and away from the cells next to them.
var stabilityValues = [BoardSize][BoardSize]float64{
	{100, -15, 55, 40, 40, 55, -15, 100},
	{-15, -35, -20, 5, 5, -20, -35, -15},
	{55, -20, 10, 10, 10, 10, -20, 55},
	{40, 5, 10, -15, -15, 10, 5, 40},
	{40, 5, 10, -15, -15, 10, 5, 40},
	{55, -20, 10, 10, 10, 10, -20, 55},
	{-15, -35, -20, 5, 5, -20, -35, -15},
	{100, -15, 55, 40, 40, 55, -15, 100},
}

// Evaluate scores board b from player's perspective as the weighted sum of all terms.
func Evaluate(b *Board, player Color, w Weights, noise Noise) float64 {
	return w[CoinParity]*coinParity(b, player, w) +
		w[Mobility]*mobility(b, player, w) +
		w[Corners]*corners(b, player, w) +
		w[Stability]*stability(b, player, w) +
		w[Positional]*positional(b, player, w) +
		w[Random]*randomTerm(noise, w) +
		w[Frontier]*frontier(b, player, w)
}

func coinParity(b *Board, player Color, w Weights) float64 {
	if w[CoinParity] < coinParityThreshold {
		return 0
	}
	own, opp := b.Count(player), b.Count(player.Opponent())
	if own+opp == 0 {
		return 0
	}
	return 100 * float64(own-opp) / float64(own+opp)
}

func mobility(b *Board, player Color, w Weights) float64 {
	if w[Mobility] < mobilityThreshold {
		return 0
	}
	return 100 * float64(len(b.ValidMoves(player))) / (BoardSize * BoardSize)
}

func corners(b *Board, player Color, w Weights) float64 {
	if w[Corners] < cornersThreshold {
		return 0
	}
	score := 0.0
	last := BoardSize - 1
	for _, cell := range [4]Color{b[0][0], b[0][last], b[last][0], b[last][last]} {
		if cell == player {
			score += 25
		}
	}
	return score
}

func stability(b *Board, player Color, w Weights) float64 {
	if w[Stability] < stabilityThreshold {
		return 0
	}
	own, opp := 0.0, 0.0
	for row := range b {
		for col, cell := range b[row] {
			switch cell {
			case player:
				own += stabilityValues[row][col]
			case player.Opponent():
				opp += stabilityValues[row][col]
			}
		}
	}
	return (own - opp) / 10
}

func positional(b *Board, player Color, w Weights) float64 {
	if w[Positional] < positionalThreshold {
		return 0
	}
	total := 0.0
	for row := range b {
		for col, cell := range b[row] {
			if cell == player {
				total += positionValues[row][col]
			}
		}
	}
	return total / 100
}

func randomTerm(noise Noise, w Weights) float64 {
	if w[Random] < randomThreshold || noise == nil {
		return 0
	}
	return noise.Float64() * 100
}

func frontier(b *Board, player Color, w Weights) float64 {
	if w[Frontier] < frontierThreshold {
		return 0
	}
	count := 0
	for row := range b {
		for col, cell := range b[row] {
			if cell == player && b.hasEmptyNeighbour(row, col) {
				count++
			}
		}
	}
	return float64(count * 2)
}

// meta/meta.go
package meta

import "time"

// POPULATION_SIZE defines the number of individuals per generation.
const POPULATION_SIZE = 50

// GAMES_PER_MATCH defines the number of games two individuals play against each other.
const GAMES_PER_MATCH = 10

// MUTATION_RATE defines the probability that a single gene mutates.
const MUTATION_RATE = 0.1

// MUTATION_RANGE defines the largest change a weight mutation applies.
const MUTATION_RANGE = 0.2

const GENERATIONS = 100

// TIME_BUDGET defines the thinking time each bot gets per match.
const TIME_BUDGET = 180 * time.Second

// MIN_DEPTH and MAX_DEPTH bound the search depth of evolved bots.
const MIN_DEPTH = 1
const MAX_DEPTH = 8

// STABILITY_DEPTH_CAP limits the initial depth of bots that weigh stability, which is slow to evaluate.
const STABILITY_DEPTH_CAP = 5

const ELITE_COUNT = 3

const TOURNAMENT_SIZE = 3

const CHECKPOINT_PATH = "training_progress.json"

const CHECKPOINT_EVERY = 1

const SEED = 1

// WORKERS defines the number of matches played at the same time.
const WORKERS = 1

const LOG_LEVEL = "info"

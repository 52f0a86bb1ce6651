package searcher

// Hyperparameters for the game tree

const DefaultHeight = 4 // Plies expanded below the root

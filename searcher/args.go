package searcher

// Hyperparameters for the tree searches

const Exploration = 1.41 // UCB exploration constant c

const RaveBias = 300.0 // k in the RAVE weight k/(n+k)

// Guards every division by a visit count that may still be zero
const Epsilon = 1e-9

package game

// InactivityLimit is the number of plies without a capture or promotion after which a game
// is drawn: 40 moves for each side.
const InactivityLimit = 40 * 2

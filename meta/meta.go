// meta/meta.go
package meta

// Rows and Cols define the default grid, five rows of six cells.
const Rows = 5
const Cols = 6

// TreeHeight defines the default search depth in plies.
const TreeHeight = 4

// MinTreeHeight and MaxTreeHeight bound the interactive search depth.
const MinTreeHeight = 2
const MaxTreeHeight = 6

// MaxTurns caps the number of placements in a single game.
const MaxTurns = 300

// Games defines the number of games per experiment matchup.
const Games = 10

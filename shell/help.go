package shell

import (
	"io"

	"github.com/chzyer/readline"
)

const helpText = `Commands:
  show           print the board and the player to move
  move <r> <c>   place a piece at row r, column c (0-based), the AI replies
  ai             let the AI play the current move
  height <n>     set the AI search height (2 to 6)
  new            start a new game
  help           print this text
  quit           leave the shell
`

var completer = readline.NewPrefixCompleter(
	readline.PcItem("show"),
	readline.PcItem("move"),
	readline.PcItem("ai"),
	readline.PcItem("height"),
	readline.PcItem("new"),
	readline.PcItem("help"),
	readline.PcItem("quit"),
)

func usage(w io.Writer) {
	io.WriteString(w, helpText)
}

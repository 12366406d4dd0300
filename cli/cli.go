// Package cli provides the interactive console session: a thin text protocol
// over the rules engine for driving games, browsing the move list and editing
// positions by hand.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/woodpusher/arbiter/bench"
	"github.com/woodpusher/arbiter/board"
	"github.com/woodpusher/arbiter/fen"
	"github.com/woodpusher/arbiter/position"
)

const maxPerftDepth = 7

type Interface struct {
	board *board.Board
	out   io.Writer
}

func NewInterface() *Interface {
	return &Interface{
		board: board.NewBoard(),
		out:   os.Stdout,
	}
}

func (i *Interface) Run() error {
	reader := bufio.NewReader(os.Stdin)
	i.println("arbiter console, 'help' lists commands")
	for {
		cmd, err := reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		cmd = strings.TrimSpace(cmd)
		if cmd == "" {
			continue
		}

		switch args := strings.Split(cmd, " "); args[0] {
		case "help":
			i.commandHelp()
		case "new":
			i.commandNew()
		case "fen":
			i.commandFEN(args[1:])
		case "move":
			i.commandMove(args[1:])
		case "undo":
			i.commandUndo()
		case "moves":
			i.commandMoves(args[1:])
		case "list":
			i.commandList()
		case "browse":
			i.commandBrowse(args[1:])
		case "setup":
			i.commandSetup(args[1:])
		case "put":
			i.commandPut(args[1:])
		case "clear":
			i.commandClear(args[1:])
		case "d":
			i.commandDraw()
		case "state":
			i.commandState()
		case "perft":
			i.commandPerft(args[1:])
		case "quit":
			return nil
		default:
			i.println("unknown command:", args[0])
		}
	}
}

func (i *Interface) commandHelp() {
	i.println("new                      start a fresh game")
	i.println("fen [FEN]                print or load a position")
	i.println("move <uci>               play a move, e.g. e2e4 or e7e8q")
	i.println("undo                     take back the latest move")
	i.println("moves [square]           list legal moves")
	i.println("list                     print the move list")
	i.println("browse first|prev|next|last")
	i.println("setup on|off             toggle free-edit mode")
	i.println("put <piece> <square>     place a piece in setup mode, e.g. put N f3")
	i.println("clear <square>           remove a piece in setup mode")
	i.println("d                        draw the board")
	i.println("state                    report the game state")
	i.println("perft <depth>            count the legal-move tree")
	i.println("quit")
}

func (i *Interface) commandNew() {
	i.board.LoadPosition(board.StartingPosition())
	i.commandDraw()
}

func (i *Interface) commandFEN(args []string) {
	if len(args) == 0 {
		i.println(fen.Format(i.board.Snapshot()))
		return
	}
	snap, err := fen.Parse(strings.Join(args, " "))
	if err != nil {
		i.println(err)
		return
	}
	i.board.LoadPosition(snap)
	i.commandDraw()
}

func (i *Interface) commandMove(args []string) {
	if len(args) != 1 {
		i.println("usage: move <uci>")
		return
	}
	from, to, promotion, err := parseMove(args[0])
	if err != nil {
		i.println(err)
		return
	}
	state, err := i.board.MakePlayerMove(from, to, promotion)
	if err != nil {
		i.println(err)
		return
	}
	last := i.board.MoveList().Move(i.board.MoveList().Len() - 1)
	i.println(last.Algebra(), "=>", state)
	i.commandDraw()
}

func (i *Interface) commandUndo() {
	if err := i.board.UndoPlayerMove(); err != nil {
		i.println(err)
		return
	}
	i.commandDraw()
}

func (i *Interface) commandMoves(args []string) {
	var mvs []board.Move
	switch len(args) {
	case 0:
		mvs = i.board.LegalMoves(i.board.Turn())
	case 1:
		sq, err := position.NewSquareFromNotation(args[0])
		if err != nil {
			i.println(err)
			return
		}
		p := i.board.PieceAt(sq)
		if p == board.PieceNone {
			i.println("no piece on", sq)
			return
		}
		mvs = i.board.FindLegalMoves(p, sq)
	default:
		i.println("usage: moves [square]")
		return
	}
	for n, mv := range mvs {
		i.println(fmt.Sprintf("option %*d: [%s] [%s] %s %s => %s (cap=%v) (enp=%v) (cas=%s) (pro=%s)",
			len(strconv.Itoa(len(mvs))), n+1, mv.UCI(), mv.Algebra(),
			mv.Piece, mv.From, mv.To, mv.IsCapture, mv.IsEnPassant, mv.Castle, mv.Promotion))
	}
}

func (i *Interface) commandList() {
	l := i.board.MoveList()
	if l.Len() == 0 {
		i.println("no moves played")
		return
	}
	rows := make([][2]string, l.TotalMoves())
	for n := 0; n < l.Len(); n++ {
		entry := l.Move(n).Algebra()
		if n == l.Current() {
			entry += " *"
		}
		rows[l.RowOf(n)][l.ColumnOf(n)] = entry
	}
	for r, row := range rows {
		i.println(fmt.Sprintf("%3d. %-10s %-10s", r+1, row[0], row[1]))
	}
}

func (i *Interface) commandBrowse(args []string) {
	if len(args) != 1 {
		i.println("usage: browse first|prev|next|last")
		return
	}
	var t board.BrowseType
	switch args[0] {
	case "first":
		t = board.BrowseFirst
	case "prev":
		t = board.BrowsePrevious
	case "next":
		t = board.BrowseNext
	case "last":
		t = board.BrowseLast
	default:
		i.println("unknown browse target:", args[0])
		return
	}
	if err := i.board.BrowseMoveList(t); err != nil {
		i.println(err)
		return
	}
	i.commandDraw()
}

func (i *Interface) commandSetup(args []string) {
	if len(args) != 1 || (args[0] != "on" && args[0] != "off") {
		i.println("usage: setup on|off")
		return
	}
	i.board.SetSetupMode(args[0] == "on")
	i.println("setup mode:", i.board.IsSetupMode())
}

func (i *Interface) commandPut(args []string) {
	if len(args) != 2 || len(args[0]) != 1 {
		i.println("usage: put <piece> <square>")
		return
	}
	p := fen.PieceFromSymbol(rune(args[0][0]))
	if p == board.PieceNone {
		i.println("unknown piece:", args[0])
		return
	}
	sq, err := position.NewSquareFromNotation(args[1])
	if err != nil {
		i.println(err)
		return
	}
	if err := i.board.SetPieceInSetupMode(p, sq); err != nil {
		i.println(err)
		return
	}
	i.commandDraw()
}

func (i *Interface) commandClear(args []string) {
	if len(args) != 1 {
		i.println("usage: clear <square>")
		return
	}
	sq, err := position.NewSquareFromNotation(args[0])
	if err != nil {
		i.println(err)
		return
	}
	if err := i.board.RemovePieceInSetupMode(sq); err != nil {
		i.println(err)
		return
	}
	i.commandDraw()
}

func (i *Interface) commandDraw() {
	i.println("to move:", i.board.Turn())
	i.println(Draw(i.board))
}

func (i *Interface) commandState() {
	i.println(i.board.CheckGameState(i.board.Turn()))
}

func (i *Interface) commandPerft(args []string) {
	if len(args) != 1 {
		i.println("usage: perft <depth>")
		return
	}
	depth, err := strconv.Atoi(args[0])
	if err != nil || depth < 1 || depth > maxPerftDepth {
		i.println("depth must be between 1 and", maxPerftDepth)
		return
	}

	out := make(chan string)
	done := make(chan error, 1)
	go func() {
		done <- bench.Perft(depth, fen.Format(i.board.Snapshot()), true, true, out)
		close(out)
	}()
	for line := range out {
		i.println(line)
	}
	if err := <-done; err != nil {
		i.println(err)
	}
}

func (i *Interface) println(a ...any) {
	_, _ = fmt.Fprintln(i.out, a...)
}

// parseMove decodes long algebraic notation: four squares characters plus an
// optional promotion letter.
func parseMove(s string) (from, to position.Square, promotion board.PieceType, err error) {
	if len(s) != 4 && len(s) != 5 {
		return position.NoSquare, position.NoSquare, board.PieceTypeUnknown,
			fmt.Errorf("malformed move %q", s)
	}
	from, err = position.NewSquareFromNotation(s[:2])
	if err != nil {
		return position.NoSquare, position.NoSquare, board.PieceTypeUnknown, err
	}
	to, err = position.NewSquareFromNotation(s[2:4])
	if err != nil {
		return position.NoSquare, position.NoSquare, board.PieceTypeUnknown, err
	}
	if len(s) == 5 {
		switch s[4] {
		case 'q':
			promotion = board.PieceTypeQueen
		case 'r':
			promotion = board.PieceTypeRook
		case 'b':
			promotion = board.PieceTypeBishop
		case 'n':
			promotion = board.PieceTypeKnight
		default:
			return position.NoSquare, position.NoSquare, board.PieceTypeUnknown,
				fmt.Errorf("unknown promotion %q", s[4])
		}
	}
	return from, to, promotion, nil
}

// Package robot simulates the robot-commands coding game on a small grid.
package robot

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrTooManyMoves is returned when a program exceeds the level's move budget.
	ErrTooManyMoves = errors.New("too many moves")
	// ErrUnknownCommand is returned for a command letter outside U, D, L, R.
	ErrUnknownCommand = errors.New("unknown command")
)

// Cell is the content of one grid square.
type Cell int

// Grid cells.
const (
	Empty Cell = iota
	Goal
	Obstacle
)

// Command moves the robot one square.
type Command byte

// Commands.
const (
	Up    Command = 'U'
	Down  Command = 'D'
	Left  Command = 'L'
	Right Command = 'R'
)

func (c Command) String() string {
	switch c {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "?"
}

// Pos is a grid coordinate.
type Pos struct {
	Row int
	Col int
}

// Level is one puzzle.
type Level struct {
	ID       int
	Grid     [][]Cell
	Start    Pos
	Goal     Pos
	MaxMoves int
}

// Rows returns the grid height.
func (l Level) Rows() int { return len(l.Grid) }

// Cols returns the grid width.
func (l Level) Cols() int {
	if len(l.Grid) == 0 {
		return 0
	}
	return len(l.Grid[0])
}

func (l Level) blocked(p Pos) bool {
	return l.Grid[p.Row][p.Col] == Obstacle
}

var levels = []Level{
	{
		ID: 1,
		Grid: [][]Cell{
			{Empty, Empty, Goal},
			{Empty, Empty, Empty},
			{Empty, Empty, Empty},
		},
		Start:    Pos{0, 0},
		Goal:     Pos{0, 2},
		MaxMoves: 3,
	},
	{
		ID: 2,
		Grid: [][]Cell{
			{Empty, Empty, Empty},
			{Empty, Obstacle, Empty},
			{Empty, Empty, Goal},
		},
		Start:    Pos{0, 0},
		Goal:     Pos{2, 2},
		MaxMoves: 5,
	},
	{
		ID: 3,
		Grid: [][]Cell{
			{Empty, Empty, Obstacle, Empty},
			{Empty, Obstacle, Empty, Empty},
			{Empty, Empty, Empty, Obstacle},
			{Empty, Empty, Empty, Goal},
		},
		Start:    Pos{0, 0},
		Goal:     Pos{3, 3},
		MaxMoves: 8,
	},
}

// Levels returns copies of the built-in levels in play order.
func Levels() []Level {
	out := make([]Level, len(levels))
	for i, l := range levels {
		out[i] = l.clone()
	}
	return out
}

// LevelByID returns a copy of the level with the given 1-based id.
func LevelByID(id int) (Level, error) {
	if id < 1 || id > len(levels) {
		return Level{}, fmt.Errorf("level %d does not exist (1-%d)", id, len(levels))
	}
	return levels[id-1].clone(), nil
}

func (l Level) clone() Level {
	grid := make([][]Cell, len(l.Grid))
	for r, row := range l.Grid {
		grid[r] = append([]Cell(nil), row...)
	}
	l.Grid = grid
	return l
}

// ParseCommands reads a program such as "RRD" or "r, r, d".
// Whitespace and commas are ignored.
func ParseCommands(s string) ([]Command, error) {
	var cmds []Command
	for _, r := range strings.ToUpper(s) {
		switch r {
		case ' ', '\t', '\n', ',':
			continue
		case 'U', 'D', 'L', 'R':
			cmds = append(cmds, Command(r))
		default:
			return nil, fmt.Errorf("%w %q", ErrUnknownCommand, r)
		}
	}
	return cmds, nil
}

// Result describes one run of a program.
type Result struct {
	Path    []Pos
	Final   Pos
	Reached bool
	Bumps   int
}

// Run executes cmds on level. Moves off the grid are clamped to the edge and
// moves into an obstacle leave the robot in place. Path starts with the start
// square and has one entry per command.
func Run(level Level, cmds []Command) (Result, error) {
	if len(cmds) > level.MaxMoves {
		return Result{}, fmt.Errorf("%w: %d commands, level %d allows %d", ErrTooManyMoves, len(cmds), level.ID, level.MaxMoves)
	}
	pos := level.Start
	res := Result{Path: make([]Pos, 0, len(cmds)+1)}
	res.Path = append(res.Path, pos)
	for _, c := range cmds {
		next := pos
		switch c {
		case Up:
			next.Row = max(0, pos.Row-1)
		case Down:
			next.Row = min(level.Rows()-1, pos.Row+1)
		case Left:
			next.Col = max(0, pos.Col-1)
		case Right:
			next.Col = min(level.Cols()-1, pos.Col+1)
		default:
			return Result{}, fmt.Errorf("%w %q", ErrUnknownCommand, rune(c))
		}
		if level.blocked(next) {
			res.Bumps++
		} else {
			pos = next
		}
		res.Path = append(res.Path, pos)
	}
	res.Final = pos
	res.Reached = pos == level.Goal
	return res, nil
}

// Render draws the grid with the robot at pos.
func Render(level Level, pos Pos) string {
	var b strings.Builder
	for r, row := range level.Grid {
		for c, cell := range row {
			if c > 0 {
				b.WriteByte(' ')
			}
			switch {
			case pos == (Pos{Row: r, Col: c}):
				b.WriteString("R")
			case cell == Goal:
				b.WriteString("G")
			case cell == Obstacle:
				b.WriteString("#")
			default:
				b.WriteString(".")
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

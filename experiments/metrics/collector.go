package metrics

import (
	"sync/atomic"
	"time"

	"chainreaction/game"
)

type SearchMetric struct {
	Height   int
	Duration time.Duration
	Nodes    int // Nodes built, root included
	Leaves   int // Nodes scored by the evaluation function
}

type MoveMetric struct {
	Step          int
	Player        game.Player
	Move          game.Move
	BoardHash     game.BoardHash // Board after the move settled
	CascadeRounds int
	SearchMetric
}

type GameMetric struct {
	StartingPlayer game.Player
	Winner         game.Player // NoPlayer for a draw
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
	Forfeit        bool // Winner won because the opponent played an illegal move
}

type Collector interface {
	Start(height int)
	AddNode()
	AddLeaf()
	Complete() SearchMetric
}

type collector struct {
	height    int
	startTime time.Time
	nodes     atomic.Int32
	leaves    atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(height int) {
	m.startTime = time.Now()
	m.height = height
	m.nodes.Store(0)
	m.leaves.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddLeaf() {
	m.leaves.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Height:   m.height,
		Duration: time.Since(m.startTime),
		Nodes:    int(m.nodes.Load()),
		Leaves:   int(m.leaves.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(height int)       {}
func (m *dummyCollector) AddNode()               {}
func (m *dummyCollector) AddLeaf()               {}
func (m *dummyCollector) Complete() SearchMetric { return SearchMetric{} }

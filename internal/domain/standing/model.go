package standing

// Entrant is the minimal competitor view the table needs.
type Entrant struct {
	ID     string
	Name   string
	TeamID string
}

// Row is one line of the league table. Points = 3*Won + Drawn and
// GoalDifference = GoalsFor - GoalsAgainst always hold.
type Row struct {
	Position       int
	CompetitorID   string
	Name           string
	TeamID         string
	Played         int
	Won            int
	Drawn          int
	Lost           int
	GoalsFor       int
	GoalsAgainst   int
	GoalDifference int
	Points         int
}

const (
	PointsWin  = 3
	PointsDraw = 1
)

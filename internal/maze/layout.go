package maze

// Tile addresses one grid cell.
type Tile struct {
	Col, Row int
}

// Spawn markers recognized in layout rows. Both read as open floor.
const (
	PlayerMarker = 'P'
	GhostMarker  = 'G'
)

// Spawns used when a layout carries no markers.
var (
	DefaultPlayerSpawn = Tile{Col: 13, Row: 23}
	DefaultGhostSpawns = []Tile{{Col: 13, Row: 11}, {Col: 14, Row: 11}, {Col: 12, Row: 11}, {Col: 15, Row: 11}}
)

// Layout is the level input for a session: grid rows plus spawn tiles.
type Layout struct {
	Rows   []string
	Player Tile
	Ghosts []Tile
}

// ParseLayout reads spawn markers from rows. The first 'P' is the player
// spawn; every 'G' adds a ghost in row-major order. Without markers the
// default spawns apply.
func ParseLayout(rows []string) Layout {
	l := Layout{Rows: rows}

	playerFound := false
	for y, row := range rows {
		x := 0
		for _, r := range row {
			switch r {
			case PlayerMarker:
				if !playerFound {
					l.Player = Tile{Col: x, Row: y}
					playerFound = true
				}
			case GhostMarker:
				l.Ghosts = append(l.Ghosts, Tile{Col: x, Row: y})
			}
			x++
		}
	}

	if !playerFound {
		l.Player = DefaultPlayerSpawn
	}
	if len(l.Ghosts) == 0 {
		l.Ghosts = append([]Tile(nil), DefaultGhostSpawns...)
	}
	return l
}

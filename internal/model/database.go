package model

// Database holds connection details for a personal database. WorkloadID is
// nil when the database exists but is not linked to any workload.
type Database struct {
	ID           int    `json:"id"`
	Host         string `json:"host"`
	Port         int    `json:"port"`
	DatabaseName string `json:"database_name"`
	Username     string `json:"username"`
	Password     string `json:"password"`
	WorkloadID   *int   `json:"project_id,omitempty"`
}

// Linked reports whether the database is associated with a workload.
func (d *Database) Linked() bool {
	return d != nil && d.WorkloadID != nil
}

// LinkState is the database-linkage state for a workload, evaluated fresh
// from the current aggregate on every render.
type LinkState int

const (
	// LinkNone: no database linked and no personal database available.
	LinkNone LinkState = iota
	// LinkPersonalUnlinked: the caller owns a database not linked anywhere.
	LinkPersonalUnlinked
	// LinkLinked: a database is linked to this workload.
	LinkLinked
)

func (s LinkState) String() string {
	switch s {
	case LinkLinked:
		return "linked"
	case LinkPersonalUnlinked:
		return "personal-unlinked"
	default:
		return "none"
	}
}

// EvalLinkState derives the linkage state from the workload aggregate and
// the caller's personal database. A linked database on the workload wins;
// otherwise an unlinked personal database can be offered for linking.
func EvalLinkState(details *WorkloadDetails, personal *Database) LinkState {
	if details != nil && details.Database != nil {
		return LinkLinked
	}
	if personal != nil && personal.WorkloadID == nil {
		return LinkPersonalUnlinked
	}
	return LinkNone
}

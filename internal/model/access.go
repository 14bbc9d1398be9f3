package model

// Capabilities are the two booleans gating which controls a caller sees.
// They are derived per render from the current aggregate and never cached.
type Capabilities struct {
	// Strong: owner or superuser. Gates participant management, database
	// mutation and workload deletion.
	Strong bool
	// Weak: strong access or listed participant. Gates start/stop/restart,
	// environment edits and image updates.
	Weak bool
}

// ComputeCapabilities derives the capability set for a caller.
func ComputeCapabilities(login string, admin bool, owner string, participants []string) Capabilities {
	strong := admin || (login != "" && login == owner)
	weak := strong
	if !weak && login != "" {
		for _, p := range participants {
			if p == login {
				weak = true
				break
			}
		}
	}
	return Capabilities{Strong: strong, Weak: weak}
}

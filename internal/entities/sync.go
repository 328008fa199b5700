// Package entities contains core business entities.
package entities

import "time"

// SyncStatus describes whether a default organization is configured.
type SyncStatus struct {
	Configured   bool
	Organization string
}

// SyncSummary reports the outcome of one organization import.
type SyncSummary struct {
	Organization    string
	TeamsImported   int
	MembersImported int
}

// ImportedTeam is a remote team with its members, ready to be reconciled.
type ImportedTeam struct {
	Name        string
	Description string
	ImportedAt  time.Time
	Members     []Member
}

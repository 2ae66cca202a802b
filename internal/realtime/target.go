package realtime

import (
	"fmt"

	"alertstream/internal/domain/entity"
)

// Target selects the connections an alert is pushed to.
type Target interface {
	resolve(registry *Registry) []*Connection
	fmt.Stringer
}

type allConnected struct{}

// ToAllConnected targets every currently open connection.
func ToAllConnected() Target {
	return allConnected{}
}

func (allConnected) resolve(registry *Registry) []*Connection {
	return registry.AllConnections()
}

func (allConnected) String() string {
	return "all_connected"
}

type explicitSet struct {
	userIDs []string
}

// ToExplicitSet targets the open connections of the given users.
func ToExplicitSet(userIDs ...string) Target {
	return explicitSet{userIDs: userIDs}
}

func (t explicitSet) resolve(registry *Registry) []*Connection {
	if len(t.userIDs) == 0 {
		return nil
	}

	return registry.connectionsForUsers(t.userIDs)
}

func (t explicitSet) String() string {
	return fmt.Sprintf("explicit_set(%d)", len(t.userIDs))
}

type allKnownUsers struct {
	roster []string
}

// ToAllKnownUsers targets the open connections of every user in roster. Connections
// of users missing from the roster receive nothing.
func ToAllKnownUsers(roster []string) Target {
	return allKnownUsers{roster: roster}
}

func (t allKnownUsers) resolve(registry *Registry) []*Connection {
	if len(t.roster) == 0 {
		return nil
	}

	return registry.connectionsForUsers(t.roster)
}

func (t allKnownUsers) String() string {
	return fmt.Sprintf("all_known_users(%d)", len(t.roster))
}

// TargetFor derives the target of an alert from its recipients.
func TargetFor(alert *entity.Alert) Target {
	if alert.Recipients.Broadcast {
		return ToAllConnected()
	}

	return ToExplicitSet(alert.Recipients.UserIDs...)
}

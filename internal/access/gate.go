// Package access decides whether an authenticated identity may perform an
// operation on a resource. Decisions come from a fixed role policy table
// evaluated with casbin; the gate keeps no per-request state.
package access

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"github.com/google/uuid"

	"github.com/heartmarshall/tripnarrator/internal/domain"
)

//go:embed model.conf
var embeddedModel string

//go:embed policy.csv
var embeddedPolicy string

// Resource is the kind of aggregate an operation targets.
type Resource string

const (
	ResourceTrip     Resource = "trip"
	ResourceZone     Resource = "zone"
	ResourceRegion   Resource = "region"
	ResourceFeedback Resource = "feedback"
	ResourceProfile  Resource = "profile"
	ResourceUsers    Resource = "users"
)

// Action is what the caller wants to do with the resource.
type Action string

const (
	ActionCreate    Action = "create"
	ActionRead      Action = "read"
	ActionSearch    Action = "search"
	ActionUpdate    Action = "update"
	ActionDelete    Action = "delete"
	ActionVerbalize Action = "verbalize"
	ActionManage    Action = "manage"
)

// Operation pairs a resource with an action.
type Operation struct {
	Resource Resource
	Action   Action
}

func (o Operation) String() string {
	return string(o.Resource) + ":" + string(o.Action)
}

const (
	scopeOwn = "own"
	scopeAny = "any"
)

// Gate evaluates the role policy table.
type Gate struct {
	enforcer *casbin.SyncedEnforcer
}

// NewGate builds a Gate from the embedded model and policy.
func NewGate() (*Gate, error) {
	m, err := model.NewModelFromString(embeddedModel)
	if err != nil {
		return nil, fmt.Errorf("access: load model: %w", err)
	}

	enforcer, err := casbin.NewSyncedEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("access: create enforcer: %w", err)
	}
	if err := loadPolicy(enforcer, embeddedPolicy); err != nil {
		return nil, fmt.Errorf("access: %w", err)
	}

	return &Gate{enforcer: enforcer}, nil
}

// Allow reports whether id may perform op on a resource owned by ownerID.
// Pass the requester's own id as ownerID for resources that have no owner yet.
// Evaluation errors deny.
func (g *Gate) Allow(id Identity, op Operation, ownerID uuid.UUID) bool {
	if !id.Role.IsValid() || id.UserID == uuid.Nil {
		return false
	}

	scope := scopeAny
	if ownerID == id.UserID {
		scope = scopeOwn
	}

	ok, err := g.enforcer.Enforce(id.Role.String(), string(op.Resource), string(op.Action), scope)
	if err != nil {
		return false
	}
	return ok
}

// Check is Allow returning domain.ErrForbidden on deny.
func (g *Gate) Check(id Identity, op Operation, ownerID uuid.UUID) error {
	if !g.Allow(id, op, ownerID) {
		return fmt.Errorf("%s: %w", op, domain.ErrForbidden)
	}
	return nil
}

// loadPolicy parses policy CSV lines of the form "p, sub, obj, act, scope"
// and "g, child, parent".
func loadPolicy(enforcer *casbin.SyncedEnforcer, policy string) error {
	for _, line := range strings.Split(policy, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Split(line, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}

		switch parts[0] {
		case "p":
			if len(parts) != 5 {
				return fmt.Errorf("malformed policy line %q", line)
			}
			if _, err := enforcer.AddPolicy(parts[1], parts[2], parts[3], parts[4]); err != nil {
				return fmt.Errorf("add policy %v: %w", parts[1:], err)
			}
		case "g":
			if len(parts) != 3 {
				return fmt.Errorf("malformed grouping line %q", line)
			}
			if _, err := enforcer.AddGroupingPolicy(parts[1], parts[2]); err != nil {
				return fmt.Errorf("add grouping policy %v: %w", parts[1:], err)
			}
		default:
			return fmt.Errorf("unknown policy type in %q", line)
		}
	}
	return nil
}

package authorization

// Action is an operation an admin may attempt against a record.
type Action string

const (
	ActionView   Action = "view"
	ActionEdit   Action = "edit"
	ActionCreate Action = "create"
	ActionDelete Action = "delete"
)

// CanAct decides whether an actor of the given rank may perform action
// against a target record of the given rank. target is nil when the
// action has no target record yet (plain create) or the record carries
// no rank. Unknown ranks and actions are always denied.
//
// Rules:
//   - SuperAdmin overrides every comparison.
//   - view/edit of a ranked target requires level(actor) >= level(target).
//   - create/delete of helpers requires Manager or above; a Manager may
//     never create a SuperAdmin-ranked helper (hard carve-out).
func CanAct(actor Rank, action Action, target *Rank) bool {
	if !actor.IsValid() {
		return false
	}
	if actor.IsSuperAdmin() {
		return true
	}

	switch action {
	case ActionView, ActionEdit:
		if target == nil {
			return true
		}
		return actor.AtLeast(*target)
	case ActionCreate, ActionDelete:
		if !actor.AtLeast(RankManager) {
			return false
		}
		// The level comparison alone cannot express this: a Manager
		// passes the Manager-or-above gate but must not mint SuperAdmins.
		if action == ActionCreate && target != nil && *target == RankSuperAdmin {
			return false
		}
		if target != nil && !actor.AtLeast(*target) {
			return false
		}
		return true
	}
	return false
}

// CanAssignRank reports whether the actor may grant newRank to a record.
// An actor can never grant a rank higher than its own.
func CanAssignRank(actor, newRank Rank) bool {
	if !actor.IsValid() || !newRank.IsValid() {
		return false
	}
	if actor.IsSuperAdmin() {
		return true
	}
	return actor.AtLeast(newRank)
}

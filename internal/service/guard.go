package service

// Guard decides whether an authenticated user may mutate a resource.
type Guard struct {
	// LegacyMutable treats resources without a recorded owner (ideas that
	// predate user accounts) as mutable by any authenticated user. Off
	// means such resources are immutable.
	LegacyMutable bool
}

// CanMutate reports whether actorID may update or delete a resource owned
// by ownerID. ownerID is nil for legacy resources.
func (g Guard) CanMutate(actorID int64, ownerID *int64) bool {
	if ownerID == nil {
		return g.LegacyMutable
	}
	return *ownerID == actorID
}

package billiard

import uuid "github.com/satori/go.uuid"

// RunID tags one EvolveBatch run so a caller correlating many parallel runs
// (and their event streams) has a stable handle per run, the way ByteArena's
// collision records carry ColliderID/CollideeID.
type RunID = uuid.UUID

func newRunID() RunID {
	return uuid.NewV4()
}

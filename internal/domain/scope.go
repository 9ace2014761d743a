package domain

// Scope identifies the owning-user partition a repository call operates on.
// Every read is filtered to the scope's rows and every write is stamped with
// it. The zero value is the guest partition, used before sign-in; guest rows
// stay in the guest partition permanently — signing in never re-owns them.
type Scope struct {
	ownerID string
}

// UserScope returns the partition for a signed-in user id.
func UserScope(userID string) Scope { return Scope{ownerID: userID} }

// GuestScope returns the no-user partition.
func GuestScope() Scope { return Scope{} }

// OwnerID is the partition key stored in the owner column. Empty string is
// the guest partition.
func (s Scope) OwnerID() string { return s.ownerID }

func (s Scope) IsGuest() bool { return s.ownerID == "" }

func (s Scope) String() string {
	if s.IsGuest() {
		return "guest"
	}
	return "user:" + s.ownerID
}

package authorization

// Actor identifies the authenticated admin performing a request, as
// resolved by the session middleware.
type Actor struct {
	ID   uint
	Name string
	Rank Rank
}

package entity

// UserProfile is the locally materialized profile document for a signed-in
// traveler. It is created once at registration; after that, only PhotoURL
// is ever rewritten (by the photo replacement flow).
type UserProfile struct {
	ID       string // Identity id from the identity provider; also the document key.
	Email    string
	Username string
	Age      int    // Non-negative.
	PhotoURL string // Empty when the user has no photo.
}

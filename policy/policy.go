// Package policy holds the ownership predicate applied before any detail
// read or mutation of a contact or favorite.
package policy

// Owns reports whether the authenticated user owns the resource. Handlers
// resolve existence first and consult this second, so a missing row never
// leaks ownership information.
func Owns(userID, ownerID uint) bool {
	return userID == ownerID
}

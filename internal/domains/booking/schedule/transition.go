package schedule

// CanTransition reports whether a booking may move from one status to another.
// Bookings start out pending; cancelled is terminal.
func CanTransition(current, next string) bool {
	switch current {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCancelled
	default:
		return false
	}
}

// ValidStatus reports whether s is one of the known booking statuses.
func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusConfirmed || s == StatusCancelled
}

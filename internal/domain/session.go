package domain

import "time"

// SavedSession is a persisted navigation snapshot, used to restore the
// tour after the process is recreated.
type SavedSession struct {
	ID                 string
	Screen             Screen
	Stack              []Screen
	HomeCycleCompleted bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

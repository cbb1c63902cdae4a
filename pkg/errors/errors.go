package errors

import "errors"

// ErrOptimisticLock: the record was modified by another operation since it was read.
var ErrOptimisticLock = errors.New("record was modified by another operation, refresh and retry")

// ErrSlotTaken: another appointment occupies the requested time interval.
// Returned from the booking transaction, never from the advisory availability read.
var ErrSlotTaken = errors.New("time slot is already booked")

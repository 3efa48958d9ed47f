package task

import "time"

// NextID returns a new task id derived from the creation time in Unix
// milliseconds. Ids are strictly increasing: when several tasks are created
// within the same millisecond, or the clock moves backwards, the id is bumped
// past last so it never collides with or reuses a previously issued one.
func NextID(createdAt time.Time, last int64) int64 {
	id := createdAt.UnixMilli()
	if id <= last {
		id = last + 1
	}
	return id
}

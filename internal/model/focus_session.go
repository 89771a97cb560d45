package model

import "time"

// FocusSession is one recorded countdown interval. Rows are written by the
// session recorder on natural completion and by the manual log endpoint.
type FocusSession struct {
	ID              int64     `json:"id"`
	SessionUID      string    `json:"sessionUid"`
	Mode            string    `json:"mode"`
	DurationMinutes int       `json:"durationMinutes"`
	CompletedAt     time.Time `json:"completedAt"`
}

// FocusDay is one bucket of the 7-day analytics rollup.
type FocusDay struct {
	Day     string `json:"day"`
	Minutes int    `json:"minutes"`
}

type Analytics struct {
	TaskCounts map[string]int `json:"taskCounts"`
	FocusByDay []FocusDay     `json:"focusByDay"`
}

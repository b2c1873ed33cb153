// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ScheduleEntry is one row of the course calendar. Dates are free text and
// are rendered exactly as given.
type ScheduleEntry struct {
	// Date is the session date as displayed (e.g. "01/01/2024").
	Date string `json:"date" yaml:"date"`

	// Topic is the subject covered on that date.
	Topic string `json:"topic" yaml:"topic"`
}

// Course holds everything rendered into a syllabus document.
type Course struct {
	// Title is the course name, rendered as the document title.
	Title string `json:"title" yaml:"title"`

	// Description is a short paragraph under the title.
	Description string `json:"description" yaml:"description"`

	// Instructor is the professor's display name.
	Instructor string `json:"instructor" yaml:"instructor"`

	// Topics lists the syllabus topics in display order.
	Topics []string `json:"topics" yaml:"topics"`

	// Schedule lists calendar rows in display order. Order is not checked
	// against the dates.
	Schedule []ScheduleEntry `json:"schedule" yaml:"schedule"`
}

package domain

import "time"

// Report represents a rendered view of the dashboard for the terminal client.
type Report struct {
	Title       string
	GeneratedAt time.Time
	Filters     Filters
	Sections    []ReportSection
}

// ReportSection represents a logical section in the report
type ReportSection struct {
	Title   string
	Summary map[string]string
	Details []ReportDetail
}

// ReportDetail represents detailed information within a section
type ReportDetail struct {
	Name        string
	Value       string
	Unit        string
	Description string
}

// Package domain contains the core data structures and domain logic for the application.
package domain

import "fmt"

// ReportStats holds summary figures for a single generated report.
// It is reported on the command line and never rendered into the document.
type ReportStats struct {
	Items          int     `json:"items"`
	Repositories   int     `json:"repositories"`
	Users          int     `json:"users"`
	MeanPerRepo    float64 `json:"mean_per_repo"`
	MedianPerRepo  float64 `json:"median_per_repo"`
	BusiestRepo    string  `json:"busiest_repo"`
	BusiestRepoPRs int     `json:"busiest_repo_prs"`
}

// String summarizes the report on one line, e.g.
// "5 pull requests in 3 repositories by 2 users (mean 1.67, median 1.00 per repository; busiest a/b with 3)".
func (s ReportStats) String() string {
	if s.Items == 0 {
		return "0 pull requests"
	}
	return fmt.Sprintf("%d pull requests in %d repositories by %d users (mean %.2f, median %.2f per repository; busiest %s with %d)",
		s.Items, s.Repositories, s.Users, s.MeanPerRepo, s.MedianPerRepo, s.BusiestRepo, s.BusiestRepoPRs)
}

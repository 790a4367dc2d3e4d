package domain

// Job identifies one top-level extraction job.
type Job int

const (
	// JobCode extracts the repository file tree content.
	JobCode Job = iota

	// JobIssues extracts issue discussions.
	JobIssues

	// JobWiki extracts wiki pages.
	JobWiki

	// JobReadme extracts the README.
	JobReadme
)

// String returns the job name for diagnostics.
func (j Job) String() string {
	switch j {
	case JobCode:
		return "code"
	case JobIssues:
		return "issues"
	case JobWiki:
		return "wiki"
	case JobReadme:
		return "readme"
	default:
		return "unknown"
	}
}

// ModeFlags are the raw category flags from the command line.
// The *Only flags are mutually constraining: each suppresses the others.
// NoIssues and NoWiki exclude one category while still running the rest,
// and are ignored when a conflicting *Only flag is set.
type ModeFlags struct {
	IssuesOnly bool
	WikiOnly   bool
	CodeOnly   bool
	ReadmeOnly bool
	NoIssues   bool
	NoWiki     bool
}

// Modes is the resolved set of content categories for one run.
type Modes struct {
	Code   bool
	Issues bool
	Wiki   bool
	Readme bool
}

// ResolveModes applies the flag truth table:
// ReadmeOnly selects the README alone; otherwise code runs unless an
// exclusive non-code mode is selected, and issues/wiki run unless excluded
// by a negative flag or a conflicting exclusive flag.
func ResolveModes(f ModeFlags) Modes {
	if f.ReadmeOnly {
		return Modes{Readme: true}
	}
	return Modes{
		Code:   f.CodeOnly || (!f.IssuesOnly && !f.WikiOnly),
		Issues: !f.NoIssues && !f.WikiOnly && !f.CodeOnly,
		Wiki:   !f.NoWiki && !f.IssuesOnly && !f.CodeOnly,
	}
}

// Jobs returns the jobs to dispatch, in fixed section order.
func (m Modes) Jobs() []Job {
	var jobs []Job
	if m.Code {
		jobs = append(jobs, JobCode)
	}
	if m.Issues {
		jobs = append(jobs, JobIssues)
	}
	if m.Wiki {
		jobs = append(jobs, JobWiki)
	}
	if m.Readme {
		jobs = append(jobs, JobReadme)
	}
	return jobs
}

package problem

// ErrProblems is returned when a run reported errors.
type ErrProblems int

func (err ErrProblems) Error() string {
	if err == 1 {
		return f("assembly failed with 1 error")
	}
	return f("assembly failed with %d errors", int(err))
}

package runner

// Call records one invocation made through a Fake.
type Call struct {
	Name string
	Args []string
	Dir  string
}

// Fake is a Runner for tests. It records every invocation and answers with
// canned results instead of spawning processes, so tests never touch the
// host's package managers.
type Fake struct {
	Calls []Call

	// FailOn maps a command name to the error its invocation should return.
	// Commands not present in the map succeed with empty output.
	FailOn map[string]error

	// OnRun, when set, is invoked for every call after it is recorded.
	// Tests use it to simulate side effects such as a downloader creating
	// the destination file.
	OnRun func(c Call) error
}

// Run records the call and returns the configured outcome.
func (f *Fake) Run(name string, args []string, dir string) ([]byte, error) {
	c := Call{Name: name, Args: args, Dir: dir}
	f.Calls = append(f.Calls, c)

	if err, ok := f.FailOn[name]; ok && err != nil {
		return nil, &CommandError{Name: name, Args: args, Err: err}
	}
	if f.OnRun != nil {
		if err := f.OnRun(c); err != nil {
			return nil, &CommandError{Name: name, Args: args, Err: err}
		}
	}
	return nil, nil
}

var _ Runner = (*Fake)(nil)

package relocate

import "fmt"

// Operations recorded in an ItemError.
const (
	OpStat      = "stat"
	OpCopy      = "copy"
	OpChmod     = "chmod"
	OpLink      = "link"
	OpList      = "list"
	OpRemove    = "remove"
	OpRemoveDir = "rmdir"
	OpPersist   = "persist"
)

// ItemError is a failure on a single path that did not stop the phase it
// happened in.
type ItemError struct {
	Path string
	Op   string
	Err  error
}

func (e ItemError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e ItemError) Unwrap() error {
	return e.Err
}

// CopyReport lists what the copier did, by destination path.
type CopyReport struct {
	Copied   []string
	Linked   []string
	Skipped  []string
	Failures []ItemError
}

// MissingFiles returns the failures that left a file absent from the
// destination. Permission fixups on files that were copied are not
// included.
func (r *CopyReport) MissingFiles() []ItemError {
	var missing []ItemError
	for _, f := range r.Failures {
		if f.Op != OpChmod {
			missing = append(missing, f)
		}
	}
	return missing
}

func (r *CopyReport) fail(path, op string, err error) {
	r.Failures = append(r.Failures, ItemError{Path: path, Op: op, Err: err})
}

// MappingReport lists the storage roots whose lookup file was updated.
type MappingReport struct {
	Updated  []string
	Failures []ItemError
}

// CleanupReport lists what the cleaner removed from the old tree and what
// it deliberately left behind.
type CleanupReport struct {
	Removed  []string
	Kept     []string
	Failures []ItemError
}

func (r *CleanupReport) fail(path, op string, err error) {
	r.Failures = append(r.Failures, ItemError{Path: path, Op: op, Err: err})
}

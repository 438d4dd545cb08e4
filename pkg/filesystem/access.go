package filesystem

// AccessFunc reports whether the current user may read, write and traverse
// the directory at path. It returns nil when all three are allowed.
type AccessFunc func(path string) error

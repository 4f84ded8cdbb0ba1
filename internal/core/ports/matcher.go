package ports

// PathMatcher decides whether a path matches a set of globs.
//
//go:generate mockgen -source=matcher.go -destination=mocks/mock_matcher.go -package=mocks
type PathMatcher interface {
	Match(path string) bool
}

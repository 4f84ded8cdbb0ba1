package domain

import "strings"

// GOOSWindows is the runtime.GOOS value of Windows hosts.
const GOOSWindows = "windows"

// AntExecutable returns the build tool command for goos. A configured path wins; on
// Windows a configured path ending in `\ant` is pointed at the batch wrapper.
func AntExecutable(pathToAnt, goos string) string {
	if pathToAnt != "" {
		if goos == GOOSWindows && strings.HasSuffix(pathToAnt, `\ant`) {
			return pathToAnt + ".bat"
		}
		return pathToAnt
	}
	if goos == GOOSWindows {
		return AntBatchCommand
	}
	return AntCommand
}

// AnsiconPath returns the ansicon wrapper to launch. A configured path is used only when
// exists reports it present: a directory gets AnsiconExecutable appended, anything else
// not ending in it as well.
func AnsiconPath(pathToAnsicon string, exists func(string) bool) string {
	if pathToAnsicon == "" || exists == nil || !exists(pathToAnsicon) {
		return AnsiconExecutable
	}

	lower := strings.ToLower(pathToAnsicon)
	switch {
	case strings.HasSuffix(lower, AnsiconExecutable):
		return pathToAnsicon
	case strings.HasSuffix(pathToAnsicon, `\`):
		return pathToAnsicon + AnsiconExecutable
	default:
		return pathToAnsicon + `\` + AnsiconExecutable
	}
}

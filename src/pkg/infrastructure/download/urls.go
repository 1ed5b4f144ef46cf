package download

import "fmt"

const (
	// DefaultLWJGLVersion is the build selector used when no classpath entry
	// advertises a concrete version.
	DefaultLWJGLVersion = "latest"
	// DefaultLWJGLBranch is the build channel artifacts are fetched from.
	DefaultLWJGLBranch = "release"
)

// LWJGLURL returns the canonical build server URL of a repository-relative
// file path. Empty version or branch select the defaults.
func LWJGLURL(filePath, version, branch string) string {
	if version == "" {
		version = DefaultLWJGLVersion
	}
	if branch == "" {
		branch = DefaultLWJGLBranch
	}
	return fmt.Sprintf("https://build.lwjgl.org/%s/%s/%s", branch, version, filePath)
}

// RawGitHubURL returns the raw user content URL of a file in a GitHub
// repository at a given ref.
func RawGitHubURL(user, repo, ref, filePath string) string {
	return fmt.Sprintf("https://raw.githubusercontent.com/%s/%s/%s/%s", user, repo, ref, filePath)
}

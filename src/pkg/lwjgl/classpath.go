package lwjgl

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Masterminds/semver"
	"github.com/pkg/errors"

	"github.com/CoolCat467/fix-lwjgl/src/pkg/infrastructure/download"
	"github.com/CoolCat467/fix-lwjgl/src/pkg/infrastructure/fs"
	"github.com/CoolCat467/fix-lwjgl/src/pkg/infrastructure/platform"
	"github.com/CoolCat467/fix-lwjgl/src/print"
)

// Newest LWJGL 3 version assumed when the classpath advertises nothing newer.
const baselineVersion = "3.3.1"

// GitHub repository holding the legacy LWJGL 2 ARM builds and their
// files.json manifests.
const (
	legacyUser = "CoolCat467"
	legacyRepo = "fix-lwjgl"
	legacyRef  = "HEAD"
)

// Resolver carries the resolution context for one classpath rewrite: the host
// platform, the cache base folder and the download policy. BaseFolder may be
// overridden for the remainder of the run by an explicit
// -Dorg.lwjgl.librarypath flag.
type Resolver struct {
	Platform   platform.Tag
	BaseFolder string
	Client     *download.Client
}

// CacheDir is the cache directory for an LWJGL major version, e.g.
// <base>/lwjgl_3arm64.
func (r *Resolver) CacheDir(version int) string {
	return filepath.Join(r.BaseFolder, fmt.Sprintf("lwjgl_%d%s", version, r.Platform.Arch))
}

// RewriteClasspathV3 rewrites classpath entries so every LWJGL module
// resolves to the local cache, downloading missing module files first.
// Entries without "lwjgl" in them pass through in their original order;
// resolved module paths are appended after them. Duplicate references to one
// module are dropped, keeping the newest advertised version for the fetch.
func (r *Resolver) RewriteClasspathV3(ctx context.Context, classPath []string) ([]string, error) {
	cacheDir := r.CacheDir(Version3)
	maxVersion := semver.MustParse(baselineVersion)

	handled := make(map[string]struct{})
	var newClassPath []string
	var modules []Module

	for _, entry := range classPath {
		if !strings.Contains(entry, "lwjgl") {
			newClassPath = append(newClassPath, entry)
			continue
		}

		// Entries already resolved into the cache pass through untouched, so
		// rewriting an already-rewritten vector is a no-op.
		if strings.HasPrefix(entry, cacheDir+string(os.PathSeparator)) {
			newClassPath = append(newClassPath, entry)
			continue
		}

		segments := strings.Split(entry, string(os.PathSeparator))
		idx := indexOf(segments, "lwjgl")
		if idx < 0 || idx+2 >= len(segments) {
			return nil, errors.Errorf("unexpected classpath entry shape %q", entry)
		}

		version, err := parseModuleVersion(segments[idx+2])
		if err != nil {
			return nil, errors.Wrapf(err, "classpath entry %q", entry)
		}
		if version.GreaterThan(maxVersion) {
			maxVersion = version
		}

		// Duplicate module references are dropped, but their advertised
		// version still counts toward the fetch version above.
		moduleName := segments[idx+1]
		if _, ok := handled[moduleName]; ok {
			continue
		}
		handled[moduleName] = struct{}{}

		modules = append(modules, Module{Name: moduleName})
	}

	var missing []Module
	missingSet := make(map[string]struct{})
	for _, module := range modules {
		for _, filename := range module.Filenames(r.Platform) {
			file := filepath.Join(cacheDir, filename)
			if !fs.Exists(file) {
				if _, ok := missingSet[module.Name]; !ok {
					missingSet[module.Name] = struct{}{}
					missing = append(missing, module)
				}
			}
			newClassPath = append(newClassPath, file)
		}
	}

	if len(missing) > 0 {
		names := make([]string, len(missing))
		for i, module := range missing {
			names[i] = module.Name
		}
		print.Info(fmt.Sprintf(
			"The following lwjgl modules were not found in %q: %s",
			cacheDir, strings.Join(names, ", ")))

		err := r.downloadModules(ctx, missing, cacheDir, maxVersion.String(), download.DefaultLWJGLBranch)
		if err != nil {
			return nil, err
		}
	}

	return newClassPath, nil
}

// RewriteClasspathV2 only guarantees the legacy cache directory is populated;
// the original entries already work once -Dorg.lwjgl.librarypath points at
// it, so the classpath itself is returned unmodified.
func (r *Resolver) RewriteClasspathV2(ctx context.Context, classPath []string) ([]string, error) {
	cacheDir := r.CacheDir(Version2)

	if !fs.Exists(cacheDir) {
		print.Info(fmt.Sprintf("%q does not exist!", cacheDir))

		if r.Platform.Arch != "arm64" && r.Platform.Arch != "arm32" {
			return nil, errors.Errorf(
				"please create %q or run with \"-noop\" flag", cacheDir)
		}

		print.Info("Downloading required files...")
		if err := r.downloadLegacyFiles(ctx, cacheDir); err != nil {
			return nil, err
		}
	}

	return classPath, nil
}

// downloadModules fetches the jar and natives jar of each module from the
// build server into cacheDir.
func (r *Resolver) downloadModules(ctx context.Context, modules []Module, cacheDir, version, branch string) error {
	var urls []string
	for _, module := range modules {
		for _, filePath := range module.RemotePaths(r.Platform) {
			urls = append(urls, download.LWJGLURL(filePath, version, branch))
		}
	}
	return r.Client.Files(ctx, urls, cacheDir)
}

// downloadLegacyFiles fetches the files.json manifest for this architecture
// from the fallback repository and downloads every listed file.
func (r *Resolver) downloadLegacyFiles(ctx context.Context, cacheDir string) error {
	base := "lwjgl2" + r.Platform.Arch
	listingURL := download.RawGitHubURL(legacyUser, legacyRepo, legacyRef, base+"/files.json")

	listing, err := r.Client.Fetch(ctx, listingURL)
	if err != nil {
		return err
	}

	var tree map[string]interface{}
	if err := json.Unmarshal(listing, &tree); err != nil {
		return errors.Wrapf(err, "failed to parse manifest from %s", listingURL)
	}

	var urls []string
	for _, filePath := range ManifestPaths(tree) {
		urls = append(urls, download.RawGitHubURL(legacyUser, legacyRepo, legacyRef, base+"/"+filePath))
	}

	return r.Client.Files(ctx, urls, cacheDir)
}

// parseModuleVersion validates an advertised LWJGL 3 version string.
// Anything other than exactly three integer components signals a corrupted or
// unexpected classpath shape from the launcher.
func parseModuleVersion(raw string) (*semver.Version, error) {
	parts := strings.Split(raw, ".")
	if len(parts) != 3 {
		return nil, errors.Errorf("lwjgl version %q does not have exactly three components", raw)
	}
	for _, part := range parts {
		if _, err := strconv.Atoi(part); err != nil {
			return nil, errors.Errorf("lwjgl version %q has non-integer component %q", raw, part)
		}
	}
	version, err := semver.NewVersion(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse lwjgl version %q", raw)
	}
	return version, nil
}

func indexOf(haystack []string, needle string) int {
	for i, s := range haystack {
		if s == needle {
			return i
		}
	}
	return -1
}

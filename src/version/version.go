package version

import (
	"fmt"
	"runtime"

	promversion "github.com/prometheus/common/version"
)

// The following fields are populated at build time using -ldflags -X.
// Note that DATE is omitted for reproducible builds
var (
	buildVersion     = "unknown"
	buildGitRevision = "unknown"
	buildBranch      = "unknown"
	buildStatus      = "unknown"
	buildTag         = "unknown"
	buildDate        = "unknown"
)

// BuildInfo describes version information about the binary build.
type BuildInfo struct {
	Version       string `json:"version"`
	GitRevision   string `json:"revision"`
	GitBranch     string `json:"branch"`
	GolangVersion string `json:"golangVersion"`
	BuildStatus   string `json:"status"`
	BuildDate     string `json:"buildDate"`
	GitTag        string `json:"tag"`
	Platform      string `json:"platform"`
}

// Info exports the build version information.
var Info BuildInfo

// String produces a single-line version info
//
// This looks like:
//
// ```
// Version:<version> GIT_REVISION:<git revision> BUILD_STATUS:<build status>
// ```
func (b BuildInfo) String() string {
	return fmt.Sprintf(`Version:%v GIT_REVISION:%v BUILD_STATUS:%v`,
		b.Version,
		b.GitRevision,
		b.BuildStatus)
}

func init() {
	Info = BuildInfo{
		Version:       buildVersion,
		GitRevision:   buildGitRevision,
		GitBranch:     buildBranch,
		GolangVersion: runtime.Version(),
		BuildStatus:   buildStatus,
		GitTag:        buildTag,
		BuildDate:     buildDate,
		Platform:      runtime.GOOS + "/" + runtime.GOARCH,
	}

	// the build_info metric reads these
	promversion.Version = Info.Version
	promversion.Revision = Info.GitRevision
	promversion.Branch = Info.GitBranch
	promversion.BuildDate = Info.BuildDate
}

package version

import (
	"runtime"
	"testing"

	promversion "github.com/prometheus/common/version"
)

func TestBuildInfo_String(t *testing.T) {
	tests := []struct {
		name string
		info BuildInfo
		want string
	}{
		{
			name: "release",
			info: BuildInfo{Version: "1.0.0", GitRevision: "abc", BuildStatus: "Clean", GitBranch: "main"},
			want: "Version:1.0.0 GIT_REVISION:abc BUILD_STATUS:Clean",
		},
		{
			name: "unset",
			info: BuildInfo{},
			want: "Version: GIT_REVISION: BUILD_STATUS:",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.info.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInfoDefaults(t *testing.T) {
	if Info.GolangVersion != runtime.Version() {
		t.Errorf("GolangVersion = %q, want %q", Info.GolangVersion, runtime.Version())
	}
	if Info.Platform != runtime.GOOS+"/"+runtime.GOARCH {
		t.Errorf("Platform = %q", Info.Platform)
	}
	if Info.Version == "" {
		t.Error("Version is empty, want the ldflags value or unknown")
	}
}

func TestPrometheusVersionMirrorsInfo(t *testing.T) {
	if promversion.Version != Info.Version || promversion.Revision != Info.GitRevision {
		t.Errorf("prometheus version = %s/%s, want %s/%s",
			promversion.Version, promversion.Revision, Info.Version, Info.GitRevision)
	}
}

package version

import (
	"encoding/json"
	"runtime"
	"runtime/debug"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	vcs := func(settings ...debug.BuildSetting) func() (*debug.BuildInfo, bool) {
		return func() (*debug.BuildInfo, bool) {
			return &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}, Settings: settings}, true
		}
	}
	noBuildInfo := func() (*debug.BuildInfo, bool) { return nil, false }

	tests := []struct {
		name     string
		injected Info
		read     func() (*debug.BuildInfo, bool)
		want     Info
	}{
		{
			name:     "주입된 값 우선",
			injected: Info{Version: "v1.0.0", Commit: "abc1234", BuildDate: "2026-10-01", BuildNumber: "42"},
			read:     vcs(debug.BuildSetting{Key: "vcs.revision", Value: "fffffff"}),
			want:     Info{Version: "v1.0.0", Commit: "abc1234", BuildDate: "2026-10-01", BuildNumber: "42"},
		},
		{
			name: "VCS 정보로 보완",
			read: vcs(
				debug.BuildSetting{Key: "vcs.revision", Value: "0123456789abcdef"},
				debug.BuildSetting{Key: "vcs.time", Value: "2026-10-17T00:00:00Z"},
				debug.BuildSetting{Key: "vcs.modified", Value: "true"},
			),
			want: Info{Version: "dev", Commit: "0123456789abcdef", BuildDate: "2026-10-17T00:00:00Z", DirtyBuild: true},
		},
		{
			name: "모듈 버전 사용",
			read: func() (*debug.BuildInfo, bool) {
				return &debug.BuildInfo{Main: debug.Module{Version: "v0.3.0"}}, true
			},
			want: Info{Version: "v0.3.0", Commit: unknown, BuildDate: unknown},
		},
		{
			name: "정보 없음",
			read: noBuildInfo,
			want: Info{Version: "dev", Commit: unknown, BuildDate: unknown},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tt.want.GoVersion = runtime.Version()
			tt.want.OS = runtime.GOOS
			tt.want.Arch = runtime.GOARCH

			assert.Equal(t, tt.want, resolve(tt.injected, tt.read))
		})
	}
}

func TestInfo_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		info Info
		want string
	}{
		{"빈 정보", Info{}, "unknown"},
		{"버전만", Info{Version: "v1.0.0", Commit: unknown}, "v1.0.0"},
		{
			"전체",
			Info{Version: "v1.0.0", Commit: "0123456789", BuildNumber: "42", GoVersion: "go1.24.0", OS: "linux", Arch: "amd64", DirtyBuild: true},
			"v1.0.0+dirty (commit 0123456, build 42, go1.24.0 linux/amd64)",
		},
		{"짧은 커밋", Info{Version: "dev", Commit: "abc"}, "dev (commit abc)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.info.String())
		})
	}
}

func TestGet(t *testing.T) {
	t.Parallel()

	var wg sync.WaitGroup
	results := make([]Info, 10)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = Get()
		}()
	}
	wg.Wait()

	for _, info := range results {
		assert.Equal(t, results[0], info, "모든 호출은 같은 값을 반환해야 합니다")
	}
	assert.NotEmpty(t, Version())
	assert.Equal(t, runtime.Version(), results[0].GoVersion)

	b, err := json.Marshal(results[0])
	require.NoError(t, err)
	assert.Contains(t, string(b), `"build_number"`)
}

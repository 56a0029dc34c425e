// Package version 빌드 시점에 주입된 버전 정보와 실행 환경 정보를 제공합니다.
//
// 릴리스 빌드에서는 링커 플래그로 값을 주입합니다.
//
//	go build -ldflags "-X github.com/darkkaiser/inventory-dashboard/internal/pkg/version.version=v1.0.0 \
//	    -X github.com/darkkaiser/inventory-dashboard/internal/pkg/version.buildNumber=42"
//
// 주입된 값이 없으면 Go 모듈에 기록된 VCS 정보(vcs.revision, vcs.time, vcs.modified)로 보완합니다.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
	"sync"
)

const unknown = "unknown"

// 링커 플래그(-X)로 주입되는 값
var (
	version     string
	commit      string
	buildDate   string
	buildNumber string
)

// Info 애플리케이션 빌드 정보
type Info struct {
	Version     string `json:"version"`
	Commit      string `json:"commit"`
	BuildDate   string `json:"build_date"`
	BuildNumber string `json:"build_number"`
	GoVersion   string `json:"go_version"`
	OS          string `json:"os"`
	Arch        string `json:"arch"`

	// DirtyBuild 커밋되지 않은 변경사항이 있는 작업 트리에서 빌드되었는지 여부
	DirtyBuild bool `json:"dirty_build"`
}

var current = sync.OnceValue(func() Info {
	injected := Info{
		Version:     strings.TrimSpace(version),
		Commit:      strings.TrimSpace(commit),
		BuildDate:   strings.TrimSpace(buildDate),
		BuildNumber: strings.TrimSpace(buildNumber),
	}
	return resolve(injected, debug.ReadBuildInfo)
})

// Get 현재 실행 파일의 빌드 정보를 반환합니다.
func Get() Info {
	return current()
}

// Version 현재 실행 파일의 버전 문자열을 반환합니다.
func Version() string {
	return current().Version
}

// resolve 주입된 값을 우선으로 하고, 비어 있는 항목은 모듈 VCS 정보와 런타임 정보로 채웁니다.
func resolve(injected Info, readBuildInfo func() (*debug.BuildInfo, bool)) Info {
	info := injected
	info.GoVersion = runtime.Version()
	info.OS = runtime.GOOS
	info.Arch = runtime.GOARCH

	if bi, ok := readBuildInfo(); ok && bi != nil {
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				if info.Commit == "" {
					info.Commit = s.Value
				}
			case "vcs.time":
				if info.BuildDate == "" {
					info.BuildDate = s.Value
				}
			case "vcs.modified":
				info.DirtyBuild = info.DirtyBuild || s.Value == "true"
			}
		}

		if info.Version == "" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			info.Version = bi.Main.Version
		}
	}

	if info.Version == "" {
		info.Version = "dev"
	}
	if info.Commit == "" {
		info.Commit = unknown
	}
	if info.BuildDate == "" {
		info.BuildDate = unknown
	}

	return info
}

// String 로그 출력용 한 줄 요약을 반환합니다.
//
//	v1.0.0+dirty (commit 1a2b3c4, build 42, go1.24.0 linux/amd64)
func (i Info) String() string {
	v := i.Version
	if v == "" {
		v = unknown
	}
	if i.DirtyBuild {
		v += "+dirty"
	}

	var parts []string
	if i.Commit != "" && i.Commit != unknown {
		parts = append(parts, "commit "+i.Commit[:min(7, len(i.Commit))])
	}
	if i.BuildNumber != "" {
		parts = append(parts, "build "+i.BuildNumber)
	}
	if i.GoVersion != "" {
		parts = append(parts, fmt.Sprintf("%s %s/%s", i.GoVersion, i.OS, i.Arch))
	}

	if len(parts) == 0 {
		return v
	}
	return v + " (" + strings.Join(parts, ", ") + ")"
}

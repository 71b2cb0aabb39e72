package config

import (
	"fmt"
	"runtime"
	"time"
)

// 這些變數會在編譯時通過 -ldflags 設置
var (
	AppVersion string
	GitCommit  string
	BuildDate  string
)

// Version 應用程序的版本信息
type Version struct {
	Version   string `json:"version"`
	AppName   string `json:"app_name"`
	BuildDate string `json:"build_date"`
	GitCommit string `json:"git_commit"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// GetVersion 優先使用編譯時注入的值，其次是環境變數
func GetVersion() Version {
	version := AppVersion
	if version == "" {
		version = getEnv("APP_VERSION", "0.1.0")
	}
	commit := GitCommit
	if commit == "" {
		commit = getEnv("GIT_COMMIT", "unknown")
	}
	buildDate := BuildDate
	if buildDate == "" {
		buildDate = getEnv("BUILD_DATE", time.Now().Format(time.RFC3339))
	}

	return Version{
		Version:   version,
		AppName:   getEnv("APP_NAME", "Lotto Simulator"),
		BuildDate: buildDate,
		GitCommit: commit,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// VersionString 返回格式化的版本信息
func VersionString() string {
	v := GetVersion()
	return fmt.Sprintf("%s v%s\nBuild Date: %s\nGit Commit: %s\nGo Version: %s\nPlatform: %s",
		v.AppName, v.Version, v.BuildDate, v.GitCommit, v.GoVersion, v.Platform)
}

package version

import (
	"fmt"
	"time"
)

// Заполняются через -ldflags "-X dusk-rpg/internal/version.Version=...".
var (
	Version   = "dev"
	BuildDate string // YYYY-MM-DD (UTC)
	Commit    string
)

// buildEpoch - день первого релиза, от него считается номер сборки.
var buildEpoch = time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

// Info - метаданные сборки для /version и --version.
type Info struct {
	Version string `json:"version"`
	BuildID int    `json:"buildId,omitempty"`
	Date    string `json:"buildDate,omitempty"`
	Commit  string `json:"commit,omitempty"`
	Error   string `json:"error,omitempty"`
}

// BuildID - число дней от buildEpoch до даты сборки.
func BuildID(date string) (int, error) {
	if date == "" {
		return 0, fmt.Errorf("build date is empty")
	}

	t, err := time.ParseInLocation("2006-01-02", date, time.UTC)
	if err != nil {
		return 0, fmt.Errorf("invalid build date %q: %w", date, err)
	}
	if t.Before(buildEpoch) {
		return 0, fmt.Errorf("build date %s is before epoch", date)
	}

	// Часы, а не AddDate: обе даты в UTC, переходов времени нет.
	return int(t.Sub(buildEpoch).Hours() / 24), nil
}

// Current returns structured version information.
func Current() Info {
	info := Info{Version: Version, Date: BuildDate, Commit: Commit}

	id, err := BuildID(BuildDate)
	if err != nil {
		info.Error = err.Error()
		return info
	}
	info.BuildID = id
	return info
}

// String returns a human-readable build string.
func String() string {
	info := Current()
	if info.Error != "" {
		return fmt.Sprintf("dusk %s (local build)", info.Version)
	}
	return fmt.Sprintf("dusk %s build %d (%s) commit[%s]",
		info.Version, info.BuildID, info.Date, coalesce(info.Commit, "unknown"))
}

func coalesce(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

package stats

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/backmassage/rendstat/internal/config"
	"github.com/backmassage/rendstat/internal/display"
)

// ErrStatsNotReady is returned when a report is requested before a scan has
// produced an aggregate. This is a usage error in the caller, not bad input.
var ErrStatsNotReady = errors.New("statistics queried before a completed scan")

// Report renders the statistic selected by mode, one value per line.
// Summary emits the five derived values in fixed order: average time,
// average CPU, average RAM, max-RAM id, max-CPU id.
func Report(a *Aggregate, mode config.OutputMode) (string, error) {
	if a == nil {
		return "", ErrStatsNotReady
	}

	switch mode {
	case config.OutputCount:
		return strconv.Itoa(a.Count()), nil
	case config.OutputAvgTime:
		return display.FormatStat(a.AvgTimeSeconds()), nil
	case config.OutputAvgCPU:
		return display.FormatStat(a.AvgCPU()), nil
	case config.OutputAvgRAM:
		return display.FormatStat(a.AvgRAM()), nil
	case config.OutputMaxRAM:
		return a.MaxRAMID(), nil
	case config.OutputMaxCPU:
		return a.MaxCPUID(), nil
	case config.OutputSummary:
		return strings.Join([]string{
			display.FormatStat(a.AvgTimeSeconds()),
			display.FormatStat(a.AvgCPU()),
			display.FormatStat(a.AvgRAM()),
			a.MaxRAMID(),
			a.MaxCPUID(),
		}, "\n"), nil
	}
	return "", fmt.Errorf("unknown output mode %q", mode)
}

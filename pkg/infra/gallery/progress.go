package gallery

import (
	"fmt"
	"log/slog"
)

// progressInterval is the reporting granularity of the progress writer.
const progressInterval = 1 << 20 // 1MiB

// progressWriter counts bytes flowing to the temporary file and logs
// cumulative progress about once per MiB. With an unknown total it reports
// only the received amount.
type progressWriter struct {
	logger   *slog.Logger
	total    int64 // <= 0 when unknown
	written  int64
	reported int64
}

func newProgressWriter(logger *slog.Logger, total int64) *progressWriter {
	return &progressWriter{logger: logger, total: total}
}

func (x *progressWriter) Write(p []byte) (int, error) {
	x.written += int64(len(p))

	if x.written-x.reported >= progressInterval {
		x.reported = x.written
		if x.total > 0 {
			x.logger.Info("download progress",
				"received_mb", toMB(x.written),
				"total_mb", toMB(x.total),
				"percent", fmt.Sprintf("%.1f", float64(x.written)/float64(x.total)*100),
			)
		} else {
			x.logger.Info("download progress", "received_mb", toMB(x.written))
		}
	}

	return len(p), nil
}

func toMB(n int64) string {
	return fmt.Sprintf("%.2f", float64(n)/(1<<20))
}

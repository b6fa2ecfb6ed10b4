// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scan

import (
	"io"
	"time"

	"github.com/schollz/progressbar/v3"
)

// Reporter receives scan progress callbacks.
type Reporter interface {
	// OnStart is called once with the number of files to read.
	OnStart(totalFiles int)

	// OnFile is called after each file, whether it was read or skipped.
	OnFile(path string)

	// OnComplete is called when every file has been visited.
	OnComplete()
}

// NoOpReporter discards progress.
type NoOpReporter struct{}

func (NoOpReporter) OnStart(int)   {}
func (NoOpReporter) OnFile(string) {}
func (NoOpReporter) OnComplete()   {}

// BarReporter draws a progress bar on w.
type BarReporter struct {
	w   io.Writer
	bar *progressbar.ProgressBar
}

// NewBarReporter returns a Reporter that renders to w (typically stderr).
func NewBarReporter(w io.Writer) *BarReporter {
	return &BarReporter{w: w}
}

func (b *BarReporter) OnStart(totalFiles int) {
	b.bar = progressbar.NewOptions(totalFiles,
		progressbar.OptionSetWriter(b.w),
		progressbar.OptionSetDescription("Scanning index files"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)
}

func (b *BarReporter) OnFile(string) {
	if b.bar != nil {
		_ = b.bar.Add(1)
	}
}

func (b *BarReporter) OnComplete() {
	if b.bar != nil {
		_ = b.bar.Finish()
	}
}

// Package logtail reads the tail of the client log file for the activity view.
//
// # Reading Log Files
//
// Read uses a ring buffer of size maxLines, so it scans the file once and
// holds at most maxLines in memory regardless of file size:
//
//	lines, err := logtail.Read(cfg.LogFile, 200)
//	if err != nil {
//		return err
//	}
//
// A missing file is not an error; the log is created lazily on first write.
//
// # Levels
//
// The client logs with slog's text handler. Level pulls the level token out
// of such a line so the UI can color it:
//
//	logtail.Level(`time=... level=WARN msg="request failed"`) // "WARN"
package logtail

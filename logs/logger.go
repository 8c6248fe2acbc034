package logs

import (
	"context"
	"log/slog"
	"os"
	"path"
	"strings"
	"time"

	"github.com/aamini11/halting/cmds"
	"github.com/aamini11/halting/modes"
	slogmulti "github.com/samber/slog-multi"
	slogjournal "github.com/systemd/slog-journal"
)

var level = new(slog.LevelVar)

func init() {
	cmds.Define("-log-debug", cmds.Func(func() {
		level.Set(slog.LevelDebug)
	}).Desc("set log level to debug"))
	cmds.Define("-log-info", cmds.Func(func() {
		level.Set(slog.LevelInfo)
	}).Desc("set log level to info"))
	cmds.Define("-log-warn", cmds.Func(func() {
		level.Set(slog.LevelWarn)
	}).Desc("set log level to warn"))
	cmds.Define("-log-error", cmds.Func(func() {
		level.Set(slog.LevelError)
	}).Desc("set log level to error"))
}

type Logger = *slog.Logger

func (Module) Logger(
	writer Writer,
	mode modes.Mode,
) Logger {
	var leveler slog.Leveler = level
	if mode == modes.ModeDevelopment {
		leveler = slog.LevelDebug
	}

	// under a systemd service, stderr already ends up in the journal
	var handlers []slog.Handler
	var terminalHandler slog.Handler
	if mode != modes.ModeProduction || !isSystemdService() {
		terminalHandler = slog.NewTextHandler(writer, &slog.HandlerOptions{
			Level: leveler,
		})
		handlers = append(handlers, terminalHandler)
	}

	// journal only in production, tests read the terminal output line by line
	if mode == modes.ModeProduction {
		journalHandler, err := slogjournal.NewHandler(&slogjournal.Options{
			ReplaceGroup: func(key string) string {
				return toJournalKey(key)
			},
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				a.Key = toJournalKey(a.Key)
				return a
			},
		})
		if err != nil {
			if terminalHandler != nil &&
				terminalHandler.Enabled(context.Background(), slog.LevelDebug) {
				record := slog.NewRecord(time.Now(), slog.LevelDebug, "no systemd journal", 0)
				record.Add("error", err)
				_ = terminalHandler.Handle(context.Background(), record)
			}
		} else {
			handlers = append(handlers, journalHandler)
		}
	}

	return slog.New(&Handler{
		Handler: slogmulti.Fanout(handlers...),
	})
}

func toJournalKey(str string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' ||
			r >= '0' && r <= '9' {
			return r
		}
		return '_'
	}, strings.ToUpper(str))
}

func isSystemdService() bool {
	cgroupPath, err := getCgroupPath("/proc/self/cgroup")
	if err != nil {
		return false
	}
	return isServiceCgroup(cgroupPath)
}

func isServiceCgroup(cgroupPath string) bool {
	return strings.HasSuffix(path.Dir(cgroupPath), ".service")
}

func getCgroupPath(file string) (string, error) {
	content, err := os.ReadFile(file)
	if err != nil {
		return "", err
	}
	parts := strings.SplitN(strings.TrimSpace(string(content)), ":", 3)
	if len(parts) == 3 {
		return parts[2], nil
	}
	return "", nil
}

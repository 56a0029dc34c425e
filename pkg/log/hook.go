package log

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// hook 로그 레벨에 따라 출력 대상을 분배합니다.
//
//   - ERROR 이상: criticalWriter + mainWriter
//   - INFO, WARN: mainWriter
//   - DEBUG 이하: verboseWriter 만 (메인 로그에는 남기지 않음)
//   - consoleWriter 는 레벨과 무관하게 모든 로그를 받습니다.
type hook struct {
	mainWriter     io.Writer
	criticalWriter io.Writer
	verboseWriter  io.Writer
	consoleWriter  io.Writer

	formatter Formatter

	mu     sync.RWMutex
	closed bool
}

func (h *hook) Levels() []Level {
	return AllLevels
}

// Fire 로그 항목을 한 번 포맷팅한 뒤 레벨에 맞는 Writer들에 기록합니다.
// 한 Writer의 실패가 다른 Writer의 기록을 막지 않으며, 최초 에러만 반환합니다.
func (h *hook) Fire(entry *Entry) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.closed {
		return nil
	}

	msg, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}

	var firstErr error
	write := func(w io.Writer, channel string) {
		if w == nil {
			return
		}
		if _, err := w.Write(msg); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			fmt.Fprintf(os.Stderr, "[LOG-SYSTEM] %s 로그 쓰기 실패: %v\n", channel, err)
		}
	}

	if h.consoleWriter != nil {
		// 콘솔 출력 실패는 전파하지 않습니다.
		_, _ = h.consoleWriter.Write(msg)
	}

	if entry.Level <= ErrorLevel {
		write(h.criticalWriter, "Critical")
	}

	if entry.Level >= DebugLevel {
		write(h.verboseWriter, "Verbose")
		return firstErr
	}

	write(h.mainWriter, "Main")

	return firstErr
}

// Close 이후의 로그 기록을 차단합니다. 진행 중인 Fire가 끝날 때까지 대기합니다.
func (h *hook) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true

	return nil
}

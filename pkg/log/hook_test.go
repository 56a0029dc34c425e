package log

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func newTestHook() (*hook, *bytes.Buffer, *bytes.Buffer, *bytes.Buffer, *bytes.Buffer) {
	main, critical, verbose, console := &bytes.Buffer{}, &bytes.Buffer{}, &bytes.Buffer{}, &bytes.Buffer{}
	h := &hook{
		mainWriter:     main,
		criticalWriter: critical,
		verboseWriter:  verbose,
		consoleWriter:  console,
		formatter:      &logrus.TextFormatter{DisableTimestamp: true},
	}
	return h, main, critical, verbose, console
}

func newEntry(level Level, msg string) *Entry {
	e := logrus.NewEntry(logrus.New())
	e.Level = level
	e.Message = msg
	return e
}

func TestHook_Fire_Routing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		level        Level
		wantMain     bool
		wantCritical bool
		wantVerbose  bool
	}{
		{"Error는 Critical과 Main에 기록", ErrorLevel, true, true, false},
		{"Warn은 Main에만 기록", WarnLevel, true, false, false},
		{"Info는 Main에만 기록", InfoLevel, true, false, false},
		{"Debug는 Verbose에만 기록", DebugLevel, false, false, true},
		{"Trace는 Verbose에만 기록", TraceLevel, false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h, main, critical, verbose, console := newTestHook()
			require.NoError(t, h.Fire(newEntry(tt.level, "상품 목록 조회")))

			assert.Equal(t, tt.wantMain, main.Len() > 0)
			assert.Equal(t, tt.wantCritical, critical.Len() > 0)
			assert.Equal(t, tt.wantVerbose, verbose.Len() > 0)
			assert.Contains(t, console.String(), "상품 목록 조회", "콘솔은 모든 레벨을 받아야 합니다")
		})
	}
}

func TestHook_Fire_WriterFailure(t *testing.T) {
	t.Parallel()

	t.Run("실패: Critical 쓰기 실패에도 Main 기록은 수행", func(t *testing.T) {
		t.Parallel()

		h, main, _, _, _ := newTestHook()
		h.criticalWriter = failingWriter{}

		err := h.Fire(newEntry(ErrorLevel, "카탈로그 API 호출 실패"))

		assert.EqualError(t, err, "disk full")
		assert.Contains(t, main.String(), "카탈로그 API 호출 실패")
	})
}

func TestHook_Close(t *testing.T) {
	t.Parallel()

	h, main, _, _, console := newTestHook()
	require.NoError(t, h.Close())

	require.NoError(t, h.Fire(newEntry(InfoLevel, "닫힌 뒤의 로그")))
	assert.Zero(t, main.Len())
	assert.Zero(t, console.Len())
}

package logger_test

import (
	"sync"
	"testing"

	"github.com/phrazzld/askr-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTestLogger(t *testing.T) {
	l, buf := logger.NewTestLogger(t)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			l.Debug("concurrent", "n", n)
		}(i)
	}
	wg.Wait()

	entries, err := buf.Entries()
	require.NoError(t, err)
	assert.Len(t, entries, 10)
	for _, e := range entries {
		assert.Equal(t, "DEBUG", e["level"])
		assert.Equal(t, "concurrent", e["msg"])
	}
}

func TestTestLogBuffer_EntriesRejectsNonJSON(t *testing.T) {
	buf := &logger.TestLogBuffer{}
	_, err := buf.Write([]byte("not json\n"))
	require.NoError(t, err)

	_, err = buf.Entries()
	assert.Error(t, err)
}

package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gocrud/beanlife/logging"
)

func TestRecorderLogsEachMarker(t *testing.T) {
	logger, logs := logging.NewObservedLogger(logging.LogLevelInfo)
	rec := NewRecorder(logger)

	rec.Mark(StageConstructor)
	rec.Mark(StageBeanName, "myController")
	rec.Note("I'm in the controller")

	assert.Equal(t, []string{
		"1. constructor",
		"3. beanName : myController",
		"I'm in the controller",
	}, rec.Texts())

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, "3. beanName : myController", entries[1].Message)
	assert.Equal(t, "beanName", entries[1].ContextMap()["stage"])
	assert.Equal(t, "inUse", entries[2].ContextMap()["stage"])
}

func TestRecorderStagesKeepFirstOccurrence(t *testing.T) {
	rec := NewRecorder(nil)

	rec.Mark(StageConstructor)
	rec.Mark(StageSetter)
	rec.Mark(StagePostProcessBefore)
	rec.Mark(StageSetter)
	rec.Mark(StageInit)

	assert.Equal(t, []Stage{StageConstructor, StageSetter, StagePostProcessBefore, StageInit}, rec.Stages())
	assert.True(t, rec.InOrder())
}

func TestRecorderInOrderDetectsViolation(t *testing.T) {
	rec := NewRecorder(nil)

	rec.Mark(StageSetter)
	rec.Mark(StageConstructor)

	assert.False(t, rec.InOrder())
}

func TestRecorderReset(t *testing.T) {
	rec := NewRecorder(nil)
	rec.Mark(StageConstructor)
	rec.Reset()
	assert.Empty(t, rec.Markers())
}

func TestNilRecorderDiscards(t *testing.T) {
	var rec *Recorder

	rec.Mark(StageConstructor)
	rec.Note("ignored")
	rec.Reset()

	assert.Empty(t, rec.Markers())
	assert.Empty(t, rec.Texts())
	assert.True(t, rec.InOrder())
}

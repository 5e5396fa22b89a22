package tetris_test

import (
	"testing"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
)

func TestIntentBufferFlush(t *testing.T) {
	var buffer tetris.IntentBuffer

	buffer.Queue(tetris.IntentMoveLeft)
	buffer.Queue(tetris.IntentRotate)
	buffer.Queue(tetris.IntentRotate)

	intents, restart := buffer.Flush()
	assert.Equal(t, tetris.Intents{MoveLeft: true, Rotate: true}, intents)
	assert.False(t, restart)

	intents, restart = buffer.Flush()
	assert.Equal(t, tetris.Intents{}, intents, "flush resets the buffer")
	assert.False(t, restart)
}

func TestIntentBufferRestart(t *testing.T) {
	var buffer tetris.IntentBuffer

	buffer.Queue(tetris.IntentRestart)
	buffer.Queue(tetris.IntentSoftDrop)
	buffer.Queue(tetris.IntentMoveRight)

	intents, restart := buffer.Flush()
	assert.Equal(t, tetris.Intents{SoftDrop: true, MoveRight: true}, intents)
	assert.True(t, restart)
}

func TestIntentBufferIgnoresUnknown(t *testing.T) {
	var buffer tetris.IntentBuffer

	buffer.Queue(tetris.IntentNone)
	buffer.Queue(tetris.Intent(200))

	intents, restart := buffer.Flush()
	assert.Equal(t, tetris.Intents{}, intents)
	assert.False(t, restart)
	assert.Equal(t, "unknown", tetris.Intent(200).String())
	assert.Equal(t, "soft-drop", tetris.IntentSoftDrop.String())
}

package voice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type funcRecognizer func(ctx context.Context) (string, error)

func (f funcRecognizer) Listen(ctx context.Context) (string, error) { return f(ctx) }

func TestCaptureSuccess(t *testing.T) {
	rec := NewStaticRecognizer("open a new tab")

	res := Capture(context.Background(), rec)
	assert.True(t, res.Ok)
	assert.Equal(t, "open a new tab", res.Text)
	assert.Empty(t, res.Notice)
}

func TestCaptureRecognitionFailure(t *testing.T) {
	rec := funcRecognizer(func(_ context.Context) (string, error) {
		return "", errors.New("no speech detected")
	})

	res := Capture(context.Background(), rec)
	assert.False(t, res.Ok)
	assert.Equal(t, "Sorry, I could not understand the audio.", res.Notice)
}

func TestCaptureTimeout(t *testing.T) {
	rec := funcRecognizer(func(ctx context.Context) (string, error) {
		<-ctx.Done()
		return "", ctx.Err()
	})

	res := CaptureWithTimeout(context.Background(), rec, 10*time.Millisecond)
	assert.False(t, res.Ok)
	assert.Contains(t, res.Notice, "did not hear anything")
}

func TestCaptureBlankUtterance(t *testing.T) {
	rec := NewStaticRecognizer("   ")

	res := Capture(context.Background(), rec)
	assert.False(t, res.Ok)
	assert.NotEmpty(t, res.Notice)
}

func TestCaptureNilRecognizer(t *testing.T) {
	res := Capture(context.Background(), nil)
	assert.False(t, res.Ok)
	assert.Contains(t, res.Notice, "not available")
}

func TestStaticRecognizerExhaustion(t *testing.T) {
	rec := NewStaticRecognizer("one")

	_, err := rec.Listen(context.Background())
	assert.NoError(t, err)
	_, err = rec.Listen(context.Background())
	assert.Error(t, err)
}

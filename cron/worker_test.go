package cron

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeHousekeeper struct {
	calls int
	err   error
}

func (f *fakeHousekeeper) CompletePastAppointments(context.Context) (int64, error) {
	f.calls++
	return 2, f.err
}

func TestHandleCompletePastTask(t *testing.T) {
	h := &fakeHousekeeper{}
	handler := handleCompletePastTask(h)

	assert.NoError(t, handler(context.Background(), NewCompletePastTask()))
	assert.Equal(t, 1, h.calls)

	h.err = errors.New("mongo unavailable")
	assert.ErrorIs(t, handler(context.Background(), NewCompletePastTask()), h.err)
}

func TestNewCompletePastTask(t *testing.T) {
	task := NewCompletePastTask()
	assert.Equal(t, TypeCompletePastAppointments, task.Type())
	assert.Empty(t, task.Payload())
}

package notification

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func TestKafkaPublisher_Publish(t *testing.T) {
	w := &fakeWriter{}
	p := NewKafkaPublisher(w)

	pid := uint(9)
	n := New(TypeParticipantRegistered, 3, &pid, map[string]interface{}{"email": "a@x.com"})
	require.NoError(t, p.Publish(context.Background(), n))
	require.Len(t, w.msgs, 1)

	msg := w.msgs[0]
	assert.Equal(t, "3", string(msg.Key))
	require.Len(t, msg.Headers, 1)
	assert.Equal(t, TypeParticipantRegistered, string(msg.Headers[0].Value))

	var decoded Notification
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, n.ID, decoded.ID)
	assert.Equal(t, uint(3), decoded.EventID)
	require.NotNil(t, decoded.ParticipantID)
	assert.Equal(t, uint(9), *decoded.ParticipantID)
	assert.Equal(t, "a@x.com", decoded.Data["email"])

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}

func TestEmit_SwallowsErrors(t *testing.T) {
	w := &fakeWriter{err: errors.New("broker down")}
	p := NewKafkaPublisher(w)

	assert.NotPanics(t, func() {
		Emit(context.Background(), p, New(TypeEventCreated, 1, nil, nil))
		Emit(context.Background(), nil, New(TypeEventCreated, 1, nil, nil))
		Emit(context.Background(), NewNoopPublisher(), New(TypeEventDeleted, 1, nil, nil))
	})
	assert.Empty(t, w.msgs)
}

func TestNew(t *testing.T) {
	a := New(TypeEventUpdated, 1, nil, nil)
	b := New(TypeEventUpdated, 1, nil, nil)
	assert.NotEqual(t, a.ID, b.ID)
	assert.False(t, a.OccurredAt.IsZero())
	assert.Nil(t, a.ParticipantID)
}

package mykafka

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

func TestPublishEvent_WritesKeyedJSON(t *testing.T) {
	w := &fakeWriter{}
	p := &Producer{writer: w}

	err := p.PublishEvent(context.Background(), "marketplace_events", "producer-1", map[string]any{"type": "order_created"})
	require.NoError(t, err)
	require.Len(t, w.msgs, 1)

	msg := w.msgs[0]
	assert.Equal(t, "marketplace_events", msg.Topic)
	assert.Equal(t, "producer-1", string(msg.Key))

	var body map[string]any
	require.NoError(t, json.Unmarshal(msg.Value, &body))
	assert.Equal(t, "order_created", body["type"])
}

func TestPublishEvent_MarshalError(t *testing.T) {
	w := &fakeWriter{}
	p := &Producer{writer: w}

	err := p.PublishEvent(context.Background(), "t", "k", make(chan int))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "json.Marshal")
	assert.Empty(t, w.msgs)
}

func TestPublishEvent_WriteError(t *testing.T) {
	boom := errors.New("broker down")
	p := &Producer{writer: &fakeWriter{err: boom}}

	err := p.PublishEvent(context.Background(), "t", "k", struct{}{})
	require.ErrorIs(t, err, boom)
}

func TestClose(t *testing.T) {
	w := &fakeWriter{}
	require.NoError(t, (&Producer{writer: w}).Close())
	assert.True(t, w.closed)
}

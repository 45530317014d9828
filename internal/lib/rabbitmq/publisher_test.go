package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/streadway/amqp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type ChannelMock struct{ mock.Mock }

func (m *ChannelMock) Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	return m.Called(exchange, key, mandatory, immediate, msg).Error(0)
}

func TestPublisher_Publish(t *testing.T) {
	type testMsg struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}

	t.Run("success publish", func(t *testing.T) {
		ch := new(ChannelMock)
		ch.On("Publish", "events", "user.deleted", false, false, mock.MatchedBy(func(p amqp.Publishing) bool {
			var got testMsg
			if err := json.Unmarshal(p.Body, &got); err != nil {
				return false
			}
			return got == testMsg{ID: "u1", Name: "alice"} &&
				p.ContentType == "application/json" &&
				p.DeliveryMode == amqp.Persistent
		})).Return(nil).Once()

		p := NewPublisher(ch, "events")
		err := p.Publish(context.Background(), "user.deleted", testMsg{ID: "u1", Name: "alice"})

		require.NoError(t, err)
		ch.AssertExpectations(t)
	})

	t.Run("marshal error", func(t *testing.T) {
		ch := new(ChannelMock)
		p := NewPublisher(ch, "events")

		// В json marshal нельзя сериализовать канал
		err := p.Publish(context.Background(), "user.deleted", struct {
			Ch chan int `json:"ch"`
		}{Ch: make(chan int)})

		require.Error(t, err)
		ch.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("channel error", func(t *testing.T) {
		ch := new(ChannelMock)
		ch.On("Publish", "events", "post.created", false, false, mock.Anything).
			Return(errors.New("channel closed")).Once()

		p := NewPublisher(ch, "events")
		err := p.Publish(context.Background(), "post.created", testMsg{ID: "p1"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "channel closed")
	})

	t.Run("cancelled context", func(t *testing.T) {
		ch := new(ChannelMock)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := NewPublisher(ch, "events").Publish(ctx, "user.created", testMsg{})

		assert.ErrorIs(t, err, context.Canceled)
		ch.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

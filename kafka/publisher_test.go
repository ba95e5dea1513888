package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublisher_PublishFavoriteAdded(t *testing.T) {
	producer := mocks.NewSyncProducer(t, NewProducerConfig())
	var sent Event
	producer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		assert.Equal(t, TopicFavorites, msg.Topic)
		key, err := msg.Key.Encode()
		require.NoError(t, err)
		assert.Equal(t, "car_42", string(key))
		value, err := msg.Value.Encode()
		require.NoError(t, err)
		return json.Unmarshal(value, &sent)
	})

	p := NewPublisherWithProducer(producer)
	require.NoError(t, p.PublishFavoriteAdded(context.Background(), 42, "alice"))
	require.NoError(t, p.Close())

	assert.Equal(t, EventTypeFavoriteAdded, sent.EventType)
	assert.Equal(t, uint(42), sent.CarID)
	assert.Equal(t, "alice", sent.UserID)
	assert.NotEmpty(t, sent.EventID)
}

func TestPublisher_PublishCarDeleted(t *testing.T) {
	producer := mocks.NewSyncProducer(t, NewProducerConfig())
	producer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		if msg.Topic != TopicCatalogue {
			return errors.New("unexpected topic " + msg.Topic)
		}
		return nil
	})

	p := NewPublisherWithProducer(producer)
	assert.NoError(t, p.PublishCarDeleted(context.Background(), 7))
	require.NoError(t, p.Close())
}

func TestPublisher_SendFailure(t *testing.T) {
	producer := mocks.NewSyncProducer(t, NewProducerConfig())
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	p := NewPublisherWithProducer(producer)
	err := p.PublishFavoriteRemoved(context.Background(), 1, "alice")
	require.NoError(t, p.Close())

	assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
}

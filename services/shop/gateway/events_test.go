package gateway

import (
	"context"
	"errors"
	"testing"

	"github.com/piresc/coffeeshop/internal/pkg/constants"
	"github.com/piresc/coffeeshop/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePublisher struct {
	topics   []string
	messages []interface{}
	err      error
}

func (f *fakePublisher) Publish(topic string, message interface{}) error {
	f.topics = append(f.topics, topic)
	f.messages = append(f.messages, message)
	return f.err
}

func TestPublishShopEvent_Success(t *testing.T) {
	pub := &fakePublisher{}
	gw := NewEventGW(pub, "")

	item := models.Shop{ID: 57, Name: "New shop", Address: "Somewhere"}
	event := models.NewShopEvent(models.ShopCreated, 57, &item)

	require.NoError(t, gw.PublishShopEvent(context.Background(), event))

	assert.Equal(t, []string{constants.DefaultShopEventsTopic}, pub.topics)
	require.Len(t, pub.messages, 1)
	assert.Equal(t, event, pub.messages[0])
}

func TestPublishShopEvent_CustomTopic(t *testing.T) {
	pub := &fakePublisher{}
	gw := NewEventGW(pub, "coffee.changes")

	require.NoError(t, gw.PublishShopEvent(context.Background(), models.NewShopEvent(models.ShopDeleted, 3, nil)))
	assert.Equal(t, []string{"coffee.changes"}, pub.topics)
}

func TestPublishShopEvent_ProducerError(t *testing.T) {
	cause := errors.New("connection refused")
	gw := NewEventGW(&fakePublisher{err: cause}, "")

	err := gw.PublishShopEvent(context.Background(), models.NewShopEvent(models.ShopUpdated, 9, nil))

	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "failed to publish updated event for shop 9")
}

func TestPublishShopEvent_CancelledContext(t *testing.T) {
	pub := &fakePublisher{}
	gw := NewEventGW(pub, "")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := gw.PublishShopEvent(ctx, models.NewShopEvent(models.ShopCreated, 1, nil))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, pub.topics)
}

func TestNewEventGW_NilProducerDropsEvents(t *testing.T) {
	gw := NewEventGW(nil, "")

	assert.NoError(t, gw.PublishShopEvent(context.Background(), models.NewShopEvent(models.ShopCreated, 1, nil)))
}

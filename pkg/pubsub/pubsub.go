// Package pubsub publishes favor changes to a Google Pub/Sub topic
package pubsub // import "github.com/favorexchange/favor-billboard/pkg/pubsub"

import (
	"context"
	"encoding/json"
	"time"

	"cloud.google.com/go/pubsub"
	log "github.com/golang/glog"
	"github.com/pkg/errors"
	"google.golang.org/api/option"

	"github.com/favorexchange/favor-billboard/pkg/model"
)

const (
	publishTimeout = 10 * time.Second
)

// FavorPayload is the JSON message published for each applied favor change
type FavorPayload struct {
	FavorID     string `json:"favorId"`
	State       string `json:"state"`
	Style       string `json:"style"`
	Removed     bool   `json:"removed"`
	Event       string `json:"event"`
	BlockNumber uint64 `json:"blockNumber"`
	TxHash      string `json:"txHash"`
}

// NewFavorPayload builds the message payload for a favor change
func NewFavorPayload(favor *model.Favor, display model.Display, event model.Event) *FavorPayload {
	payload := &FavorPayload{
		FavorID: favor.ID().Hex(),
		State:   display.State.String(),
		Style:   display.Style,
		Removed: display.Removed,
	}
	if event != nil {
		meta := event.Meta()
		payload.Event = event.Name()
		payload.BlockNumber = meta.BlockNumber
		payload.TxHash = meta.TxHash.Hex()
	}
	return payload
}

// NewGooglePubSubNotifier returns a notifier publishing to the given topic.
// The topic has to exist. credentialsFile is optional, without it the
// application default credentials or PUBSUB_EMULATOR_HOST are used.
func NewGooglePubSubNotifier(ctx context.Context, projectID string, topicName string,
	credentialsFile string) (*GooglePubSubNotifier, error) {
	opts := []option.ClientOption{}
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	client, err := pubsub.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, errors.WithMessage(err, "error creating pubsub client")
	}
	topic := client.Topic(topicName)
	exists, err := topic.Exists(ctx)
	if err != nil {
		_ = client.Close()
		return nil, errors.WithMessagef(err, "error checking topic %v", topicName)
	}
	if !exists {
		_ = client.Close()
		return nil, errors.Errorf("topic %v does not exist", topicName)
	}
	return &GooglePubSubNotifier{client: client, topic: topic}, nil
}

// GooglePubSubNotifier publishes favor changes as JSON messages
type GooglePubSubNotifier struct {
	client *pubsub.Client
	topic  *pubsub.Topic
}

// NotifyFavor publishes the projected state of a changed favor and waits for
// the server to acknowledge it
func (g *GooglePubSubNotifier) NotifyFavor(favor *model.Favor, display model.Display, event model.Event) error {
	data, err := json.Marshal(NewFavorPayload(favor, display, event))
	if err != nil {
		return errors.WithMessage(err, "error marshalling favor payload")
	}
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	result := g.topic.Publish(ctx, &pubsub.Message{
		Data:       data,
		Attributes: map[string]string{"favorId": favor.ID().Hex()},
	})
	id, err := result.Get(ctx)
	if err != nil {
		return errors.WithMessagef(err, "error publishing favor %v", favor.ID().Hex())
	}
	log.V(2).Infof("Published favor %v as message %v", favor.ID().Hex(), id)
	return nil
}

// Close flushes pending messages and closes the client
func (g *GooglePubSubNotifier) Close() error {
	g.topic.Stop()
	return g.client.Close()
}

// NullNotifier is a notifier that does nothing, used when publishing is disabled
type NullNotifier struct{}

// NotifyFavor does nothing
func (n *NullNotifier) NotifyFavor(favor *model.Favor, display model.Display, event model.Event) error {
	return nil
}

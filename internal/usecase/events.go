package usecase

import (
	"encoding/json"

	"github.com/refpilot/affiliate-service/internal/domain"
)

// publishJSON marshals an event onto the given topic. A nil publisher is
// a no-op so tests and one-off tooling can run without a broker.
func publishJSON(pub domain.PublisherPort, topic, key string, event any) error {
	if pub == nil {
		return nil
	}
	v, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return pub.Publish(topic, domain.Message{Key: []byte(key), Value: v})
}

//go:build !gcloud

package config

// Validate accepts an empty NATS_URL; events are then only logged.
func (c *PubSubConfig) Validate() error {
	return nil
}

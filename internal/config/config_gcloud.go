//go:build gcloud

package config

import "errors"

var ErrMissingProjectID = errors.New("GCLOUD_PROJECT_ID is required: push, sms and in-app notifications are published to Pub/Sub")

// Validate requires a project, since the gcloud build has no log-only
// fallback for event channels.
func (c *PubSubConfig) Validate() error {
	if c.GCloudProjectID == "" {
		return ErrMissingProjectID
	}

	return nil
}

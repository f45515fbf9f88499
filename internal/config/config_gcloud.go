//go:build gcloud

package config

import "errors"

func (c *ObservabilityConfig) Validate() error {
	if c.GCPProjectID == "" {
		return errors.New("GCLOUD_PROJECT_ID or GOOGLE_CLOUD_PROJECT is required")
	}
	return nil
}

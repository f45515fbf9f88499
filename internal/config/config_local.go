//go:build !gcloud

package config

func (c *ObservabilityConfig) Validate() error {
	return nil
}

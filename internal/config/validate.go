package config

import (
	"fmt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	switch c.Blob.Backend {
	case "fs":
		if c.Blob.Dir == "" {
			return fmt.Errorf("blob.dir must be set for the fs backend")
		}
	case "s3":
		if c.Blob.S3Bucket == "" {
			return fmt.Errorf("blob.s3_bucket must be set for the s3 backend")
		}
	default:
		return fmt.Errorf("blob.backend must be \"fs\" or \"s3\" (got %q)", c.Blob.Backend)
	}

	if c.Sweeper.RestoreTTL <= 0 {
		return fmt.Errorf("sweeper.restore_ttl must be > 0 (got %v)", c.Sweeper.RestoreTTL)
	}
	if c.Sweeper.Interval <= 0 {
		return fmt.Errorf("sweeper.interval must be > 0 (got %v)", c.Sweeper.Interval)
	}

	if c.Classifier.MaxTokens <= 0 {
		return fmt.Errorf("classifier.max_tokens must be > 0 (got %d)", c.Classifier.MaxTokens)
	}

	if c.Server.MaxUploadBytes <= 0 {
		return fmt.Errorf("server.max_upload_bytes must be > 0 (got %d)", c.Server.MaxUploadBytes)
	}

	return nil
}

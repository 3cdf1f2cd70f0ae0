package utils

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/gnomegl/urlsx/internal/core"
)

func ValidateNumericValues(workers, batchSize, timeout int) error {
	if workers < core.MinWorkers || workers > core.MaxWorkersLimit {
		return core.NewConfigurationError(
			fmt.Sprintf("Invalid workers: %d must be between %d and %d", workers, core.MinWorkers, core.MaxWorkersLimit),
			nil,
		)
	}

	if batchSize < core.MinBatchSize || batchSize > core.MaxBatchSizeCap {
		return core.NewConfigurationError(
			fmt.Sprintf("Invalid batch size: %d must be between %d and %d", batchSize, core.MinBatchSize, core.MaxBatchSizeCap),
			nil,
		)
	}

	if timeout < core.MinTimeout || timeout > core.MaxTimeout {
		return core.NewConfigurationError(
			fmt.Sprintf("Invalid timeout: %d must be between %d and %d seconds", timeout, core.MinTimeout, core.MaxTimeout),
			nil,
		)
	}

	return nil
}

func ValidateProxy(proxy string) error {
	if proxy == "" {
		return nil
	}

	if !strings.HasPrefix(proxy, "http://") &&
		!strings.HasPrefix(proxy, "https://") &&
		!strings.HasPrefix(proxy, "socks5://") {
		return core.NewConfigurationError(
			"Invalid proxy: must be http://, https://, or socks5:// URL",
			nil,
		)
	}

	_, err := url.Parse(proxy)
	if err != nil {
		return core.NewConfigurationError(
			fmt.Sprintf("Invalid proxy URL: %v", err),
			err,
		)
	}

	return nil
}

// ValidateTemplate rejects custom templates that carry no usable marker.
// The tag pattern only matches alphanumeric bracket contents, so a template
// whose brackets hold anything else fails here too.
func ValidateTemplate(template string) error {
	if strings.TrimSpace(template) == "" {
		return core.NewValidationError("No template provided", nil)
	}
	tags := core.ExtractTags(template)
	if len(tags) == 0 {
		return core.NewValidationError(
			"Template has no tags like [A] or [2]; markers must be alphanumeric",
			nil,
		)
	}
	return nil
}

// SplitValues turns a freeform comma-separated input into the trimmed value
// list for one tag. Order is preserved; duplicates are kept.
func SplitValues(raw string) []string {
	parts := strings.Split(raw, ",")
	var values []string
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			values = append(values, v)
		}
	}
	return values
}

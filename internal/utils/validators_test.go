package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gnomegl/urlsx/internal/core"
)

func TestValidateNumericValues(t *testing.T) {
	tests := []struct {
		name      string
		workers   int
		batchSize int
		timeout   int
		wantErr   bool
	}{
		{"defaults", core.DefaultWorkers, core.DefaultBatchSize, 10, false},
		{"minimums", core.MinWorkers, core.MinBatchSize, core.MinTimeout, false},
		{"zero workers", 0, 100, 10, true},
		{"too many workers", core.MaxWorkersLimit + 1, 100, 10, true},
		{"zero batch", 4, 0, 10, true},
		{"oversized batch", 4, core.MaxBatchSizeCap + 1, 10, true},
		{"negative timeout", 4, 100, -1, true},
		{"huge timeout", 4, 100, core.MaxTimeout + 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNumericValues(tt.workers, tt.batchSize, tt.timeout)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateProxy(t *testing.T) {
	assert.NoError(t, ValidateProxy(""))
	assert.NoError(t, ValidateProxy("http://proxy:8080"))
	assert.NoError(t, ValidateProxy("socks5://proxy:1080"))
	assert.Error(t, ValidateProxy("ftp://proxy:21"))
	assert.Error(t, ValidateProxy("proxy:8080"))
}

func TestValidateTemplate(t *testing.T) {
	assert.NoError(t, ValidateTemplate(core.TemplateGacha))
	assert.NoError(t, ValidateTemplate("https://host/OB[7]/[b]/[Z].png"))
	assert.Error(t, ValidateTemplate(""))
	assert.Error(t, ValidateTemplate("   "))
	assert.Error(t, ValidateTemplate("https://host/no/tags.png"))
	assert.Error(t, ValidateTemplate("https://host/[bad-tag]/x.png"))
}

func TestSplitValues(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, SplitValues("a, b ,c"))
	assert.Equal(t, []string{"a", "a"}, SplitValues("a,a"))
	assert.Nil(t, SplitValues(" , ,"))
	assert.Nil(t, SplitValues(""))
}

package logging_test

import (
	"testing"

	"github.com/dusklight/pixelpipe/pkg/logging"
	"github.com/stretchr/testify/assert"
)

func TestGetLogger(t *testing.T) {
	logger := logging.GetLogger("order.store")
	// The component logger must be usable without prior SetupLogger
	assert.NotPanics(t, func() {
		logger.Debug().Str("operation", "demosaic").Msg("lookup miss")
	})
}

func TestSetupLogger(t *testing.T) {
	for _, verbosity := range []int{0, 1, 2, 3} {
		assert.NotPanics(t, func() {
			logging.SetupLogger(verbosity)
		})
	}
}

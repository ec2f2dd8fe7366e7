package activenet

import (
	"github.com/brickchain/brickd/infrastructure/logger"
)

var log = logger.RegisterSubSystem("ANET")

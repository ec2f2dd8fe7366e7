package metrics

import (
	"github.com/brickchain/brickd/infrastructure/logger"
	"github.com/brickchain/brickd/util/panics"
)

var log = logger.RegisterSubSystem("METR")
var spawn = panics.GoroutineWrapperFunc(log)

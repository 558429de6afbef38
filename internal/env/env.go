package env

import (
	"github.com/thatsimonsguy/thermoshade/internal/config"
)

var Cfg *config.Config

package client

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// restyLogger routes resty's internal messages into the zerolog global logger.
type restyLogger struct{}

func (restyLogger) Errorf(format string, v ...interface{}) {
	log.Error().Str("component", "resty").Msg(fmt.Sprintf(format, v...))
}

func (restyLogger) Warnf(format string, v ...interface{}) {
	log.Warn().Str("component", "resty").Msg(fmt.Sprintf(format, v...))
}

func (restyLogger) Debugf(format string, v ...interface{}) {
	log.Debug().Str("component", "resty").Msg(fmt.Sprintf(format, v...))
}

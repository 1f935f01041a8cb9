package rail12306

import (
	"os"

	log "github.com/sirupsen/logrus"
)

// InitLogging configures the process-wide logger.
func InitLogging() {
	log.SetOutput(os.Stdout)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
}

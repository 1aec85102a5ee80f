package utils

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

const DEV_ENV_FILENAME = ".env.development"
const PROD_ENV_FILENAME = ".env.production"

// InitEnvironmentVariables loads the .env file for the given environment. A
// missing file is not an error: production deploys inject variables directly.
func InitEnvironmentVariables(goEnv string) error {
	envFile := DEV_ENV_FILENAME
	if goEnv == "production" {
		envFile = PROD_ENV_FILENAME
	}

	if err := godotenv.Load(envFile); err != nil {
		if os.IsNotExist(err) {
			log.Debugf("InitEnvironmentVariables: no %s file found", envFile)
			return nil
		}

		return fmt.Errorf("InitEnvironmentVariables: failed to load %s: %w", envFile, err)
	}

	return nil
}

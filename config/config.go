package config

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"runtime"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"github.com/tkanos/gonfig"

	"storefront-voting/constant"
)

// Configuration field names double as the environment variable names gonfig
// reads, so they keep the upper snake case.
type Configuration struct {
	RUN_PORT string

	BASE_URL           string
	TEMPLATE_URL       string
	FLYER_TEMPLATE_URL string

	STORE_DRIVER      string
	DYNAMODB_TABLE    string
	DYNAMODB_ENDPOINT string

	AWS_REGION            string
	AWS_ACCESS_KEY_ID     string
	AWS_SECRET_ACCESS_KEY string

	DB_USERNAME string
	DB_PASSWORD string
	DB_PORT     string
	DB_HOST     string
	DB_NAME     string

	REDIS_ADDR string

	LOG_LEVEL string

	RESULTS_JWT_SECRET      string
	LEADERBOARD_LOG_MINUTES int
}

func GetConfig() Configuration {
	_, dirname, _, _ := runtime.Caller(0)
	configuration, err := Load(path.Join(filepath.Dir(dirname), "config.json"))
	if err != nil {
		log.Errorf("config: %v", err)
	}
	return configuration
}

// Load reads filePath when it exists and then applies environment overrides.
// A .env file in the working directory is loaded into the environment first.
// An unreadable file is reported, and the environment alone is used instead.
func Load(filePath string) (Configuration, error) {
	_ = godotenv.Load()

	if _, err := os.Stat(filePath); err != nil {
		filePath = ""
	}
	configuration := Configuration{}
	err := gonfig.GetConf(filePath, &configuration)
	if err != nil {
		err = fmt.Errorf("%s: %w", filePath, err)
		configuration = Configuration{}
		_ = gonfig.GetConf("", &configuration)
	}
	configuration.applyDefaults()
	return configuration, err
}

func (c *Configuration) applyDefaults() {
	if c.RUN_PORT == "" {
		c.RUN_PORT = "8000"
	}
	if c.STORE_DRIVER == "" {
		c.STORE_DRIVER = constant.STORE_DYNAMODB
	}
	if c.DB_PORT == "" {
		c.DB_PORT = "3306"
	}
	if c.LOG_LEVEL == "" {
		c.LOG_LEVEL = "info"
	}
}

// FlyerTemplateURL lets the combined dev server serve the flyer and vote pages
// from different templates while the Lambda functions share TEMPLATE_URL.
func (c Configuration) FlyerTemplateURL() string {
	if c.FLYER_TEMPLATE_URL != "" {
		return c.FLYER_TEMPLATE_URL
	}
	return c.TEMPLATE_URL
}

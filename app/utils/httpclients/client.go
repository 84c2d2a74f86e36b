package httpclients

import (
	"github.com/sirupsen/logrus"
	"pokedex.dev/pokedex-api/app/utils/logger"
	"pokedex.dev/pokedex-api/config"
	"pokedex.dev/pokedex-api/config/environment_variables"
	"resty.dev/v3"
)

// NewClient returns a resty client with the shared upstream timeout, so a hung
// upstream cannot hold a request open. Retries stay off.
func NewClient(name string) *resty.Client {
	client := resty.New().
		SetTimeout(environment_variables.EnvironmentVariables.UpstreamTimeout()).
		SetHeader("User-Agent", "pokedex-api/"+config.Version)

	client.AddResponseMiddleware(func(c *resty.Client, resp *resty.Response) error {
		logger.GetLogger().WithFields(logrus.Fields{
			"client": name,
			"method": resp.Request.Method,
			"url":    resp.Request.URL,
			"status": resp.StatusCode(),
		}).Debug("upstream response")
		return nil
	})

	return client
}

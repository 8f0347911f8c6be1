package health

import (
	"fmt"
	"time"

	"github.com/aaravmahajanofficial/local-commerce-platform/internal/config"
	"github.com/hellofresh/health-go/v5"
	"github.com/hellofresh/health-go/v5/checks/postgres"
	healthRedis "github.com/hellofresh/health-go/v5/checks/redis"
)

const componentName = "local-commerce-platform"

func NewHealthHandler(cfg *config.Config, version string) (*health.Health, error) {

	h, err := health.New(
		health.WithComponent(health.Component{
			Name:    componentName,
			Version: version,
		}),
		health.WithSystemInfo(),
		health.WithChecks(checkConfigs(cfg)...),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create health instance: %w", err)
	}

	return h, nil
}

// the order feed rides on redis pub/sub, so redis is as critical as postgres
func checkConfigs(cfg *config.Config) []health.Config {
	return []health.Config{
		{
			Name:      "database",
			Timeout:   3 * time.Second,
			SkipOnErr: false,
			Check: postgres.New(postgres.Config{
				DSN: cfg.Database.GetDSN(),
			}),
		},
		{
			Name:      "redis",
			Timeout:   2 * time.Second,
			SkipOnErr: false,
			Check: healthRedis.New(healthRedis.Config{
				DSN: cfg.RedisConnect.GetDSN(),
			}),
		},
	}
}

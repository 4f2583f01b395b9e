package integrations

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"droscher.com/CoffeeLedger/configs"
	"droscher.com/CoffeeLedger/pkg/integrations/roaster-web"
	"droscher.com/CoffeeLedger/pkg/model"
)

var ErrUnknownIntegration = errors.New("unknown integration")

// Integration looks beans up in an outside catalogue. Results are candidates
// only and carry no ids.
type Integration interface {
	FindBean(ctx context.Context, name string) ([]model.Bean, error)
}

func GetIntegration(name string, conf configs.Integrations, logger *zap.Logger) (Integration, error) {
	if name == roasterweb.IntegrationName {
		integration, err := roasterweb.NewRoasterWebIntegration(conf.RoasterWeb, logger)
		if err != nil {
			return nil, err
		}

		return integration, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownIntegration, name)
}

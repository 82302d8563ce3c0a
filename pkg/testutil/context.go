package testutil

import (
	"context"

	"github.com/questx-lab/reactionmap/config"
	"github.com/questx-lab/reactionmap/pkg/logger"
	"github.com/questx-lab/reactionmap/pkg/xcontext"
)

func MockContext() context.Context {
	return MockContextWithConfigs(config.Default())
}

func MockContextWithConfigs(cfg config.Configs) context.Context {
	ctx := context.Background()
	ctx = xcontext.WithConfigs(ctx, cfg)
	ctx = xcontext.WithLogger(ctx, logger.NewLogger(logger.DEBUG))

	return ctx
}

// MockContextWithLogger is MockContext with l as the logger, for tests that
// check what was logged.
func MockContextWithLogger(l logger.Logger) context.Context {
	return xcontext.WithLogger(MockContext(), l)
}

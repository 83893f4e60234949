package console

import (
	"context"

	"github.com/mklimuk/tsl2561/devctx"
)

func SetVerbose(parent context.Context, value bool) context.Context {
	return devctx.SetVerbose(parent, value)
}

func IsVerbose(ctx context.Context) bool {
	return devctx.IsVerbose(ctx)
}

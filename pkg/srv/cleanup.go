package srv

import "context"

// cleanupService idles until shutdown and then runs its hook.
type cleanupService struct {
	cleanup func() error
}

func (c *cleanupService) Start(ctx context.Context) error {
	<-ctx.Done()
	return nil
}

func (c *cleanupService) Shutdown(ctx context.Context) error {
	if c.cleanup != nil {
		return c.cleanup()
	}
	return nil
}

func NewCleanup(fn func() error) Service {
	return &cleanupService{cleanup: fn}
}

// funcService adapts a blocking function to Service.
type funcService struct {
	run func(ctx context.Context) error
}

func (f *funcService) Start(ctx context.Context) error {
	return f.run(ctx)
}

func (f *funcService) Shutdown(ctx context.Context) error {
	return nil
}

func NewFunc(run func(ctx context.Context) error) Service {
	return &funcService{run: run}
}

package resources

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"brandcarousel/internal/core/model"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Resolver turns logo references into fyne resources. References are file
// paths or http(s) URLs; results are cached by reference.
type Resolver struct {
	cache  sync.Map
	logger *slog.Logger
	do     func(func())
	load   func(ref string) (fyne.Resource, error)
}

// NewResolver creates a Resolver. Lazy results are handed back through do,
// which UI code sets to fyne.Do.
func NewResolver(logger *slog.Logger, do func(func())) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	if do == nil {
		do = func(fn func()) { fn() }
	}
	return &Resolver{logger: logger, do: do, load: loadResource}
}

// Resolve returns the resource for a logo reference.
func (resolver *Resolver) Resolve(ref string) (fyne.Resource, error) {
	if cached, ok := resolver.cache.Load(ref); ok {
		return cached.(fyne.Resource), nil
	}

	resource, err := resolver.load(ref)
	if err != nil {
		return nil, err
	}
	resolver.cache.Store(ref, resource)
	return resource, nil
}

// ResolveOrBroken returns the resource or a broken-image icon when the
// reference cannot be loaded.
func (resolver *Resolver) ResolveOrBroken(ref string) fyne.Resource {
	resource, err := resolver.Resolve(ref)
	if err != nil {
		resolver.logger.Warn("resources: logo unavailable", "ref", ref, "error", err)
		return theme.BrokenImageIcon()
	}
	return resource
}

// Placeholder is shown while a lazy logo is loading.
func Placeholder() fyne.Resource {
	return theme.FileImageIcon()
}

// Load resolves ref and passes the result to apply. Eager references resolve
// before Load returns; lazy ones show the placeholder first and resolve in the
// background. Nothing is applied once ctx is cancelled.
func (resolver *Resolver) Load(ctx context.Context, ref string, loading model.Loading, apply func(fyne.Resource)) {
	if loading == model.LoadEager {
		apply(resolver.ResolveOrBroken(ref))
		return
	}

	if cached, ok := resolver.cache.Load(ref); ok {
		apply(cached.(fyne.Resource))
		return
	}
	apply(Placeholder())
	go func() {
		resource := resolver.ResolveOrBroken(ref)
		if ctx.Err() != nil {
			return
		}
		resolver.do(func() {
			if ctx.Err() != nil {
				return
			}
			apply(resource)
		})
	}()
}

func loadResource(ref string) (fyne.Resource, error) {
	if ref == "" {
		return nil, fmt.Errorf("load logo: empty reference")
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		resource, err := fyne.LoadResourceFromURLString(ref)
		if err != nil {
			return nil, fmt.Errorf("load logo %s: %w", ref, err)
		}
		return resource, nil
	}

	resource, err := fyne.LoadResourceFromPath(ref)
	if err != nil {
		return nil, fmt.Errorf("load logo %s: %w", ref, err)
	}
	return resource, nil
}

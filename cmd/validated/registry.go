package main

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/validated/pkg/validator"
)

// builtins are record types with a Go implementation. A schema file entry
// with one of these names replaces the built-in rules and keeps the type.
var builtins = map[string]validator.Constructor{
	personType: newPerson,
}

// buildRegistry registers the built-in record types and then the schemas
// declared in files. Files are read concurrently and registered in argument
// order, so a later file overrides an earlier one.
func buildRegistry(ctx context.Context, files ...string) (*validator.Registry, error) {
	reg := validator.NewRegistry()
	if err := reg.Add(personType, personSchema(), newPerson); err != nil {
		return nil, err
	}

	loaded := make([][]*validator.Schema, len(files))
	g, ctx := errgroup.WithContext(ctx)
	for i, path := range files {
		if path == "" {
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			schemas, err := validator.LoadSchemaFile(path)
			if err != nil {
				return fmt.Errorf("load schema file %s: %w", path, err)
			}
			loaded[i] = schemas
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, schemas := range loaded {
		for _, s := range schemas {
			var err error
			if construct, ok := builtins[s.Name()]; ok {
				err = reg.Add(s.Name(), s, construct)
			} else {
				err = reg.RegisterSchema(s)
			}
			if err != nil {
				return nil, err
			}
		}
	}
	return reg, nil
}

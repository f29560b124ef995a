// Package chartmock has the chart mocks.
package chartmock

//go:generate mockery --case underscore --output . --outpkg chartmock --structname MockRenderer --name Renderer --dir ..

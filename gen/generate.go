// Package gen holds code generated from api/openapi.yaml.
package gen

//go:generate go run github.com/ogen-go/ogen/cmd/ogen --config ../api/ogen.yml --target oas --package oas --clean ../api/openapi.yaml

// Package proto holds the service definitions. Stubs are generated into
// gen/proto via go generate.
package proto

//go:generate protoc -I . --go_out=paths=source_relative:../gen/proto --go-grpc_out=paths=source_relative:../gen/proto quotes/v1/quotes.proto

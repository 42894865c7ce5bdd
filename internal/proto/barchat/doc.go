// Package barchat holds the Go bindings generated from api/barchat/v1.
package barchat

//go:generate protoc -I ../../../api --go_out=. --go_opt=module=github.com/oggyb/barchat/internal/proto/barchat --go-grpc_out=. --go-grpc_opt=module=github.com/oggyb/barchat/internal/proto/barchat barchat/v1/types.proto barchat/v1/chat.proto barchat/v1/radar.proto barchat/v1/flirt.proto barchat/v1/drinks.proto barchat/v1/voting.proto barchat/v1/raffle.proto barchat/v1/admin.proto

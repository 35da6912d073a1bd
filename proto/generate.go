// Package proto holds the wire and storage schemas.
//
// Generated code is not committed. Run `go generate ./proto` after changing
// a .proto file (requires protoc with protoc-gen-go and protoc-gen-go-grpc).
package proto

//go:generate protoc --go_out=.. --go-grpc_out=.. --go_opt=module=dmchat --go-grpc_opt=module=dmchat chat.proto
//go:generate protoc --go_out=.. --go_opt=module=dmchat storage.proto

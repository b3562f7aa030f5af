// Package proto holds the StudyGuideService contract and the code protoc
// generates from it.
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative studyguide.proto

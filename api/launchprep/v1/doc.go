// Package launchprepv1 holds the launchprep.v1 wire contract: message types
// and the gRPC service descriptor for LaunchPrepService.
//
// The authoritative contract lives in api/proto/launchprep/v1/launchprep.proto.
// The Go types here mirror it field for field and are maintained by hand in
// the legacy struct-tag message form, which the protobuf runtime marshals
// without generated descriptors.
//
// TODO: replace this package with protoc-gen-go output once the proto
// toolchain is wired into CI.
package launchprepv1

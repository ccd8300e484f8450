package types

// Version is the gosonic release version
var Version = "0.1.0"

const (
	// AppName is the service name reported in logs and health checks
	AppName = "gosonic"

	// ClientName is sent as the "c" query parameter on every API request
	ClientName = "gosonic"

	// ProtocolVersion is the Subsonic REST API version sent as "v"
	ProtocolVersion = "1.15.0"
)

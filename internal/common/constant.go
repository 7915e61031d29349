package common

// SessionTokenHeaderName is the gRPC metadata key a logged-in client uses
// to carry its session token on later requests.
const SessionTokenHeaderName = "session_token"

package protocol

// Version is the current version of the echo tools.
//
// There is no negotiation on the wire, so this is only reported to users.
var Version = "0.1.0"

package types

// Version is the application version, overridden via ldflags at release build
var Version = "v0.1.0"

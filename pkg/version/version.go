package version

// Version is overridden at build time with -ldflags "-X .../pkg/version.Version=vX.Y.Z"
var Version = "v0.1.0-dev"

package salescoach

// Version is overridable at build time:
//
//	go build -ldflags "-X github.com/nsfeld/salescoach.Version=v1.2.3"
var Version = "0.3.0-dev"

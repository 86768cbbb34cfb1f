package collage

// Version is the release of the coordinator and its command-line host.
var Version = "0.3.0"

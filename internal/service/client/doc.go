// Package client implements the light-alarm-ctl commands on top of the
// shared gRPC client. Results are printed as YAML.
package client

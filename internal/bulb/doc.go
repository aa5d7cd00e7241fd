// Package bulb describes the light fixtures the gateway drives.
//
// It holds the bulb identity value (device address, group and remote type),
// the table of supported remote types, the alias registry loaded from
// configuration, a JSON-schema check for state documents and the Controller
// port together with its MQTT and no-op implementations.
package bulb

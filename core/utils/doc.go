// Package utils provides small conversion helpers shared by the HTTP
// handlers and the settings layer: loosely typed query and option values in,
// concrete Go types out.
package utils

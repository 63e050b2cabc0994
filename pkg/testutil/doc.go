// Package testutil provides scratch filesystem environments and
// fault-injecting wrappers used by plan and execution tests.
package testutil

//go:build !debug

package verify

const debugChecks = false

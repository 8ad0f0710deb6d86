//go:build !release

package verify

// That/ThatEq are active in ordinary builds.
const stdChecks = true

//go:build release

package verify

// Release builds compile That/ThatEq down to nothing.
const stdChecks = false

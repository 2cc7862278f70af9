//go:build bfpdebug

package algobfp

const debugChecks = true

//go:build !nocivil

package capability

const civilCompiledIn = true

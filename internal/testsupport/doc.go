// Package testsupport holds fixtures shared by package tests: temp-dir
// configs, fixture files (including minimal PNG and TrueType files), and a
// journal opener with cleanup.
package testsupport

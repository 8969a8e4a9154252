// Package testcase defines the entries a conformance test is written in, and
// compiles them into a program image plus a per-address directive schedule.
//
// Addresses count instructions, not bytes: the directive attached after the
// k-th instruction of a case is checked at address k, and directives written
// before the first instruction are checked at address 0.
package testcase

// Package cpu implements a reference RV32I integer core used as a device
// under test.
//
// The core has 32 general-purpose 32-bit registers (x0 reads as zero), a
// byte-addressed program counter, and a flat little-endian memory with the
// program image loaded at address 0. It implements the base integer
// instructions that need no environment: LUI, AUIPC, JAL, JALR, the
// branches, loads, stores, and the register-immediate and register-register
// ALU operations.
//
// Device adapts the core to the conformance driver's device contract.
package cpu

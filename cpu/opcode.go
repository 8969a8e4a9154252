package cpu

import (
	"fmt"
)

// CodeOp is the major opcode, the low 7 bits of an instruction.
type CodeOp uint32

//go:generate go tool stringer -linecomment -type=CodeOp
const (
	OP_LOAD   = CodeOp(0b0000011) // load
	OP_IMM    = CodeOp(0b0010011) // op-imm
	OP_AUIPC  = CodeOp(0b0010111) // auipc
	OP_STORE  = CodeOp(0b0100011) // store
	OP_OP     = CodeOp(0b0110011) // op
	OP_LUI    = CodeOp(0b0110111) // lui
	OP_BRANCH = CodeOp(0b1100011) // branch
	OP_JALR   = CodeOp(0b1100111) // jalr
	OP_JAL    = CodeOp(0b1101111) // jal
)

// Function codes (funct3) per major opcode.
const (
	F3_ADD  = 0b000 // add, addi, sub
	F3_SLL  = 0b001 // sll, slli
	F3_SLT  = 0b010 // slt, slti
	F3_SLTU = 0b011 // sltu, sltiu
	F3_XOR  = 0b100 // xor, xori
	F3_SR   = 0b101 // srl, sra, srli, srai
	F3_OR   = 0b110 // or, ori
	F3_AND  = 0b111 // and, andi

	F3_BEQ  = 0b000
	F3_BNE  = 0b001
	F3_BLT  = 0b100
	F3_BGE  = 0b101
	F3_BLTU = 0b110
	F3_BGEU = 0b111

	F3_B  = 0b000 // lb, sb
	F3_H  = 0b001 // lh, sh
	F3_W  = 0b010 // lw, sw
	F3_BU = 0b100 // lbu
	F3_HU = 0b101 // lhu
)

// F7_ALT selects sub and sra.
const F7_ALT = 0b0100000

// Code is a single 32-bit instruction word.
type Code uint32

// Op returns the major opcode.
func (code Code) Op() CodeOp {
	return CodeOp(code & 0x7f)
}

// Rd returns the destination register.
func (code Code) Rd() int {
	return int((code >> 7) & 0x1f)
}

// Rs1 returns the first source register.
func (code Code) Rs1() int {
	return int((code >> 15) & 0x1f)
}

// Rs2 returns the second source register.
func (code Code) Rs2() int {
	return int((code >> 20) & 0x1f)
}

// Funct3 returns the minor function code.
func (code Code) Funct3() uint32 {
	return uint32(code>>12) & 0x7
}

// Funct7 returns the upper function code of R-type instructions.
func (code Code) Funct7() uint32 {
	return uint32(code >> 25)
}

// ImmI returns the sign-extended I-type immediate.
func (code Code) ImmI() uint32 {
	return uint32(int32(code) >> 20)
}

// ImmS returns the sign-extended S-type immediate.
func (code Code) ImmS() uint32 {
	return uint32(int32(code)>>25<<5) | uint32(code>>7)&0x1f
}

// ImmB returns the sign-extended B-type immediate.
func (code Code) ImmB() uint32 {
	imm := uint32(int32(code)>>31<<12) |
		(uint32(code>>7)&0x1)<<11 |
		(uint32(code>>25)&0x3f)<<5 |
		(uint32(code>>8)&0xf)<<1
	return imm
}

// ImmU returns the U-type immediate, already shifted.
func (code Code) ImmU() uint32 {
	return uint32(code) & 0xfffff000
}

// ImmJ returns the sign-extended J-type immediate.
func (code Code) ImmJ() uint32 {
	imm := uint32(int32(code)>>31<<20) |
		(uint32(code>>12)&0xff)<<12 |
		(uint32(code>>20)&0x1)<<11 |
		(uint32(code>>21)&0x3ff)<<1
	return imm
}

// MakeCodeR encodes a register-register instruction.
func MakeCodeR(op CodeOp, funct3, funct7 uint32, rd, rs1, rs2 int) Code {
	return Code(funct7<<25 | uint32(rs2)<<20 | uint32(rs1)<<15 | funct3<<12 | uint32(rd)<<7 | uint32(op))
}

// MakeCodeI encodes a register-immediate, load, or jalr instruction.
func MakeCodeI(op CodeOp, funct3 uint32, rd, rs1 int, imm int32) Code {
	return Code(uint32(imm)<<20 | uint32(rs1)<<15 | funct3<<12 | uint32(rd)<<7 | uint32(op))
}

// MakeCodeS encodes a store.
func MakeCodeS(funct3 uint32, rs1, rs2 int, imm int32) Code {
	u := uint32(imm)
	return Code((u>>5&0x7f)<<25 | uint32(rs2)<<20 | uint32(rs1)<<15 | funct3<<12 | (u&0x1f)<<7 | uint32(OP_STORE))
}

// MakeCodeB encodes a conditional branch.
func MakeCodeB(funct3 uint32, rs1, rs2 int, imm int32) Code {
	u := uint32(imm)
	return Code((u>>12&1)<<31 | (u>>5&0x3f)<<25 | uint32(rs2)<<20 | uint32(rs1)<<15 |
		funct3<<12 | (u>>1&0xf)<<8 | (u>>11&1)<<7 | uint32(OP_BRANCH))
}

// MakeCodeU encodes lui or auipc.
func MakeCodeU(op CodeOp, rd int, imm uint32) Code {
	return Code(imm&0xfffff000 | uint32(rd)<<7 | uint32(op))
}

// MakeCodeJ encodes jal.
func MakeCodeJ(rd int, imm int32) Code {
	u := uint32(imm)
	return Code((u>>20&1)<<31 | (u>>1&0x3ff)<<21 | (u>>11&1)<<20 | (u>>12&0xff)<<12 |
		uint32(rd)<<7 | uint32(OP_JAL))
}

// String returns the instruction word and its major opcode.
func (code Code) String() string {
	return fmt.Sprintf("%08x %v rd=x%d rs1=x%d rs2=x%d", uint32(code), code.Op(), code.Rd(), code.Rs1(), code.Rs2())
}

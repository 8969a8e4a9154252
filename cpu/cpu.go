// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"encoding/binary"
	"fmt"
	"log"
)

const (
	REGISTER_COUNT   = 32    // General-purpose registers, x0 to x31.
	INSTRUCTION_SIZE = 4     // Bytes per instruction.
	MEMORY_SIZE      = 65536 // Default memory size, in bytes.
)

// Cpu is the simulation context for an RV32I integer core.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Ip       uint32                 // Current instruction pointer, in bytes.
	Register [REGISTER_COUNT]uint32 // Register bank; x0 is always zero.
	Memory   []byte                 // Flat memory, program at address 0.

	Ticks int // Instructions executed since reset.
}

// NewCpu creates a new CPU with a specifically sized memory.
func NewCpu(size uint) (cpu *Cpu) {
	cpu = &Cpu{
		Memory: make([]byte, size),
	}

	return
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	text = fmt.Sprintf("   ip: %08x\n", cpu.Ip)
	for n, val := range cpu.Register {
		text += fmt.Sprintf("% 5s: %04X_%04X\n", fmt.Sprintf("x%d", n), val>>16, val&0xffff)
	}

	return
}

// Reset the CPU state.
// - Clears the registers and memory.
// - Copies the program image to address 0.
// - Zeros the tick counter and instruction pointer.
func (cpu *Cpu) Reset(program []byte) (err error) {
	if len(program) > len(cpu.Memory) {
		err = ErrProgramSize
		return
	}

	if cpu.Verbose {
		log.Printf("cpu: reset, %v byte program", len(program))
	}

	clear(cpu.Register[:])
	clear(cpu.Memory)
	copy(cpu.Memory, program)
	cpu.Ip = 0
	cpu.Ticks = 0

	return
}

// check verifies a size-aligned access lies inside memory.
func (cpu *Cpu) check(addr uint32, size uint32) (err error) {
	if uint64(addr)+uint64(size) > uint64(len(cpu.Memory)) {
		err = ErrMemoryRange(addr)
	}
	return
}

// Load reads a 1, 2 or 4 byte little-endian value, zero extended.
func (cpu *Cpu) Load(addr uint32, size uint32) (value uint32, err error) {
	err = cpu.check(addr, size)
	if err != nil {
		return
	}

	mem := cpu.Memory[addr:]
	switch size {
	case 1:
		value = uint32(mem[0])
	case 2:
		value = uint32(binary.LittleEndian.Uint16(mem))
	default:
		value = binary.LittleEndian.Uint32(mem)
	}

	return
}

// Store writes the low 1, 2 or 4 bytes of a value, little-endian.
func (cpu *Cpu) Store(addr uint32, size uint32, value uint32) (err error) {
	err = cpu.check(addr, size)
	if err != nil {
		return
	}

	mem := cpu.Memory[addr:]
	switch size {
	case 1:
		mem[0] = uint8(value)
	case 2:
		binary.LittleEndian.PutUint16(mem, uint16(value))
	default:
		binary.LittleEndian.PutUint32(mem, value)
	}

	return
}

// FetchCode fetches the instruction at the instruction pointer.
func (cpu *Cpu) FetchCode() (code Code, err error) {
	if cpu.Ip%INSTRUCTION_SIZE != 0 {
		err = ErrIpMisaligned
		return
	}

	word, err := cpu.Load(cpu.Ip, INSTRUCTION_SIZE)
	if err != nil {
		return
	}

	code = Code(word)
	return
}

// Tick executes a single CPU instruction cycle.
func (cpu *Cpu) Tick() (err error) {
	code, err := cpu.FetchCode()
	if err != nil {
		return
	}

	err = cpu.Execute(code)
	if err != nil {
		return
	}

	cpu.Ticks++
	return
}

func (cpu *Cpu) setRegister(rd int, value uint32) {
	if rd != 0 {
		cpu.Register[rd] = value
	}
}

// alu computes register-register and register-immediate operations.
// For immediates, alt is only honoured by the right shifts.
func alu(funct3 uint32, alt bool, a, b uint32) (value uint32) {
	switch funct3 {
	case F3_ADD:
		if alt {
			value = a - b
		} else {
			value = a + b
		}
	case F3_SLL:
		value = a << (b & 0x1f)
	case F3_SLT:
		if int32(a) < int32(b) {
			value = 1
		}
	case F3_SLTU:
		if a < b {
			value = 1
		}
	case F3_XOR:
		value = a ^ b
	case F3_SR:
		if alt {
			value = uint32(int32(a) >> (b & 0x1f))
		} else {
			value = a >> (b & 0x1f)
		}
	case F3_OR:
		value = a | b
	case F3_AND:
		value = a & b
	}

	return
}

// branch evaluates a branch condition.
func branch(funct3 uint32, a, b uint32) (taken bool, ok bool) {
	ok = true
	switch funct3 {
	case F3_BEQ:
		taken = a == b
	case F3_BNE:
		taken = a != b
	case F3_BLT:
		taken = int32(a) < int32(b)
	case F3_BGE:
		taken = int32(a) >= int32(b)
	case F3_BLTU:
		taken = a < b
	case F3_BGEU:
		taken = a >= b
	default:
		ok = false
	}
	return
}

// Execute executes a single decoded instruction.
func (cpu *Cpu) Execute(code Code) (err error) {
	if cpu.Verbose {
		log.Printf("%08x: %v", cpu.Ip, code)
	}

	illegal := ErrInstruction(code)

	rs1 := cpu.Register[code.Rs1()]
	rs2 := cpu.Register[code.Rs2()]
	next_ip := cpu.Ip + INSTRUCTION_SIZE

	switch code.Op() {
	case OP_LUI:
		cpu.setRegister(code.Rd(), code.ImmU())
	case OP_AUIPC:
		cpu.setRegister(code.Rd(), cpu.Ip+code.ImmU())
	case OP_JAL:
		cpu.setRegister(code.Rd(), next_ip)
		next_ip = cpu.Ip + code.ImmJ()
	case OP_JALR:
		if code.Funct3() != 0 {
			return illegal
		}
		target := (rs1 + code.ImmI()) &^ 1
		cpu.setRegister(code.Rd(), next_ip)
		next_ip = target
	case OP_BRANCH:
		taken, ok := branch(code.Funct3(), rs1, rs2)
		if !ok {
			return illegal
		}
		if taken {
			next_ip = cpu.Ip + code.ImmB()
		}
	case OP_LOAD:
		addr := rs1 + code.ImmI()
		var value uint32
		switch code.Funct3() {
		case F3_B:
			value, err = cpu.Load(addr, 1)
			value = uint32(int32(int8(value)))
		case F3_H:
			value, err = cpu.Load(addr, 2)
			value = uint32(int32(int16(value)))
		case F3_W:
			value, err = cpu.Load(addr, 4)
		case F3_BU:
			value, err = cpu.Load(addr, 1)
		case F3_HU:
			value, err = cpu.Load(addr, 2)
		default:
			return illegal
		}
		if err != nil {
			return
		}
		cpu.setRegister(code.Rd(), value)
	case OP_STORE:
		addr := rs1 + code.ImmS()
		switch code.Funct3() {
		case F3_B:
			err = cpu.Store(addr, 1, rs2)
		case F3_H:
			err = cpu.Store(addr, 2, rs2)
		case F3_W:
			err = cpu.Store(addr, 4, rs2)
		default:
			return illegal
		}
		if err != nil {
			return
		}
	case OP_IMM:
		funct3 := code.Funct3()
		imm := code.ImmI()
		alt := false
		switch funct3 {
		case F3_SLL:
			if code.Funct7() != 0 {
				return illegal
			}
			imm &= 0x1f
		case F3_SR:
			switch code.Funct7() {
			case 0:
			case F7_ALT:
				alt = true
			default:
				return illegal
			}
			imm &= 0x1f
		}
		cpu.setRegister(code.Rd(), alu(funct3, alt, rs1, imm))
	case OP_OP:
		funct3 := code.Funct3()
		alt := false
		switch code.Funct7() {
		case 0:
		case F7_ALT:
			if funct3 != F3_ADD && funct3 != F3_SR {
				return illegal
			}
			alt = true
		default:
			return illegal
		}
		cpu.setRegister(code.Rd(), alu(funct3, alt, rs1, rs2))
	default:
		return illegal
	}

	cpu.Ip = next_ip
	return
}

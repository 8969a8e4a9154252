// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package suite

import (
	"fmt"

	"github.com/ezrec/isaconform/testcase"
)

var (
	word  = testcase.Instruction
	check = testcase.Control
)

// emptyTest checks that every register reads zero out of reset.
func emptyTest() (tc testcase.TestCase) {
	for n := range 32 {
		tc = append(tc, check(fmt.Sprintf("r%d == 0", n)))
	}
	tc = append(tc, check("end"))
	return
}

// Default returns a fresh copy of the built-in RV32I catalog.
func Default() *Suite {
	s := New()

	s.MustAdd("empty-test", emptyTest())

	s.MustAdd("addi-test", testcase.TestCase{
		check("r0 == 0"), check("r1 == 0"), check("r5 == 0"),
		word(0x00100093), // addi x1, x0,  1
		check("r0 == 0"), check("r1 == 1"), check("r5 == 0"),
		word(0x00908293), // addi x5, x1,  9
		check("r0 == 0"), check("r1 == 1"), check("r5 == a"),
		word(0xFFD28293), // addi x5, x5, -3
		check("r0 == 0"), check("r1 == 1"), check("r5 == 7"),
		check("end"),
	})

	s.MustAdd("lui-add-test", testcase.TestCase{
		word(0x12345137), // lui  x2, 0x12345
		check("r2 == 12345000"),
		word(0x67810113), // addi x2, x2, 0x678
		check("r2 == 12345678"),
		word(0x000011B7), // lui  x3, 0x1
		word(0xFFF18193), // addi x3, x3, -1
		check("r3 == fff"),
		word(0x00310233), // add  x4, x2, x3
		check("r4 == 12346677"),
		word(0x402202B3), // sub  x5, x4, x2
		check("r5 == fff"),
		check("r0 == 0"),
		check("end"),
	})

	s.MustAdd("branch-test", testcase.TestCase{
		word(0x00300093), // addi x1, x0, 3
		word(0x00000113), // addi x2, x0, 0
		// loop:
		word(0x00110133), // add  x2, x2, x1
		word(0xFFF08093), // addi x1, x1, -1
		word(0xFE009CE3), // bne  x1, x0, loop
		check("r1 == 0"),
		check("r2 == 6"),
		check("end"),
	})

	s.MustAdd("store-load-test", testcase.TestCase{
		word(0x10000093), // addi x1, x0, 0x100
		word(0xFFE00113), // addi x2, x0, -2
		word(0x0020A023), // sw   x2, 0(x1)
		word(0x00008183), // lb   x3, 0(x1)
		check("r3 == ffff_fffe"),
		word(0x0010C203), // lbu  x4, 1(x1)
		check("r4 == ff"),
		word(0x0020D283), // lhu  x5, 2(x1)
		check("r5 == ffff"),
		word(0x0000A303), // lw   x6, 0(x1)
		check("r6 == fffffffe"),
		word(0x008003EF), // jal  x7, skip
		word(0x00100413), // addi x8, x0, 1
		// skip:
		check("r7 == 20"),
		check("r8 == 0"),
		check("end"),
	})

	return s
}
